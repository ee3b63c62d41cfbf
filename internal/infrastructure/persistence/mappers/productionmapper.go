package mappers

import (
	"time"

	"provisio/internal/domain/production"
	vo "provisio/internal/domain/production/valueobjects"
	"provisio/internal/infrastructure/persistence/models"
	"provisio/internal/shared/biztime"
)

// ProductionMapper handles the conversion between the production domain
// entities and their persistence models.
type ProductionMapper interface {
	ToModel(p *production.Production) *models.ProductionModel
	ToDomain(model *models.ProductionModel) (*production.Production, error)

	TaskToModel(t *production.Task) *models.TaskModel
	TaskToDomain(model *models.TaskModel) (*production.Task, error)

	CommentToModel(c *production.Comment) *models.TaskCommentModel
	CommentToDomain(model *models.TaskCommentModel) (*production.Comment, error)

	FileToModel(f *production.File) *models.TaskFileModel
	FileToDomain(model *models.TaskFileModel) (*production.File, error)
}

type ProductionMapperImpl struct{}

func NewProductionMapper() ProductionMapper {
	return &ProductionMapperImpl{}
}

func (m *ProductionMapperImpl) ToModel(p *production.Production) *models.ProductionModel {
	return &models.ProductionModel{
		ID:                     p.ID(),
		Number:                 p.Number(),
		Titre:                  p.Titre(),
		Description:            p.Description(),
		Priority:               p.Priority().String(),
		Status:                 p.Status().String(),
		ClientID:               p.ClientID(),
		DemandeurID:            p.DemandeurID(),
		DateLivraisonSouhaitee: timeToMillisPtr(p.DateLivraisonSouhaitee()),
		CreatedAt:              biztime.ToMillis(p.CreatedAt()),
		UpdatedAt:              biztime.ToMillis(p.UpdatedAt()),
	}
}

func (m *ProductionMapperImpl) ToDomain(model *models.ProductionModel) (*production.Production, error) {
	return production.ReconstructProduction(
		model.ID,
		model.Number,
		model.Titre,
		model.Description,
		vo.Priority(model.Priority),
		vo.ProductionStatus(model.Status),
		model.ClientID,
		model.DemandeurID,
		millisToTimePtr(model.DateLivraisonSouhaitee),
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *ProductionMapperImpl) TaskToModel(t *production.Task) *models.TaskModel {
	return &models.TaskModel{
		ID:                 t.ID(),
		ProductionID:       t.ProductionID(),
		Ordre:              t.Ordre(),
		Nom:                t.Nom(),
		Status:             t.Status().String(),
		Descriptif:         t.Descriptif(),
		DateLivraison:      timeToMillisPtr(t.DateLivraison()),
		CommentaireInterne: t.CommentaireInterne(),
		CreatedAt:          biztime.ToMillis(t.CreatedAt()),
		UpdatedAt:          biztime.ToMillis(t.UpdatedAt()),
	}
}

func (m *ProductionMapperImpl) TaskToDomain(model *models.TaskModel) (*production.Task, error) {
	return production.ReconstructTask(
		model.ID,
		model.ProductionID,
		model.Ordre,
		model.Nom,
		vo.TaskStatus(model.Status),
		model.Descriptif,
		millisToTimePtr(model.DateLivraison),
		model.CommentaireInterne,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *ProductionMapperImpl) CommentToModel(c *production.Comment) *models.TaskCommentModel {
	return &models.TaskCommentModel{
		ID:          c.ID(),
		TaskID:      c.TaskID(),
		AuthorID:    c.AuthorID(),
		AuthorName:  c.AuthorName(),
		AuthorRole:  c.AuthorRole(),
		Body:        c.Body(),
		CommentType: c.Type().String(),
		CreatedAt:   biztime.ToMillis(c.CreatedAt()),
	}
}

func (m *ProductionMapperImpl) CommentToDomain(model *models.TaskCommentModel) (*production.Comment, error) {
	return production.ReconstructComment(
		model.ID,
		model.TaskID,
		model.AuthorID,
		model.AuthorName,
		model.AuthorRole,
		model.Body,
		vo.CommentType(model.CommentType),
		biztime.FromMillis(model.CreatedAt),
	)
}

func (m *ProductionMapperImpl) FileToModel(f *production.File) *models.TaskFileModel {
	return &models.TaskFileModel{
		ID:           f.ID(),
		TaskID:       f.TaskID(),
		FileName:     f.FileName(),
		MimeType:     f.MimeType(),
		SizeBytes:    f.SizeBytes(),
		Content:      f.Content(),
		UploaderID:   f.UploaderID(),
		UploaderName: f.UploaderName(),
		CreatedAt:    biztime.ToMillis(f.CreatedAt()),
	}
}

func (m *ProductionMapperImpl) FileToDomain(model *models.TaskFileModel) (*production.File, error) {
	return production.ReconstructFile(
		model.ID,
		model.TaskID,
		model.FileName,
		model.MimeType,
		model.SizeBytes,
		model.Content,
		model.UploaderID,
		model.UploaderName,
		biztime.FromMillis(model.CreatedAt),
	)
}

func timeToMillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	millis := biztime.ToMillis(*t)
	return &millis
}

func millisToTimePtr(millis *int64) *time.Time {
	if millis == nil {
		return nil
	}
	t := biztime.FromMillis(*millis)
	return &t
}
