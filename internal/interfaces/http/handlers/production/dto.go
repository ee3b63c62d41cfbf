package production

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"provisio/internal/application/production/usecases"
	"provisio/internal/shared/authorization"
	"provisio/internal/shared/errors"
	"provisio/internal/shared/utils"
)

type CreateProductionRequest struct {
	Titre                  string     `json:"titre" binding:"required,max=200"`
	Description            string     `json:"description"`
	Priorite               string     `json:"priorite"`
	ClientID               string     `json:"client_id" binding:"required"`
	DemandeurID            string     `json:"demandeur_id"`
	DateLivraisonSouhaitee *time.Time `json:"date_livraison_souhaitee"`
}

func (r *CreateProductionRequest) ToCommand(actor authorization.Actor) usecases.CreateProductionCommand {
	return usecases.CreateProductionCommand{
		Titre:                  r.Titre,
		Description:            r.Description,
		Priorite:               r.Priorite,
		ClientID:               r.ClientID,
		DemandeurID:            r.DemandeurID,
		DateLivraisonSouhaitee: r.DateLivraisonSouhaitee,
		Actor:                  actor,
	}
}

type UpdateProductionRequest struct {
	Titre                  *string    `json:"titre" binding:"omitempty,max=200"`
	Description            *string    `json:"description"`
	Priorite               *string    `json:"priorite"`
	Status                 *string    `json:"status"`
	ClientID               *string    `json:"client_id"`
	DemandeurID            *string    `json:"demandeur_id"`
	DateLivraisonSouhaitee *time.Time `json:"date_livraison_souhaitee"`
}

func (r *UpdateProductionRequest) ToCommand(productionID uint, actor authorization.Actor) usecases.UpdateProductionCommand {
	return usecases.UpdateProductionCommand{
		ProductionID:           productionID,
		Titre:                  r.Titre,
		Description:            r.Description,
		Priorite:               r.Priorite,
		Status:                 r.Status,
		ClientID:               r.ClientID,
		DemandeurID:            r.DemandeurID,
		DateLivraisonSouhaitee: r.DateLivraisonSouhaitee,
		Actor:                  actor,
	}
}

type UpdateTaskRequest struct {
	Status             *string    `json:"status"`
	Descriptif         *string    `json:"descriptif"`
	DateLivraison      *time.Time `json:"date_livraison"`
	CommentaireInterne *string    `json:"commentaire_interne"`
}

func (r *UpdateTaskRequest) ToCommand(taskID uint, actor authorization.Actor) usecases.UpdateTaskCommand {
	return usecases.UpdateTaskCommand{
		TaskID:             taskID,
		Status:             r.Status,
		Descriptif:         r.Descriptif,
		DateLivraison:      r.DateLivraison,
		CommentaireInterne: r.CommentaireInterne,
		Actor:              actor,
	}
}

type AddCommentRequest struct {
	ProductionTacheID uint   `json:"production_tache_id"`
	Contenu           string `json:"contenu" binding:"required,max=1000"`
}

type UploadFileRequest struct {
	ProductionTacheID uint   `json:"production_tache_id"`
	NomFichier        string `json:"nom_fichier" binding:"required,max=255"`
	TypeMime          string `json:"type_mime"`
	Contenu           string `json:"contenu" binding:"required"`
}

type ListProductionsRequest struct {
	Scope    string
	ClientID *string
	Search   string
	Page     int
	PageSize int
}

func (r *ListProductionsRequest) ToQuery(actor authorization.Actor) usecases.ListProductionsQuery {
	return usecases.ListProductionsQuery{
		Scope:    r.Scope,
		ClientID: r.ClientID,
		Search:   r.Search,
		Page:     r.Page,
		PageSize: r.PageSize,
		Actor:    actor,
	}
}

func parseListProductionsRequest(c *gin.Context) *ListProductionsRequest {
	pagination := utils.ParsePagination(c)

	req := &ListProductionsRequest{
		Scope:    c.Query("status"),
		Search:   c.Query("search"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if client := c.Query("client"); client != "" {
		req.ClientID = &client
	}

	return req
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name)
	}
	return uint(id), nil
}

// parseTaskScope resolves the task ID from the production_tache_id query
// parameter, falling back to the given body value for POST requests.
func parseTaskScope(c *gin.Context, bodyValue uint) (uint, error) {
	if raw := c.Query("production_tache_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return 0, errors.NewValidationError("invalid production_tache_id")
		}
		return uint(id), nil
	}
	if bodyValue != 0 {
		return bodyValue, nil
	}
	return 0, errors.NewValidationError("production_tache_id is required")
}
