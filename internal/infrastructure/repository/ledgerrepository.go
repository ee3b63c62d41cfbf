package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"provisio/internal/domain/production"
	"provisio/internal/infrastructure/persistence/mappers"
	"provisio/internal/infrastructure/persistence/models"
	"provisio/internal/shared/db"
	"provisio/internal/shared/errors"
)

// LedgerRepository persists the append-only comment/file ledger. Comments
// are insert-only; files can be deleted but their ledger entries remain.
type LedgerRepository struct {
	db     *gorm.DB
	mapper mappers.ProductionMapper
}

func NewLedgerRepository(gormDB *gorm.DB) *LedgerRepository {
	return &LedgerRepository{
		db:     gormDB,
		mapper: mappers.NewProductionMapper(),
	}
}

func (r *LedgerRepository) SaveComment(ctx context.Context, comment *production.Comment) error {
	model := r.mapper.CommentToModel(comment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return comment.SetID(model.ID)
}

func (r *LedgerRepository) ListCommentsByTaskID(ctx context.Context, taskID uint) ([]*production.Comment, error) {
	var modelList []models.TaskCommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("task_id = ?", taskID).
		Order("created_at ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*production.Comment, 0, len(modelList))
	for i := range modelList {
		comment, err := r.mapper.CommentToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

func (r *LedgerRepository) SaveFile(ctx context.Context, file *production.File) error {
	model := r.mapper.FileToModel(file)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return file.SetID(model.ID)
}

func (r *LedgerRepository) GetFileByID(ctx context.Context, fileID uint) (*production.File, error) {
	var model models.TaskFileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, fileID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("file not found")
		}
		return nil, fmt.Errorf("failed to find file: %w", err)
	}

	return r.mapper.FileToDomain(&model)
}

// ListFilesByTaskID returns file metadata only; the content column is
// skipped so listings stay cheap.
func (r *LedgerRepository) ListFilesByTaskID(ctx context.Context, taskID uint) ([]*production.File, error) {
	var modelList []models.TaskFileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Select("id", "task_id", "file_name", "mime_type", "size_bytes", "uploader_id", "uploader_name", "created_at").
		Where("task_id = ?", taskID).
		Order("created_at ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]*production.File, 0, len(modelList))
	for i := range modelList {
		file, err := r.mapper.FileToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

func (r *LedgerRepository) DeleteFile(ctx context.Context, fileID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TaskFileModel{}, fileID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete file: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("file not found")
	}
	return nil
}
