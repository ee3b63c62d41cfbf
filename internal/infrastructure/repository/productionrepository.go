// Package repository contains the GORM-backed implementations of the
// domain repository interfaces.
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

type ProductionRepository struct {
	db     *gorm.DB
	mapper mappers.ProductionMapper
}

func NewProductionRepository(gormDB *gorm.DB) *ProductionRepository {
	return &ProductionRepository{
		db:     gormDB,
		mapper: mappers.NewProductionMapper(),
	}
}

func (r *ProductionRepository) Save(ctx context.Context, p *production.Production) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save production: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ProductionRepository) Update(ctx context.Context, p *production.Production) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ProductionModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update production: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

// Delete hard-deletes the production and everything hanging off it. The
// caller is expected to run this inside a transaction.
func (r *ProductionRepository) Delete(ctx context.Context, productionID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var taskIDs []uint
	if err := tx.
		Model(&models.TaskModel{}).
		Where("production_id = ?", productionID).
		Pluck("id", &taskIDs).Error; err != nil {
		return fmt.Errorf("failed to collect task IDs: %w", err)
	}

	if len(taskIDs) > 0 {
		if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.TaskCommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete task comments: %w", err)
		}
		if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.TaskFileModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete task files: %w", err)
		}
	}

	if err := tx.Where("production_id = ?", productionID).Delete(&models.TaskModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete tasks: %w", err)
	}

	result := tx.Delete(&models.ProductionModel{}, productionID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete production: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("production not found")
	}

	return nil
}

func (r *ProductionRepository) GetByID(ctx context.Context, productionID uint) (*production.Production, error) {
	var model models.ProductionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, productionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("production not found")
		}
		return nil, fmt.Errorf("failed to find production: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProductionRepository) List(ctx context.Context, filter production.ProductionFilter) ([]*production.Production, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ProductionModel{})

	if len(filter.StatusIn) > 0 {
		statuses := make([]string, len(filter.StatusIn))
		for i, s := range filter.StatusIn {
			statuses[i] = s.String()
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.NumberSearch != "" {
		query = query.Where("number LIKE ?", "%"+filter.NumberSearch+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count productions: %w", err)
	}

	var modelList []models.ProductionModel
	if err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list productions: %w", err)
	}

	productions := make([]*production.Production, 0, len(modelList))
	for i := range modelList {
		p, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		productions = append(productions, p)
	}

	return productions, total, nil
}
