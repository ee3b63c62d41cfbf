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

type TaskRepository struct {
	db     *gorm.DB
	mapper mappers.ProductionMapper
}

func NewTaskRepository(gormDB *gorm.DB) *TaskRepository {
	return &TaskRepository{
		db:     gormDB,
		mapper: mappers.NewProductionMapper(),
	}
}

func (r *TaskRepository) SaveBatch(ctx context.Context, tasks []*production.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	modelList := make([]*models.TaskModel, len(tasks))
	for i, task := range tasks {
		modelList[i] = r.mapper.TaskToModel(task)
	}

	if err := tx.Create(&modelList).Error; err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	for i, task := range tasks {
		if err := task.SetID(modelList[i].ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, task *production.Task) error {
	model := r.mapper.TaskToModel(task)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TaskModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}

	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID uint) (*production.Task, error) {
	var model models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, taskID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("task not found")
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return r.mapper.TaskToDomain(&model)
}

func (r *TaskRepository) ListByProductionID(ctx context.Context, productionID uint) ([]*production.Task, error) {
	var modelList []models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("production_id = ?", productionID).
		Order("ordre ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*production.Task, 0, len(modelList))
	for i := range modelList {
		task, err := r.mapper.TaskToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
