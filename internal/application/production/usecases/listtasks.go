package usecases

import (
	"context"

	"provisio/internal/domain/production"
	"provisio/internal/shared/authorization"
	"provisio/internal/shared/errors"
	"provisio/internal/shared/logger"
)

type ListTasksUseCase struct {
	productionRepo production.ProductionRepository
	taskRepo       production.TaskRepository
	logger         logger.Interface
}

func NewListTasksUseCase(
	productionRepo production.ProductionRepository,
	taskRepo production.TaskRepository,
	logger logger.Interface,
) *ListTasksUseCase {
	return &ListTasksUseCase{
		productionRepo: productionRepo,
		taskRepo:       taskRepo,
		logger:         logger,
	}
}

type ListTasksQuery struct {
	ProductionID uint
	Actor        authorization.Actor
}

func (uc *ListTasksUseCase) Execute(ctx context.Context, query ListTasksQuery) ([]TaskView, error) {
	if _, err := uc.productionRepo.GetByID(ctx, query.ProductionID); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load production", "production_id", query.ProductionID, "error", err)
		return nil, errors.NewInternalError("failed to load production")
	}

	tasks, err := uc.taskRepo.ListByProductionID(ctx, query.ProductionID)
	if err != nil {
		uc.logger.Errorw("failed to list tasks", "production_id", query.ProductionID, "error", err)
		return nil, errors.NewInternalError("failed to list tasks")
	}

	return newTaskViews(tasks, query.Actor), nil
}
