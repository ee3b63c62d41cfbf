package usecases

import (
	"context"

	"provisio/internal/domain/production"
	"provisio/internal/shared/authorization"
	"provisio/internal/shared/errors"
	"provisio/internal/shared/logger"
)

// GetProductionUseCase loads one production with its task set and the
// progress recomputed from it.
type GetProductionUseCase struct {
	productionRepo production.ProductionRepository
	taskRepo       production.TaskRepository
	logger         logger.Interface
}

func NewGetProductionUseCase(
	productionRepo production.ProductionRepository,
	taskRepo production.TaskRepository,
	logger logger.Interface,
) *GetProductionUseCase {
	return &GetProductionUseCase{
		productionRepo: productionRepo,
		taskRepo:       taskRepo,
		logger:         logger,
	}
}

type GetProductionQuery struct {
	ProductionID uint
	Actor        authorization.Actor
}

func (uc *GetProductionUseCase) Execute(ctx context.Context, query GetProductionQuery) (*ProductionView, error) {
	prod, err := uc.loadWithTasks(ctx, query.ProductionID)
	if err != nil {
		return nil, err
	}

	view := newProductionView(prod, query.Actor, true)
	return &view, nil
}

func (uc *GetProductionUseCase) loadWithTasks(ctx context.Context, productionID uint) (*production.Production, error) {
	prod, err := uc.productionRepo.GetByID(ctx, productionID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load production", "production_id", productionID, "error", err)
		return nil, errors.NewInternalError("failed to load production")
	}

	tasks, err := uc.taskRepo.ListByProductionID(ctx, productionID)
	if err != nil {
		uc.logger.Errorw("failed to load production tasks", "production_id", productionID, "error", err)
		return nil, errors.NewInternalError("failed to load production tasks")
	}
	if err := prod.AttachTasks(tasks); err != nil {
		return nil, errors.NewInternalError("inconsistent task set", err.Error())
	}
	return prod, nil
}
