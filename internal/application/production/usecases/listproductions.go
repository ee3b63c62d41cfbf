package usecases

import (
	"context"

	"provisio/internal/domain/production"
	vo "provisio/internal/domain/production/valueobjects"
	"provisio/internal/shared/authorization"
	"provisio/internal/shared/errors"
	"provisio/internal/shared/logger"
)

// List scope selectors. An empty scope is unfiltered; active and termine
// are explicit opt-ins.
const (
	ScopeActive  = "active"
	ScopeTermine = "termine"
	ScopeAll     = "all"
)

type ListProductionsUseCase struct {
	productionRepo production.ProductionRepository
	taskRepo       production.TaskRepository
	logger         logger.Interface
}

func NewListProductionsUseCase(
	productionRepo production.ProductionRepository,
	taskRepo production.TaskRepository,
	logger logger.Interface,
) *ListProductionsUseCase {
	return &ListProductionsUseCase{
		productionRepo: productionRepo,
		taskRepo:       taskRepo,
		logger:         logger,
	}
}

type ListProductionsQuery struct {
	Scope    string
	ClientID *string
	Search   string
	Page     int
	PageSize int
	Actor    authorization.Actor
}

type ListProductionsResult struct {
	Productions []ProductionView
	Total       int64
}

func (uc *ListProductionsUseCase) Execute(ctx context.Context, query ListProductionsQuery) (*ListProductionsResult, error) {
	statusIn, err := scopeToStatuses(query.Scope)
	if err != nil {
		return nil, err
	}

	filter := production.ProductionFilter{
		StatusIn:     statusIn,
		ClientID:     query.ClientID,
		NumberSearch: query.Search,
		Page:         query.Page,
		PageSize:     query.PageSize,
	}

	productions, total, err := uc.productionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list productions", "scope", query.Scope, "error", err)
		return nil, errors.NewInternalError("failed to list productions")
	}

	views := make([]ProductionView, len(productions))
	for i, prod := range productions {
		tasks, err := uc.taskRepo.ListByProductionID(ctx, prod.ID())
		if err != nil {
			uc.logger.Errorw("failed to load production tasks", "production_id", prod.ID(), "error", err)
			return nil, errors.NewInternalError("failed to load production tasks")
		}
		if err := prod.AttachTasks(tasks); err != nil {
			return nil, errors.NewInternalError("inconsistent task set", err.Error())
		}
		views[i] = newProductionView(prod, query.Actor, false)
	}

	return &ListProductionsResult{Productions: views, Total: total}, nil
}

func scopeToStatuses(scope string) ([]vo.ProductionStatus, error) {
	switch scope {
	case "", ScopeAll:
		return nil, nil
	case ScopeActive:
		return vo.ActiveProductionStatuses, nil
	case ScopeTermine:
		return []vo.ProductionStatus{vo.ProductionTermine}, nil
	default:
		return nil, errors.NewValidationError("invalid scope", "must be one of active, termine, all")
	}
}
