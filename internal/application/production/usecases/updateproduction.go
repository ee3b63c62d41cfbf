package usecases

import (
	"context"
	"time"

	"provisio/internal/domain/production"
	vo "provisio/internal/domain/production/valueobjects"
	"provisio/internal/shared/authorization"
	"provisio/internal/shared/errors"
	"provisio/internal/shared/logger"
)

// UpdateProductionUseCase applies agent edits to a production header. Nil
// command fields are left untouched.
type UpdateProductionUseCase struct {
	productionRepo production.ProductionRepository
	taskRepo       production.TaskRepository
	logger         logger.Interface
}

func NewUpdateProductionUseCase(
	productionRepo production.ProductionRepository,
	taskRepo production.TaskRepository,
	logger logger.Interface,
) *UpdateProductionUseCase {
	return &UpdateProductionUseCase{
		productionRepo: productionRepo,
		taskRepo:       taskRepo,
		logger:         logger,
	}
}

type UpdateProductionCommand struct {
	ProductionID           uint
	Titre                  *string
	Description            *string
	Priorite               *string
	Status                 *string
	ClientID               *string
	DemandeurID            *string
	DateLivraisonSouhaitee *time.Time
	Actor                  authorization.Actor
}

func (uc *UpdateProductionUseCase) Execute(ctx context.Context, cmd UpdateProductionCommand) (*ProductionView, error) {
	if !cmd.Actor.Role.IsAgent() {
		return nil, errors.NewForbiddenError("only agents can modify productions")
	}

	prod, err := uc.productionRepo.GetByID(ctx, cmd.ProductionID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load production", "production_id", cmd.ProductionID, "error", err)
		return nil, errors.NewInternalError("failed to load production")
	}

	if err := applyProductionEdits(prod, cmd); err != nil {
		return nil, err
	}

	if err := uc.productionRepo.Update(ctx, prod); err != nil {
		uc.logger.Errorw("failed to update production", "production_id", cmd.ProductionID, "error", err)
		return nil, errors.NewInternalError("failed to update production")
	}

	tasks, err := uc.taskRepo.ListByProductionID(ctx, prod.ID())
	if err != nil {
		uc.logger.Errorw("failed to load production tasks", "production_id", prod.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load production tasks")
	}
	if err := prod.AttachTasks(tasks); err != nil {
		return nil, errors.NewInternalError("inconsistent task set", err.Error())
	}

	uc.logger.Infow("production updated", "production_id", prod.ID(), "number", prod.Number())

	view := newProductionView(prod, cmd.Actor, true)
	return &view, nil
}

func applyProductionEdits(prod *production.Production, cmd UpdateProductionCommand) error {
	if cmd.Titre != nil {
		if err := prod.UpdateTitre(*cmd.Titre); err != nil {
			return errors.NewValidationError("invalid titre", err.Error())
		}
	}
	if cmd.Description != nil {
		prod.UpdateDescription(*cmd.Description)
	}
	if cmd.Priorite != nil {
		priority, err := vo.NewPriority(*cmd.Priorite)
		if err != nil {
			return errors.NewValidationError("invalid priority", err.Error())
		}
		if err := prod.ChangePriority(priority); err != nil {
			return errors.NewValidationError("invalid priority", err.Error())
		}
	}
	if cmd.Status != nil {
		status, err := vo.NewProductionStatus(*cmd.Status)
		if err != nil {
			return errors.NewValidationError("invalid status", err.Error())
		}
		if err := prod.ChangeStatus(status); err != nil {
			return errors.NewValidationError("invalid status", err.Error())
		}
	}
	if cmd.ClientID != nil {
		if err := prod.ReassignClient(*cmd.ClientID); err != nil {
			return errors.NewValidationError("invalid client", err.Error())
		}
	}
	if cmd.DemandeurID != nil {
		if err := prod.ReassignDemandeur(*cmd.DemandeurID); err != nil {
			return errors.NewValidationError("invalid demandeur", err.Error())
		}
	}
	if cmd.DateLivraisonSouhaitee != nil {
		prod.SetDateLivraisonSouhaitee(cmd.DateLivraisonSouhaitee)
	}
	return nil
}
