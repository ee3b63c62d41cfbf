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

// CreateProductionUseCase opens a new production and materializes its full
// task set from the default template in one transaction.
type CreateProductionUseCase struct {
	productionRepo production.ProductionRepository
	taskRepo       production.TaskRepository
	numberGen      production.NumberGenerator
	txRunner       TransactionRunner
	logger         logger.Interface
}

func NewCreateProductionUseCase(
	productionRepo production.ProductionRepository,
	taskRepo production.TaskRepository,
	numberGen production.NumberGenerator,
	txRunner TransactionRunner,
	logger logger.Interface,
) *CreateProductionUseCase {
	return &CreateProductionUseCase{
		productionRepo: productionRepo,
		taskRepo:       taskRepo,
		numberGen:      numberGen,
		txRunner:       txRunner,
		logger:         logger,
	}
}

type CreateProductionCommand struct {
	Titre                  string
	Description            string
	Priorite               string
	ClientID               string
	DemandeurID            string
	DateLivraisonSouhaitee *time.Time
	Actor                  authorization.Actor
}

func (uc *CreateProductionUseCase) Execute(ctx context.Context, cmd CreateProductionCommand) (*ProductionView, error) {
	priority := vo.DefaultPriority()
	if cmd.Priorite != "" {
		parsed, err := vo.NewPriority(cmd.Priorite)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority", err.Error())
		}
		priority = parsed
	}

	// A demandeur always creates on their own behalf; the demandeur_id
	// field is only honored for agents.
	demandeurID := cmd.DemandeurID
	if cmd.Actor.Role.IsDemandeur() || demandeurID == "" {
		demandeurID = cmd.Actor.ID
	}

	prod, err := production.NewProduction(
		cmd.Titre,
		cmd.Description,
		priority,
		cmd.ClientID,
		demandeurID,
		cmd.DateLivraisonSouhaitee,
	)
	if err != nil {
		return nil, errors.NewValidationError("invalid production", err.Error())
	}

	number, err := uc.numberGen.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate production number", "error", err)
		return nil, errors.NewInternalError("failed to generate production number")
	}
	if err := prod.SetNumber(number); err != nil {
		return nil, errors.NewInternalError("failed to assign production number", err.Error())
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.productionRepo.Save(txCtx, prod); err != nil {
			return err
		}

		tasks, err := production.TasksFromTemplate(prod.ID(), production.DefaultTaskTemplate())
		if err != nil {
			return err
		}
		if err := uc.taskRepo.SaveBatch(txCtx, tasks); err != nil {
			return err
		}
		return prod.AttachTasks(tasks)
	})
	if err != nil {
		uc.logger.Errorw("failed to create production",
			"number", number,
			"client_id", cmd.ClientID,
			"error", err,
		)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to create production")
	}

	uc.logger.Infow("production created",
		"production_id", prod.ID(),
		"number", prod.Number(),
		"client_id", prod.ClientID(),
		"demandeur_id", prod.DemandeurID(),
		"task_count", len(prod.Tasks()),
	)

	view := newProductionView(prod, cmd.Actor, true)
	return &view, nil
}
