package usecases

import (
	"context"

	"provisio/internal/domain/production"
	"provisio/internal/shared/authorization"
	"provisio/internal/shared/errors"
	"provisio/internal/shared/logger"
)

// DeleteProductionUseCase hard-deletes a production and everything under
// it. There is no soft delete: tasks, comments and files go with it.
type DeleteProductionUseCase struct {
	productionRepo production.ProductionRepository
	txRunner       TransactionRunner
	logger         logger.Interface
}

func NewDeleteProductionUseCase(
	productionRepo production.ProductionRepository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *DeleteProductionUseCase {
	return &DeleteProductionUseCase{
		productionRepo: productionRepo,
		txRunner:       txRunner,
		logger:         logger,
	}
}

type DeleteProductionCommand struct {
	ProductionID uint
	Actor        authorization.Actor
}

func (uc *DeleteProductionUseCase) Execute(ctx context.Context, cmd DeleteProductionCommand) error {
	if !cmd.Actor.Role.IsAgent() {
		return errors.NewForbiddenError("only agents can delete productions")
	}

	prod, err := uc.productionRepo.GetByID(ctx, cmd.ProductionID)
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to load production", "production_id", cmd.ProductionID, "error", err)
		return errors.NewInternalError("failed to load production")
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.productionRepo.Delete(txCtx, prod.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete production", "production_id", cmd.ProductionID, "error", err)
		return errors.NewInternalError("failed to delete production")
	}

	uc.logger.Infow("production deleted",
		"production_id", prod.ID(),
		"number", prod.Number(),
		"actor_id", cmd.Actor.ID,
	)
	return nil
}
