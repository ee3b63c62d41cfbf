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

// UpdateTaskUseCase applies agent edits to a single task. A status change
// appends a system ledger entry in the same transaction, so the task never
// moves without a trace.
type UpdateTaskUseCase struct {
	taskRepo   production.TaskRepository
	ledgerRepo production.LedgerRepository
	txRunner   TransactionRunner
	logger     logger.Interface
}

func NewUpdateTaskUseCase(
	taskRepo production.TaskRepository,
	ledgerRepo production.LedgerRepository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo:   taskRepo,
		ledgerRepo: ledgerRepo,
		txRunner:   txRunner,
		logger:     logger,
	}
}

type UpdateTaskCommand struct {
	TaskID             uint
	Status             *string
	Descriptif         *string
	DateLivraison      *time.Time
	CommentaireInterne *string
	Actor              authorization.Actor
}

// UpdateTaskResult carries the updated task and, when the edit changed the
// status, the system comment that recorded it.
type UpdateTaskResult struct {
	Task          TaskView
	StatusComment *CommentView
}

func (uc *UpdateTaskUseCase) Execute(ctx context.Context, cmd UpdateTaskCommand) (*UpdateTaskResult, error) {
	if !cmd.Actor.Role.IsAgent() {
		return nil, errors.NewForbiddenError("only agents can modify tasks")
	}

	task, err := uc.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load task", "task_id", cmd.TaskID, "error", err)
		return nil, errors.NewInternalError("failed to load task")
	}

	var statusComment *production.Comment
	if cmd.Status != nil {
		newStatus, err := vo.NewTaskStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid task status", err.Error())
		}
		previous := task.Status()
		if err := task.ChangeStatus(newStatus); err != nil {
			return nil, errors.NewValidationError("invalid task status", err.Error())
		}
		// Same-status writes are accepted but leave no ledger trace.
		if previous != newStatus {
			statusComment, err = production.NewStatusChangeComment(
				task.ID(), cmd.Actor.ID, cmd.Actor.Name, cmd.Actor.Role.String(), previous, newStatus,
			)
			if err != nil {
				return nil, errors.NewInternalError("failed to build status comment", err.Error())
			}
		}
	}

	if cmd.Descriptif != nil {
		task.UpdateDescriptif(*cmd.Descriptif)
	}
	if cmd.DateLivraison != nil {
		task.SetDateLivraison(cmd.DateLivraison)
	}
	if cmd.CommentaireInterne != nil {
		task.SetCommentaireInterne(*cmd.CommentaireInterne)
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.taskRepo.Update(txCtx, task); err != nil {
			return err
		}
		if statusComment != nil {
			return uc.ledgerRepo.SaveComment(txCtx, statusComment)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update task", "task_id", cmd.TaskID, "error", err)
		return nil, errors.NewInternalError("failed to update task")
	}

	result := &UpdateTaskResult{Task: newTaskView(task, cmd.Actor)}
	if statusComment != nil {
		view := newCommentView(statusComment)
		result.StatusComment = &view
		uc.logger.Infow("task status changed",
			"task_id", task.ID(),
			"production_id", task.ProductionID(),
			"status", task.Status().String(),
			"actor_id", cmd.Actor.ID,
		)
	}
	return result, nil
}
