package usecases

import (
	"context"

	"provisio/internal/domain/production"
	"provisio/internal/shared/authorization"
	"provisio/internal/shared/errors"
	"provisio/internal/shared/logger"
)

// DeleteFileUseCase removes an attachment and appends the file_delete
// ledger entry in the same transaction. The ledger keeps the trace even
// though the content is gone.
type DeleteFileUseCase struct {
	ledgerRepo production.LedgerRepository
	txRunner   TransactionRunner
	logger     logger.Interface
}

func NewDeleteFileUseCase(
	ledgerRepo production.LedgerRepository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *DeleteFileUseCase {
	return &DeleteFileUseCase{
		ledgerRepo: ledgerRepo,
		txRunner:   txRunner,
		logger:     logger,
	}
}

type DeleteFileCommand struct {
	FileID uint
	Actor  authorization.Actor
}

func (uc *DeleteFileUseCase) Execute(ctx context.Context, cmd DeleteFileCommand) (*CommentView, error) {
	file, err := uc.ledgerRepo.GetFileByID(ctx, cmd.FileID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load file", "file_id", cmd.FileID, "error", err)
		return nil, errors.NewInternalError("failed to load file")
	}

	comment, err := production.NewFileDeleteComment(
		file.TaskID(), cmd.Actor.ID, cmd.Actor.Name, cmd.Actor.Role.String(), file.FileName(),
	)
	if err != nil {
		return nil, errors.NewInternalError("failed to build delete comment", err.Error())
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ledgerRepo.DeleteFile(txCtx, file.ID()); err != nil {
			return err
		}
		return uc.ledgerRepo.SaveComment(txCtx, comment)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete file", "file_id", cmd.FileID, "error", err)
		return nil, errors.NewInternalError("failed to delete file")
	}

	uc.logger.Infow("file deleted",
		"file_id", file.ID(),
		"task_id", file.TaskID(),
		"file_name", file.FileName(),
		"actor_id", cmd.Actor.ID,
	)

	view := newCommentView(comment)
	return &view, nil
}
