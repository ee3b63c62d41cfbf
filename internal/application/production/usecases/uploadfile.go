package usecases

import (
	"context"
	"encoding/base64"

	"provisio/internal/domain/production"
	"provisio/internal/shared/authorization"
	"provisio/internal/shared/errors"
	"provisio/internal/shared/logger"
)

// UploadFileUseCase attaches a base64-encoded file to a task and appends
// the matching system ledger entry in the same transaction. The content is
// stored exactly as received.
type UploadFileUseCase struct {
	taskRepo   production.TaskRepository
	ledgerRepo production.LedgerRepository
	txRunner   TransactionRunner
	logger     logger.Interface
}

func NewUploadFileUseCase(
	taskRepo production.TaskRepository,
	ledgerRepo production.LedgerRepository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *UploadFileUseCase {
	return &UploadFileUseCase{
		taskRepo:   taskRepo,
		ledgerRepo: ledgerRepo,
		txRunner:   txRunner,
		logger:     logger,
	}
}

type UploadFileCommand struct {
	TaskID   uint
	FileName string
	MimeType string
	Content  string
	Actor    authorization.Actor
}

type UploadFileResult struct {
	File    FileView    `json:"fichier"`
	Comment CommentView `json:"commentaire"`
}

func (uc *UploadFileUseCase) Execute(ctx context.Context, cmd UploadFileCommand) (*UploadFileResult, error) {
	if _, err := uc.taskRepo.GetByID(ctx, cmd.TaskID); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load task", "task_id", cmd.TaskID, "error", err)
		return nil, errors.NewInternalError("failed to load task")
	}

	decoded, err := base64.StdEncoding.DecodeString(cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError("invalid file content", "content must be base64-encoded")
	}

	file, err := production.NewFile(
		cmd.TaskID,
		cmd.FileName,
		cmd.MimeType,
		int64(len(decoded)),
		cmd.Content,
		cmd.Actor.ID,
		cmd.Actor.Name,
	)
	if err != nil {
		return nil, errors.NewValidationError("invalid file", err.Error())
	}

	comment, err := production.NewFileUploadComment(
		cmd.TaskID, cmd.Actor.ID, cmd.Actor.Name, cmd.Actor.Role.String(), cmd.FileName,
	)
	if err != nil {
		return nil, errors.NewInternalError("failed to build upload comment", err.Error())
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ledgerRepo.SaveFile(txCtx, file); err != nil {
			return err
		}
		return uc.ledgerRepo.SaveComment(txCtx, comment)
	})
	if err != nil {
		uc.logger.Errorw("failed to upload file", "task_id", cmd.TaskID, "file_name", cmd.FileName, "error", err)
		return nil, errors.NewInternalError("failed to upload file")
	}

	uc.logger.Infow("file uploaded",
		"file_id", file.ID(),
		"task_id", cmd.TaskID,
		"file_name", cmd.FileName,
		"size_bytes", file.SizeBytes(),
		"actor_id", cmd.Actor.ID,
	)

	return &UploadFileResult{
		File:    newFileView(file, false),
		Comment: newCommentView(comment),
	}, nil
}
