package usecases

import (
	"context"

	"provisio/internal/domain/production"
	"provisio/internal/shared/errors"
	"provisio/internal/shared/logger"
)

// ListFilesUseCase returns the attachment metadata of a task; content is
// only served by the single-file download.
type ListFilesUseCase struct {
	taskRepo   production.TaskRepository
	ledgerRepo production.LedgerRepository
	logger     logger.Interface
}

func NewListFilesUseCase(
	taskRepo production.TaskRepository,
	ledgerRepo production.LedgerRepository,
	logger logger.Interface,
) *ListFilesUseCase {
	return &ListFilesUseCase{
		taskRepo:   taskRepo,
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

type ListFilesQuery struct {
	TaskID uint
}

func (uc *ListFilesUseCase) Execute(ctx context.Context, query ListFilesQuery) ([]FileView, error) {
	if _, err := uc.taskRepo.GetByID(ctx, query.TaskID); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load task", "task_id", query.TaskID, "error", err)
		return nil, errors.NewInternalError("failed to load task")
	}

	files, err := uc.ledgerRepo.ListFilesByTaskID(ctx, query.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to list files", "task_id", query.TaskID, "error", err)
		return nil, errors.NewInternalError("failed to list files")
	}

	views := make([]FileView, len(files))
	for i, file := range files {
		views[i] = newFileView(file, false)
	}
	return views, nil
}
