package usecases

import (
	"context"

	"provisio/internal/domain/production"
	"provisio/internal/shared/errors"
	"provisio/internal/shared/logger"
	"provisio/internal/shared/markdown"
)

// ListCommentsUseCase returns a task's full ledger in chronological order.
// User-authored bodies are rendered to sanitized HTML; system entries stay
// plain text.
type ListCommentsUseCase struct {
	taskRepo   production.TaskRepository
	ledgerRepo production.LedgerRepository
	markdown   markdown.Service
	logger     logger.Interface
}

func NewListCommentsUseCase(
	taskRepo production.TaskRepository,
	ledgerRepo production.LedgerRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		taskRepo:   taskRepo,
		ledgerRepo: ledgerRepo,
		markdown:   markdownSvc,
		logger:     logger,
	}
}

type ListCommentsQuery struct {
	TaskID uint
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]CommentView, error) {
	if _, err := uc.taskRepo.GetByID(ctx, query.TaskID); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load task", "task_id", query.TaskID, "error", err)
		return nil, errors.NewInternalError("failed to load task")
	}

	comments, err := uc.ledgerRepo.ListCommentsByTaskID(ctx, query.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "task_id", query.TaskID, "error", err)
		return nil, errors.NewInternalError("failed to list comments")
	}

	views := make([]CommentView, len(comments))
	for i, comment := range comments {
		views[i] = newCommentView(comment)
		if !comment.IsSystem() {
			rendered, err := uc.markdown.ToHTMLSanitized(comment.Body())
			if err != nil {
				uc.logger.Warnw("failed to render comment body", "comment_id", comment.ID(), "error", err)
				continue
			}
			views[i].BodyHTML = rendered
		}
	}
	return views, nil
}
