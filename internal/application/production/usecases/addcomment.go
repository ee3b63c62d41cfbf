package usecases

import (
	"context"

	"provisio/internal/domain/production"
	"provisio/internal/shared/authorization"
	"provisio/internal/shared/errors"
	"provisio/internal/shared/logger"
	"provisio/internal/shared/markdown"
)

// AddCommentUseCase appends a user comment to a task's ledger. Both roles
// may comment; system entries are never written through this path.
type AddCommentUseCase struct {
	taskRepo   production.TaskRepository
	ledgerRepo production.LedgerRepository
	markdown   markdown.Service
	logger     logger.Interface
}

func NewAddCommentUseCase(
	taskRepo production.TaskRepository,
	ledgerRepo production.LedgerRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		taskRepo:   taskRepo,
		ledgerRepo: ledgerRepo,
		markdown:   markdownSvc,
		logger:     logger,
	}
}

type AddCommentCommand struct {
	TaskID uint
	Body   string
	Actor  authorization.Actor
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*CommentView, error) {
	if _, err := uc.taskRepo.GetByID(ctx, cmd.TaskID); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load task", "task_id", cmd.TaskID, "error", err)
		return nil, errors.NewInternalError("failed to load task")
	}

	comment, err := production.NewUserComment(
		cmd.TaskID, cmd.Actor.ID, cmd.Actor.Name, cmd.Actor.Role.String(), cmd.Body,
	)
	if err != nil {
		return nil, errors.NewValidationError("invalid comment", err.Error())
	}

	if err := uc.ledgerRepo.SaveComment(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "task_id", cmd.TaskID, "error", err)
		return nil, errors.NewInternalError("failed to save comment")
	}

	uc.logger.Infow("comment added",
		"comment_id", comment.ID(),
		"task_id", cmd.TaskID,
		"actor_id", cmd.Actor.ID,
	)

	view := newCommentView(comment)
	uc.renderBody(&view)
	return &view, nil
}

func (uc *AddCommentUseCase) renderBody(view *CommentView) {
	rendered, err := uc.markdown.ToHTMLSanitized(view.Body)
	if err != nil {
		uc.logger.Warnw("failed to render comment body", "comment_id", view.ID, "error", err)
		return
	}
	view.BodyHTML = rendered
}
