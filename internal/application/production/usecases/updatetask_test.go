package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"provisio/internal/domain/production"
	vo "provisio/internal/domain/production/valueobjects"
	"provisio/internal/shared/errors"
)

func TestUpdateTask_StatusChangeAppendsComment(t *testing.T) {
	task := existingTask(t, 5, vo.TaskAFaire)
	var savedComment *production.Comment
	ledgerRepo := &mockLedgerRepo{
		SaveCommentFunc: func(ctx context.Context, comment *production.Comment) error {
			savedComment = comment
			return comment.SetID(1)
		},
	}
	uc := NewUpdateTaskUseCase(taskRepoReturning(task), ledgerRepo, &mockTxRunner{}, testLogger())

	result, err := uc.Execute(context.Background(), UpdateTaskCommand{
		TaskID: 5,
		Status: strPtr("en_cours"),
		Actor:  agentActor,
	})
	require.NoError(t, err)

	assert.Equal(t, "en_cours", result.Task.Status)
	require.NotNil(t, result.StatusComment)
	assert.Equal(t, "status_change", result.StatusComment.TypeCommentaire)
	assert.Contains(t, result.StatusComment.Body, "a_faire")
	assert.Contains(t, result.StatusComment.Body, "en_cours")

	require.NotNil(t, savedComment)
	assert.True(t, savedComment.IsSystem())
	assert.Equal(t, "A1", savedComment.AuthorID())
}

func TestUpdateTask_SameStatusLeavesNoTrace(t *testing.T) {
	task := existingTask(t, 5, vo.TaskEnCours)
	commentSaved := false
	ledgerRepo := &mockLedgerRepo{
		SaveCommentFunc: func(ctx context.Context, comment *production.Comment) error {
			commentSaved = true
			return nil
		},
	}
	uc := NewUpdateTaskUseCase(taskRepoReturning(task), ledgerRepo, &mockTxRunner{}, testLogger())

	result, err := uc.Execute(context.Background(), UpdateTaskCommand{
		TaskID: 5,
		Status: strPtr("en_cours"),
		Actor:  agentActor,
	})
	require.NoError(t, err)
	assert.Nil(t, result.StatusComment)
	assert.False(t, commentSaved)
}

func TestUpdateTask_DirectTermine(t *testing.T) {
	task := existingTask(t, 5, vo.TaskAFaire)
	var savedComment *production.Comment
	ledgerRepo := &mockLedgerRepo{
		SaveCommentFunc: func(ctx context.Context, comment *production.Comment) error {
			savedComment = comment
			return comment.SetID(1)
		},
	}
	uc := NewUpdateTaskUseCase(taskRepoReturning(task), ledgerRepo, &mockTxRunner{}, testLogger())

	// A freshly created task can be closed in one edit.
	result, err := uc.Execute(context.Background(), UpdateTaskCommand{
		TaskID: 5,
		Status: strPtr("termine"),
		Actor:  agentActor,
	})
	require.NoError(t, err)

	assert.Equal(t, "termine", result.Task.Status)
	require.NotNil(t, result.StatusComment)
	assert.Contains(t, result.StatusComment.Body, "a_faire")
	assert.Contains(t, result.StatusComment.Body, "termine")
	require.NotNil(t, savedComment)
}

func TestUpdateTask_UnknownStatusRejected(t *testing.T) {
	task := existingTask(t, 5, vo.TaskAFaire)
	uc := NewUpdateTaskUseCase(taskRepoReturning(task), &mockLedgerRepo{}, &mockTxRunner{}, testLogger())

	_, err := uc.Execute(context.Background(), UpdateTaskCommand{
		TaskID: 5,
		Status: strPtr("fini"),
		Actor:  agentActor,
	})
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, vo.TaskAFaire, task.Status())
}

func TestUpdateTask_FieldOnlyEdit(t *testing.T) {
	task := existingTask(t, 5, vo.TaskEnCours)
	uc := NewUpdateTaskUseCase(taskRepoReturning(task), &mockLedgerRepo{}, &mockTxRunner{}, testLogger())

	result, err := uc.Execute(context.Background(), UpdateTaskCommand{
		TaskID:     5,
		Descriptif: strPtr("Configurer le lien fibre"),
		Actor:      agentActor,
	})
	require.NoError(t, err)
	assert.Nil(t, result.StatusComment)
	assert.Equal(t, "Configurer le lien fibre", result.Task.Descriptif)
}

func TestUpdateTask_DemandeurForbidden(t *testing.T) {
	uc := NewUpdateTaskUseCase(&mockTaskRepo{}, &mockLedgerRepo{}, &mockTxRunner{}, testLogger())

	_, err := uc.Execute(context.Background(), UpdateTaskCommand{
		TaskID: 5,
		Status: strPtr("en_cours"),
		Actor:  demandeurActor,
	})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUpdateTask_InternalNoteHiddenFromView(t *testing.T) {
	task := existingTask(t, 5, vo.TaskEnCours)
	uc := NewUpdateTaskUseCase(taskRepoReturning(task), &mockLedgerRepo{}, &mockTxRunner{}, testLogger())

	result, err := uc.Execute(context.Background(), UpdateTaskCommand{
		TaskID:             5,
		CommentaireInterne: strPtr("Relancer l'opérateur"),
		Actor:              agentActor,
	})
	require.NoError(t, err)
	assert.Equal(t, "Relancer l'opérateur", result.Task.CommentaireInterne)
}
