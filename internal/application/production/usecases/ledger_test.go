package usecases

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"provisio/internal/domain/production"
	vo "provisio/internal/domain/production/valueobjects"
	"provisio/internal/shared/biztime"
	"provisio/internal/shared/errors"
	"provisio/internal/shared/markdown"
)

func TestAddComment(t *testing.T) {
	task := existingTask(t, 5, vo.TaskEnCours)
	uc := NewAddCommentUseCase(taskRepoReturning(task), &mockLedgerRepo{}, markdown.NewService(), testLogger())

	view, err := uc.Execute(context.Background(), AddCommentCommand{
		TaskID: 5,
		Body:   "Ligne **testée**, tout est OK",
		Actor:  demandeurActor,
	})
	require.NoError(t, err)

	assert.Equal(t, "commentaire", view.TypeCommentaire)
	assert.Equal(t, "D1", view.AuthorID)
	assert.Equal(t, "Paul Roux", view.AuthorName)
	assert.Contains(t, view.BodyHTML, "<strong>testée</strong>")
}

func TestAddComment_Validation(t *testing.T) {
	task := existingTask(t, 5, vo.TaskEnCours)
	uc := NewAddCommentUseCase(taskRepoReturning(task), &mockLedgerRepo{}, markdown.NewService(), testLogger())

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		TaskID: 5,
		Body:   "   ",
		Actor:  demandeurActor,
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestAddComment_TaskNotFound(t *testing.T) {
	uc := NewAddCommentUseCase(&mockTaskRepo{}, &mockLedgerRepo{}, markdown.NewService(), testLogger())

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		TaskID: 99,
		Body:   "corps",
		Actor:  demandeurActor,
	})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListComments_RendersUserBodiesOnly(t *testing.T) {
	task := existingTask(t, 5, vo.TaskEnCours)
	now := biztime.NowUTC()

	user, err := production.ReconstructComment(1, 5, "D1", "Paul Roux", "demandeur", "du *markdown*", vo.CommentUser, now)
	require.NoError(t, err)
	system, err := production.ReconstructComment(2, 5, "A1", "Marie Durand", "agent", "Statut modifié : «a_faire» → «en_cours»", vo.CommentStatusChange, now)
	require.NoError(t, err)

	ledgerRepo := &mockLedgerRepo{
		ListCommentsByTaskIDFunc: func(ctx context.Context, taskID uint) ([]*production.Comment, error) {
			return []*production.Comment{user, system}, nil
		},
	}
	uc := NewListCommentsUseCase(taskRepoReturning(task), ledgerRepo, markdown.NewService(), testLogger())

	views, err := uc.Execute(context.Background(), ListCommentsQuery{TaskID: 5})
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Contains(t, views[0].BodyHTML, "<em>markdown</em>")
	assert.Empty(t, views[1].BodyHTML, "system entries are served as plain text")
}

func TestUploadFile(t *testing.T) {
	task := existingTask(t, 5, vo.TaskEnCours)
	content := base64.StdEncoding.EncodeToString([]byte("contenu du fichier"))

	var savedFile *production.File
	var savedComment *production.Comment
	ledgerRepo := &mockLedgerRepo{
		SaveFileFunc: func(ctx context.Context, file *production.File) error {
			savedFile = file
			return file.SetID(3)
		},
		SaveCommentFunc: func(ctx context.Context, comment *production.Comment) error {
			savedComment = comment
			return comment.SetID(1)
		},
	}
	uc := NewUploadFileUseCase(taskRepoReturning(task), ledgerRepo, &mockTxRunner{}, testLogger())

	result, err := uc.Execute(context.Background(), UploadFileCommand{
		TaskID:   5,
		FileName: "plan-cablage.pdf",
		MimeType: "application/pdf",
		Content:  content,
		Actor:    agentActor,
	})
	require.NoError(t, err)

	assert.Equal(t, "plan-cablage.pdf", result.File.FileName)
	assert.Equal(t, int64(len("contenu du fichier")), result.File.SizeBytes)
	assert.Empty(t, result.File.Content, "metadata view must not embed the payload")

	require.NotNil(t, savedFile)
	assert.Equal(t, content, savedFile.Content(), "content is stored as received")

	require.NotNil(t, savedComment)
	assert.Equal(t, vo.CommentFileUpload, savedComment.Type())
	assert.Contains(t, savedComment.Body(), "plan-cablage.pdf")
	assert.Contains(t, result.Comment.Body, "Fichier ajouté")
}

func TestUploadFile_RejectsBadBase64(t *testing.T) {
	task := existingTask(t, 5, vo.TaskEnCours)
	uc := NewUploadFileUseCase(taskRepoReturning(task), &mockLedgerRepo{}, &mockTxRunner{}, testLogger())

	_, err := uc.Execute(context.Background(), UploadFileCommand{
		TaskID:   5,
		FileName: "x.bin",
		Content:  "not%%%base64",
		Actor:    agentActor,
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestDeleteFile(t *testing.T) {
	now := biztime.NowUTC()
	file, err := production.ReconstructFile(3, 5, "plan-cablage.pdf", "application/pdf", 18, "AAAA", "A1", "Marie Durand", now)
	require.NoError(t, err)

	deleted := false
	var savedComment *production.Comment
	ledgerRepo := &mockLedgerRepo{
		GetFileByIDFunc: func(ctx context.Context, fileID uint) (*production.File, error) {
			return file, nil
		},
		DeleteFileFunc: func(ctx context.Context, fileID uint) error {
			deleted = true
			assert.Equal(t, uint(3), fileID)
			return nil
		},
		SaveCommentFunc: func(ctx context.Context, comment *production.Comment) error {
			savedComment = comment
			return comment.SetID(9)
		},
	}
	uc := NewDeleteFileUseCase(ledgerRepo, &mockTxRunner{}, testLogger())

	view, err := uc.Execute(context.Background(), DeleteFileCommand{FileID: 3, Actor: agentActor})
	require.NoError(t, err)

	assert.True(t, deleted)
	require.NotNil(t, savedComment)
	assert.Equal(t, vo.CommentFileDelete, savedComment.Type())
	assert.Contains(t, view.Body, "Fichier supprimé : plan-cablage.pdf")
	assert.Equal(t, uint(5), view.TaskID)
}

func TestDeleteFile_NotFound(t *testing.T) {
	uc := NewDeleteFileUseCase(&mockLedgerRepo{}, &mockTxRunner{}, testLogger())

	_, err := uc.Execute(context.Background(), DeleteFileCommand{FileID: 99, Actor: agentActor})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetFile_IncludesContent(t *testing.T) {
	now := biztime.NowUTC()
	file, err := production.ReconstructFile(3, 5, "plan.pdf", "application/pdf", 4, "AAAA", "A1", "Marie", now)
	require.NoError(t, err)

	ledgerRepo := &mockLedgerRepo{
		GetFileByIDFunc: func(ctx context.Context, fileID uint) (*production.File, error) {
			return file, nil
		},
	}
	uc := NewGetFileUseCase(ledgerRepo, testLogger())

	view, err := uc.Execute(context.Background(), GetFileQuery{FileID: 3})
	require.NoError(t, err)
	assert.Equal(t, "AAAA", view.Content)
}

func TestListFiles_MetadataOnly(t *testing.T) {
	task := existingTask(t, 5, vo.TaskEnCours)
	now := biztime.NowUTC()
	file, err := production.ReconstructFile(3, 5, "plan.pdf", "application/pdf", 4, "", "A1", "Marie", now)
	require.NoError(t, err)

	ledgerRepo := &mockLedgerRepo{
		ListFilesByTaskIDFunc: func(ctx context.Context, taskID uint) ([]*production.File, error) {
			return []*production.File{file}, nil
		},
	}
	uc := NewListFilesUseCase(taskRepoReturning(task), ledgerRepo, testLogger())

	views, err := uc.Execute(context.Background(), ListFilesQuery{TaskID: 5})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].Content)
	assert.Equal(t, "plan.pdf", views[0].FileName)
}
