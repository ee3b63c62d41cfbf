package production

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "provisio/internal/domain/production/valueobjects"
	"provisio/internal/shared/biztime"
)

// maxCommentLength mirrors the limit the UI enforces client-side; the
// server enforces it too.
const maxCommentLength = 1000

// Comment is one append-only ledger entry on a task. Entries are either
// user-authored (commentaire) or system-generated by a mutation
// (status_change, file_upload, file_delete). Comments are never edited
// or deleted.
type Comment struct {
	id          uint
	taskID      uint
	authorID    string
	authorName  string
	authorRole  string
	body        string
	commentType vo.CommentType
	createdAt   time.Time
}

// NewUserComment creates a user-authored ledger entry.
func NewUserComment(taskID uint, authorID, authorName, authorRole, body string) (*Comment, error) {
	if len(strings.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("comment body cannot be empty")
	}
	// Counted in runes, matching the binding-layer max on the request DTO.
	if utf8.RuneCountInString(body) > maxCommentLength {
		return nil, fmt.Errorf("comment body exceeds maximum length of %d characters", maxCommentLength)
	}
	return newComment(taskID, authorID, authorName, authorRole, body, vo.CommentUser)
}

// NewStatusChangeComment creates the system entry appended when a task
// status changes.
func NewStatusChangeComment(taskID uint, authorID, authorName, authorRole string, from, to vo.TaskStatus) (*Comment, error) {
	body := fmt.Sprintf("Statut modifié : «%s» → «%s»", from, to)
	return newComment(taskID, authorID, authorName, authorRole, body, vo.CommentStatusChange)
}

// NewFileUploadComment creates the system entry appended when a file is
// attached to a task.
func NewFileUploadComment(taskID uint, authorID, authorName, authorRole, fileName string) (*Comment, error) {
	body := fmt.Sprintf("Fichier ajouté : %s", fileName)
	return newComment(taskID, authorID, authorName, authorRole, body, vo.CommentFileUpload)
}

// NewFileDeleteComment creates the system entry appended when a task file
// is removed.
func NewFileDeleteComment(taskID uint, authorID, authorName, authorRole, fileName string) (*Comment, error) {
	body := fmt.Sprintf("Fichier supprimé : %s", fileName)
	return newComment(taskID, authorID, authorName, authorRole, body, vo.CommentFileDelete)
}

func newComment(taskID uint, authorID, authorName, authorRole, body string, commentType vo.CommentType) (*Comment, error) {
	if taskID == 0 {
		return nil, fmt.Errorf("task ID is required")
	}
	if len(authorID) == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		taskID:      taskID,
		authorID:    authorID,
		authorName:  authorName,
		authorRole:  authorRole,
		body:        body,
		commentType: commentType,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	taskID uint,
	authorID string,
	authorName string,
	authorRole string,
	body string,
	commentType vo.CommentType,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if taskID == 0 {
		return nil, fmt.Errorf("task ID is required")
	}
	if !commentType.IsValid() {
		return nil, fmt.Errorf("invalid comment type")
	}

	return &Comment{
		id:          id,
		taskID:      taskID,
		authorID:    authorID,
		authorName:  authorName,
		authorRole:  authorRole,
		body:        body,
		commentType: commentType,
		createdAt:   createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TaskID() uint {
	return c.taskID
}

func (c *Comment) AuthorID() string {
	return c.authorID
}

func (c *Comment) AuthorName() string {
	return c.authorName
}

func (c *Comment) AuthorRole() string {
	return c.authorRole
}

func (c *Comment) Body() string {
	return c.body
}

func (c *Comment) Type() vo.CommentType {
	return c.commentType
}

func (c *Comment) IsSystem() bool {
	return c.commentType.IsSystem()
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
