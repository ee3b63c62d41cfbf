package valueobjects

import "fmt"

// CommentType distinguishes user-authored comments from system entries
// appended by mutations (status changes, file add/remove).
type CommentType string

const (
	CommentUser         CommentType = "commentaire"
	CommentStatusChange CommentType = "status_change"
	CommentFileUpload   CommentType = "file_upload"
	CommentFileDelete   CommentType = "file_delete"
)

var validCommentTypes = map[CommentType]bool{
	CommentUser:         true,
	CommentStatusChange: true,
	CommentFileUpload:   true,
	CommentFileDelete:   true,
}

func (ct CommentType) String() string {
	return string(ct)
}

func (ct CommentType) IsValid() bool {
	return validCommentTypes[ct]
}

func (ct CommentType) IsSystem() bool {
	return ct != CommentUser
}

func NewCommentType(s string) (CommentType, error) {
	ct := CommentType(s)
	if !ct.IsValid() {
		return "", fmt.Errorf("invalid comment type: %s", s)
	}
	return ct, nil
}
