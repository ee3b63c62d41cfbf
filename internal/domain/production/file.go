package production

import (
	"fmt"
	"time"

	"provisio/internal/shared/biztime"
)

// File is an attachment on a task. Content is kept base64-encoded exactly
// as received from the client; the server never re-encodes it. There is
// deliberately no MIME allowlist or size cap in the production context.
type File struct {
	id           uint
	taskID       uint
	fileName     string
	mimeType     string
	sizeBytes    int64
	content      string
	uploaderID   string
	uploaderName string
	createdAt    time.Time
}

func NewFile(
	taskID uint,
	fileName string,
	mimeType string,
	sizeBytes int64,
	content string,
	uploaderID string,
	uploaderName string,
) (*File, error) {
	if taskID == 0 {
		return nil, fmt.Errorf("task ID is required")
	}
	if len(fileName) == 0 {
		return nil, fmt.Errorf("file name is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("file content is required")
	}
	if sizeBytes < 0 {
		return nil, fmt.Errorf("file size cannot be negative")
	}
	if len(uploaderID) == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}

	return &File{
		taskID:       taskID,
		fileName:     fileName,
		mimeType:     mimeType,
		sizeBytes:    sizeBytes,
		content:      content,
		uploaderID:   uploaderID,
		uploaderName: uploaderName,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructFile(
	id uint,
	taskID uint,
	fileName string,
	mimeType string,
	sizeBytes int64,
	content string,
	uploaderID string,
	uploaderName string,
	createdAt time.Time,
) (*File, error) {
	if id == 0 {
		return nil, fmt.Errorf("file ID cannot be zero")
	}
	if taskID == 0 {
		return nil, fmt.Errorf("task ID is required")
	}
	if len(fileName) == 0 {
		return nil, fmt.Errorf("file name is required")
	}

	return &File{
		id:           id,
		taskID:       taskID,
		fileName:     fileName,
		mimeType:     mimeType,
		sizeBytes:    sizeBytes,
		content:      content,
		uploaderID:   uploaderID,
		uploaderName: uploaderName,
		createdAt:    createdAt,
	}, nil
}

func (f *File) ID() uint {
	return f.id
}

func (f *File) TaskID() uint {
	return f.taskID
}

func (f *File) FileName() string {
	return f.fileName
}

func (f *File) MimeType() string {
	return f.mimeType
}

func (f *File) SizeBytes() int64 {
	return f.sizeBytes
}

func (f *File) Content() string {
	return f.content
}

func (f *File) UploaderID() string {
	return f.uploaderID
}

func (f *File) UploaderName() string {
	return f.uploaderName
}

func (f *File) CreatedAt() time.Time {
	return f.createdAt
}

func (f *File) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("file ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("file ID cannot be zero")
	}
	f.id = id
	return nil
}
