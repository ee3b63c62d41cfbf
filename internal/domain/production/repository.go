package production

import (
	"context"

	vo "provisio/internal/domain/production/valueobjects"
)

// ProductionFilter narrows List queries. StatusIn nil means no status
// filter; NumberSearch is a substring match on the production number.
type ProductionFilter struct {
	StatusIn     []vo.ProductionStatus
	ClientID     *string
	NumberSearch string
	Page         int
	PageSize     int
}

type ProductionRepository interface {
	Save(ctx context.Context, p *Production) error
	Update(ctx context.Context, p *Production) error
	// Delete hard-deletes the production and cascades to its tasks,
	// comments and files inside the caller's transaction.
	Delete(ctx context.Context, productionID uint) error
	GetByID(ctx context.Context, productionID uint) (*Production, error)
	List(ctx context.Context, filter ProductionFilter) ([]*Production, int64, error)
}

type TaskRepository interface {
	SaveBatch(ctx context.Context, tasks []*Task) error
	Update(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, taskID uint) (*Task, error)
	ListByProductionID(ctx context.Context, productionID uint) ([]*Task, error)
}

// LedgerRepository persists the append-only comment/file ledger.
type LedgerRepository interface {
	SaveComment(ctx context.Context, comment *Comment) error
	ListCommentsByTaskID(ctx context.Context, taskID uint) ([]*Comment, error)

	SaveFile(ctx context.Context, file *File) error
	GetFileByID(ctx context.Context, fileID uint) (*File, error)
	// ListFilesByTaskID returns file metadata; Content is left empty.
	ListFilesByTaskID(ctx context.Context, taskID uint) ([]*File, error)
	DeleteFile(ctx context.Context, fileID uint) error
}
