package usecases

import (
	"context"

	"provisio/internal/domain/production"
	"provisio/internal/shared/errors"
	"provisio/internal/shared/logger"
)

type mockProductionRepo struct {
	SaveFunc    func(ctx context.Context, p *production.Production) error
	UpdateFunc  func(ctx context.Context, p *production.Production) error
	DeleteFunc  func(ctx context.Context, productionID uint) error
	GetByIDFunc func(ctx context.Context, productionID uint) (*production.Production, error)
	ListFunc    func(ctx context.Context, filter production.ProductionFilter) ([]*production.Production, int64, error)
}

func (m *mockProductionRepo) Save(ctx context.Context, p *production.Production) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return p.SetID(1)
}

func (m *mockProductionRepo) Update(ctx context.Context, p *production.Production) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductionRepo) Delete(ctx context.Context, productionID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, productionID)
	}
	return nil
}

func (m *mockProductionRepo) GetByID(ctx context.Context, productionID uint) (*production.Production, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, productionID)
	}
	return nil, errors.NewNotFoundError("production not found")
}

func (m *mockProductionRepo) List(ctx context.Context, filter production.ProductionFilter) ([]*production.Production, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockTaskRepo struct {
	SaveBatchFunc          func(ctx context.Context, tasks []*production.Task) error
	UpdateFunc             func(ctx context.Context, task *production.Task) error
	GetByIDFunc            func(ctx context.Context, taskID uint) (*production.Task, error)
	ListByProductionIDFunc func(ctx context.Context, productionID uint) ([]*production.Task, error)
}

func (m *mockTaskRepo) SaveBatch(ctx context.Context, tasks []*production.Task) error {
	if m.SaveBatchFunc != nil {
		return m.SaveBatchFunc(ctx, tasks)
	}
	for i, task := range tasks {
		if err := task.SetID(uint(i + 1)); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockTaskRepo) Update(ctx context.Context, task *production.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *mockTaskRepo) GetByID(ctx context.Context, taskID uint) (*production.Task, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, taskID)
	}
	return nil, errors.NewNotFoundError("task not found")
}

func (m *mockTaskRepo) ListByProductionID(ctx context.Context, productionID uint) ([]*production.Task, error) {
	if m.ListByProductionIDFunc != nil {
		return m.ListByProductionIDFunc(ctx, productionID)
	}
	return nil, nil
}

type mockLedgerRepo struct {
	SaveCommentFunc          func(ctx context.Context, comment *production.Comment) error
	ListCommentsByTaskIDFunc func(ctx context.Context, taskID uint) ([]*production.Comment, error)
	SaveFileFunc             func(ctx context.Context, file *production.File) error
	GetFileByIDFunc          func(ctx context.Context, fileID uint) (*production.File, error)
	ListFilesByTaskIDFunc    func(ctx context.Context, taskID uint) ([]*production.File, error)
	DeleteFileFunc           func(ctx context.Context, fileID uint) error
}

func (m *mockLedgerRepo) SaveComment(ctx context.Context, comment *production.Comment) error {
	if m.SaveCommentFunc != nil {
		return m.SaveCommentFunc(ctx, comment)
	}
	if comment.ID() == 0 {
		return comment.SetID(1)
	}
	return nil
}

func (m *mockLedgerRepo) ListCommentsByTaskID(ctx context.Context, taskID uint) ([]*production.Comment, error) {
	if m.ListCommentsByTaskIDFunc != nil {
		return m.ListCommentsByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *mockLedgerRepo) SaveFile(ctx context.Context, file *production.File) error {
	if m.SaveFileFunc != nil {
		return m.SaveFileFunc(ctx, file)
	}
	return file.SetID(1)
}

func (m *mockLedgerRepo) GetFileByID(ctx context.Context, fileID uint) (*production.File, error) {
	if m.GetFileByIDFunc != nil {
		return m.GetFileByIDFunc(ctx, fileID)
	}
	return nil, errors.NewNotFoundError("file not found")
}

func (m *mockLedgerRepo) ListFilesByTaskID(ctx context.Context, taskID uint) ([]*production.File, error) {
	if m.ListFilesByTaskIDFunc != nil {
		return m.ListFilesByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *mockLedgerRepo) DeleteFile(ctx context.Context, fileID uint) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, fileID)
	}
	return nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "PRD-20260831-0001", nil
}

// mockTxRunner executes the unit of work inline, with no real transaction.
type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
