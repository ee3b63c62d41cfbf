package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"provisio/internal/domain/production"
	vo "provisio/internal/domain/production/valueobjects"
	"provisio/internal/shared/biztime"
)

func existingProduction(t *testing.T) *production.Production {
	t.Helper()
	now := biztime.NowUTC()
	prod, err := production.ReconstructProduction(
		1, "PRD-20260831-0001", "Déploiement site Lyon", "Migration trunk SIP",
		vo.PriorityNormale, vo.ProductionEnCours, "C1", "D1", nil, now, now,
	)
	require.NoError(t, err)
	return prod
}

func existingTask(t *testing.T, id uint, status vo.TaskStatus) *production.Task {
	t.Helper()
	now := biztime.NowUTC()
	task, err := production.ReconstructTask(
		id, 1, 1, "Portabilité", status, "", nil, "note interne", now, now,
	)
	require.NoError(t, err)
	return task
}

func productionRepoReturning(prod *production.Production) *mockProductionRepo {
	return &mockProductionRepo{
		GetByIDFunc: func(ctx context.Context, productionID uint) (*production.Production, error) {
			return prod, nil
		},
	}
}

func taskRepoReturning(task *production.Task) *mockTaskRepo {
	return &mockTaskRepo{
		GetByIDFunc: func(ctx context.Context, taskID uint) (*production.Task, error) {
			return task, nil
		},
	}
}
