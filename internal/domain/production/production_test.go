package production

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "provisio/internal/domain/production/valueobjects"
)

func newTestProduction(t *testing.T) *Production {
	p, err := NewProduction("Déploiement site Lyon", "Migration trunk SIP", vo.PriorityNormale, "C1", "D1", nil)
	require.NoError(t, err)
	return p
}

func TestNewProduction(t *testing.T) {
	p := newTestProduction(t)

	assert.Equal(t, vo.ProductionEnAttente, p.Status())
	assert.Equal(t, "C1", p.ClientID())
	assert.Equal(t, "D1", p.DemandeurID())
	assert.Zero(t, p.ID())
	assert.Empty(t, p.Number())
}

func TestNewProduction_Validation(t *testing.T) {
	tests := []struct {
		name        string
		titre       string
		clientID    string
		demandeurID string
	}{
		{"missing titre", "", "C1", "D1"},
		{"blank titre", "   ", "C1", "D1"},
		{"missing client", "Titre", "", "D1"},
		{"missing demandeur", "Titre", "C1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduction(tt.titre, "", vo.PriorityNormale, tt.clientID, tt.demandeurID, nil)
			assert.Error(t, err)
		})
	}
}

func TestProduction_SetIDAndNumber(t *testing.T) {
	p := newTestProduction(t)

	require.NoError(t, p.SetID(7))
	assert.Error(t, p.SetID(8), "ID must be immutable once set")

	require.NoError(t, p.SetNumber("PRD-20260831-0001"))
	assert.Error(t, p.SetNumber("PRD-20260831-0002"))
}

func TestProduction_ChangeStatus(t *testing.T) {
	p := newTestProduction(t)

	require.NoError(t, p.ChangeStatus(vo.ProductionEnCours))
	assert.Equal(t, vo.ProductionEnCours, p.Status())

	// Production status has no transition table; any valid value is allowed.
	require.NoError(t, p.ChangeStatus(vo.ProductionAnnule))
	assert.Equal(t, vo.ProductionAnnule, p.Status())

	assert.Error(t, p.ChangeStatus(vo.ProductionStatus("archived")))
}

func TestProduction_AttachTasksSortsByOrdre(t *testing.T) {
	p := newTestProduction(t)
	require.NoError(t, p.SetID(1))

	t3, err := NewTask(1, 3, "Poste fixe")
	require.NoError(t, err)
	t1, err := NewTask(1, 1, "Portabilité")
	require.NoError(t, err)
	t2, err := NewTask(1, 2, "Fichier de collecte")
	require.NoError(t, err)

	require.NoError(t, p.AttachTasks([]*Task{t3, t1, t2}))

	tasks := p.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, 1, tasks[0].Ordre())
	assert.Equal(t, 2, tasks[1].Ordre())
	assert.Equal(t, 3, tasks[2].Ordre())
}

func TestProduction_AttachTasksRejectsMismatch(t *testing.T) {
	p := newTestProduction(t)
	require.NoError(t, p.SetID(1))

	other, err := NewTask(99, 1, "Portabilité")
	require.NoError(t, err)

	assert.Error(t, p.AttachTasks([]*Task{other}))
}

func taskWithStatus(t *testing.T, ordre int, status vo.TaskStatus) *Task {
	task, err := NewTask(1, ordre, "Tâche")
	require.NoError(t, err)
	switch status {
	case vo.TaskAFaire:
	case vo.TaskTermine:
		require.NoError(t, task.ChangeStatus(vo.TaskEnCours))
		require.NoError(t, task.ChangeStatus(vo.TaskTermine))
	default:
		require.NoError(t, task.ChangeStatus(status))
	}
	return task
}

func TestComputeProgress(t *testing.T) {
	assert.Equal(t, 0, ComputeProgress(nil, true))
	assert.Equal(t, 0, ComputeProgress([]*Task{}, false))

	tasks := []*Task{
		taskWithStatus(t, 1, vo.TaskTermine),
		taskWithStatus(t, 2, vo.TaskEnCours),
		taskWithStatus(t, 3, vo.TaskAFaire),
		taskWithStatus(t, 4, vo.TaskHorsScope),
	}

	// 1 of 4 without exclusion, 1 of 3 with hors_scope excluded.
	assert.Equal(t, 25, ComputeProgress(tasks, false))
	assert.Equal(t, 33, ComputeProgress(tasks, true))
}

func TestComputeProgress_AllTermine(t *testing.T) {
	tasks := []*Task{
		taskWithStatus(t, 1, vo.TaskTermine),
		taskWithStatus(t, 2, vo.TaskTermine),
	}
	assert.Equal(t, 100, ComputeProgress(tasks, true))
	assert.Equal(t, 100, ComputeProgress(tasks, false))
}

func TestComputeProgress_AllHorsScope(t *testing.T) {
	tasks := []*Task{
		taskWithStatus(t, 1, vo.TaskHorsScope),
	}
	assert.Equal(t, 0, ComputeProgress(tasks, true))
	assert.Equal(t, 0, ComputeProgress(tasks, false))
}

func TestComputeProgress_MonotoneOnTermineTransitions(t *testing.T) {
	tasks := []*Task{
		taskWithStatus(t, 1, vo.TaskEnCours),
		taskWithStatus(t, 2, vo.TaskEnCours),
		taskWithStatus(t, 3, vo.TaskEnCours),
	}
	before := ComputeProgress(tasks, true)

	require.NoError(t, tasks[0].ChangeStatus(vo.TaskTermine))
	after := ComputeProgress(tasks, true)
	assert.Greater(t, after, before)

	require.NoError(t, tasks[0].ChangeStatus(vo.TaskEnCours))
	assert.Equal(t, before, ComputeProgress(tasks, true))
}

func TestComputeProgress_TwelveTaskScenario(t *testing.T) {
	tasks, err := TasksFromTemplate(1, DefaultTaskTemplate())
	require.NoError(t, err)
	assert.Equal(t, 0, ComputeProgress(tasks, true))

	require.NoError(t, tasks[0].ChangeStatus(vo.TaskEnCours))
	require.NoError(t, tasks[0].ChangeStatus(vo.TaskTermine))

	// 1/12 truncates to 8%.
	assert.Equal(t, 8, ComputeProgress(tasks, true))
	assert.Equal(t, 8, ComputeProgress(tasks, false))
}
