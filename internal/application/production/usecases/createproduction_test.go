package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"provisio/internal/domain/production"
	"provisio/internal/shared/authorization"
	"provisio/internal/shared/errors"
)

var (
	agentActor     = authorization.Actor{ID: "A1", Name: "Marie Durand", Role: authorization.RoleAgent}
	demandeurActor = authorization.Actor{ID: "D1", Name: "Paul Roux", Role: authorization.RoleDemandeur}
)

func newCreateProductionUseCase(
	productionRepo *mockProductionRepo,
	taskRepo *mockTaskRepo,
	numberGen *mockNumberGenerator,
) *CreateProductionUseCase {
	return NewCreateProductionUseCase(productionRepo, taskRepo, numberGen, &mockTxRunner{}, testLogger())
}

func TestCreateProduction(t *testing.T) {
	var savedTasks []*production.Task
	taskRepo := &mockTaskRepo{
		SaveBatchFunc: func(ctx context.Context, tasks []*production.Task) error {
			savedTasks = tasks
			for i, task := range tasks {
				require.NoError(t, task.SetID(uint(i+1)))
			}
			return nil
		},
	}
	uc := newCreateProductionUseCase(&mockProductionRepo{}, taskRepo, &mockNumberGenerator{})

	view, err := uc.Execute(context.Background(), CreateProductionCommand{
		Titre:    "Déploiement site Lyon",
		ClientID: "C1",
		Actor:    agentActor,
	})
	require.NoError(t, err)

	assert.Equal(t, "PRD-20260831-0001", view.Number)
	assert.Equal(t, "en_attente", view.Status)
	assert.Equal(t, "normale", view.Priorite)
	assert.Equal(t, 0, view.Progress)
	require.Len(t, view.Taches, 12)
	assert.Equal(t, "Portabilité", view.Taches[0].NomTache)
	assert.Equal(t, "Facturation", view.Taches[11].NomTache)

	require.Len(t, savedTasks, 12)
	for i, task := range savedTasks {
		assert.Equal(t, i+1, task.Ordre())
		assert.Equal(t, "a_faire", task.Status().String())
	}
}

func TestCreateProduction_DemandeurCreatesForSelf(t *testing.T) {
	uc := newCreateProductionUseCase(&mockProductionRepo{}, &mockTaskRepo{}, &mockNumberGenerator{})

	view, err := uc.Execute(context.Background(), CreateProductionCommand{
		Titre:       "Nouvelle ligne",
		ClientID:    "C1",
		DemandeurID: "someone-else",
		Actor:       demandeurActor,
	})
	require.NoError(t, err)
	assert.Equal(t, "D1", view.DemandeurID, "demandeur_id must be forced to the caller for demandeurs")
}

func TestCreateProduction_AgentCanSetDemandeur(t *testing.T) {
	uc := newCreateProductionUseCase(&mockProductionRepo{}, &mockTaskRepo{}, &mockNumberGenerator{})

	view, err := uc.Execute(context.Background(), CreateProductionCommand{
		Titre:       "Nouvelle ligne",
		ClientID:    "C1",
		DemandeurID: "D9",
		Actor:       agentActor,
	})
	require.NoError(t, err)
	assert.Equal(t, "D9", view.DemandeurID)
}

func TestCreateProduction_Validation(t *testing.T) {
	uc := newCreateProductionUseCase(&mockProductionRepo{}, &mockTaskRepo{}, &mockNumberGenerator{})

	_, err := uc.Execute(context.Background(), CreateProductionCommand{
		Titre: "", ClientID: "C1", Actor: agentActor,
	})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreateProductionCommand{
		Titre: "Titre", ClientID: "", Actor: agentActor,
	})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreateProductionCommand{
		Titre: "Titre", ClientID: "C1", Priorite: "extreme", Actor: agentActor,
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateProduction_RollsBackWhenTasksFail(t *testing.T) {
	taskRepo := &mockTaskRepo{
		SaveBatchFunc: func(ctx context.Context, tasks []*production.Task) error {
			return fmt.Errorf("insert failed")
		},
	}
	uc := newCreateProductionUseCase(&mockProductionRepo{}, taskRepo, &mockNumberGenerator{})

	_, err := uc.Execute(context.Background(), CreateProductionCommand{
		Titre: "Titre", ClientID: "C1", Actor: agentActor,
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}

func TestCreateProduction_NumberGeneratorFailure(t *testing.T) {
	numberGen := &mockNumberGenerator{
		GenerateFunc: func(ctx context.Context) (string, error) {
			return "", fmt.Errorf("sequence unavailable")
		},
	}
	uc := newCreateProductionUseCase(&mockProductionRepo{}, &mockTaskRepo{}, numberGen)

	_, err := uc.Execute(context.Background(), CreateProductionCommand{
		Titre: "Titre", ClientID: "C1", Actor: agentActor,
	})
	require.Error(t, err)
	assert.False(t, errors.IsValidationError(err))
}
