package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"provisio/internal/shared/errors"
)

func strPtr(s string) *string { return &s }

func TestUpdateProduction(t *testing.T) {
	prod := existingProduction(t)
	uc := NewUpdateProductionUseCase(productionRepoReturning(prod), &mockTaskRepo{}, testLogger())

	view, err := uc.Execute(context.Background(), UpdateProductionCommand{
		ProductionID: 1,
		Titre:        strPtr("Déploiement site Lyon — phase 2"),
		Priorite:     strPtr("haute"),
		Status:       strPtr("bloque"),
		Actor:        agentActor,
	})
	require.NoError(t, err)

	assert.Equal(t, "Déploiement site Lyon — phase 2", view.Titre)
	assert.Equal(t, "haute", view.Priorite)
	assert.Equal(t, "bloque", view.Status)
}

func TestUpdateProduction_DemandeurForbidden(t *testing.T) {
	uc := NewUpdateProductionUseCase(&mockProductionRepo{}, &mockTaskRepo{}, testLogger())

	_, err := uc.Execute(context.Background(), UpdateProductionCommand{
		ProductionID: 1,
		Titre:        strPtr("Nouveau titre"),
		Actor:        demandeurActor,
	})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUpdateProduction_InvalidStatus(t *testing.T) {
	prod := existingProduction(t)
	uc := NewUpdateProductionUseCase(productionRepoReturning(prod), &mockTaskRepo{}, testLogger())

	_, err := uc.Execute(context.Background(), UpdateProductionCommand{
		ProductionID: 1,
		Status:       strPtr("archived"),
		Actor:        agentActor,
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateProduction_NotFound(t *testing.T) {
	uc := NewUpdateProductionUseCase(&mockProductionRepo{}, &mockTaskRepo{}, testLogger())

	_, err := uc.Execute(context.Background(), UpdateProductionCommand{
		ProductionID: 99,
		Titre:        strPtr("Titre"),
		Actor:        agentActor,
	})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteProduction(t *testing.T) {
	prod := existingProduction(t)
	deleted := false
	repo := productionRepoReturning(prod)
	repo.DeleteFunc = func(ctx context.Context, productionID uint) error {
		deleted = true
		assert.Equal(t, uint(1), productionID)
		return nil
	}
	uc := NewDeleteProductionUseCase(repo, &mockTxRunner{}, testLogger())

	err := uc.Execute(context.Background(), DeleteProductionCommand{ProductionID: 1, Actor: agentActor})
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteProduction_DemandeurForbidden(t *testing.T) {
	uc := NewDeleteProductionUseCase(&mockProductionRepo{}, &mockTxRunner{}, testLogger())

	err := uc.Execute(context.Background(), DeleteProductionCommand{ProductionID: 1, Actor: demandeurActor})
	assert.True(t, errors.IsForbiddenError(err))
}
