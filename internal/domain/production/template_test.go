package production

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTaskTemplate(t *testing.T) {
	template := DefaultTaskTemplate()

	entries := template.Entries()
	require.Len(t, entries, 12)
	assert.Equal(t, 12, template.Len())

	expected := []string{
		"Portabilité",
		"Fichier de collecte",
		"Poste fixe",
		"Lien internet",
		"Netgate (réception)",
		"Netgate (configuration)",
		"Netgate (retour)",
		"Déploiement Siprouter",
		"Déploiement SIP2/SIP3/SIP4",
		"Routages",
		"Trunk Only",
		"Facturation",
	}

	for i, entry := range entries {
		assert.Equal(t, expected[i], entry.Name)
		assert.Equal(t, i+1, entry.Order)
	}
}

func TestTaskTemplate_EntriesReturnsCopy(t *testing.T) {
	template := DefaultTaskTemplate()

	entries := template.Entries()
	entries[0].Name = "mutated"

	assert.Equal(t, "Portabilité", template.Entries()[0].Name)
}

func TestTasksFromTemplate(t *testing.T) {
	tasks, err := TasksFromTemplate(42, DefaultTaskTemplate())
	require.NoError(t, err)
	require.Len(t, tasks, 12)

	for i, task := range tasks {
		assert.Equal(t, uint(42), task.ProductionID())
		assert.Equal(t, i+1, task.Ordre())
		assert.Equal(t, "a_faire", task.Status().String())
	}
	assert.Equal(t, "Portabilité", tasks[0].Nom())
	assert.Equal(t, "Facturation", tasks[11].Nom())
}
