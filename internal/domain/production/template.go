package production

// TemplateEntry is one entry of the fixed task catalog. Order is the
// 1-based position in the catalog and becomes the task's ordre_tache.
type TemplateEntry struct {
	Name  string
	Order int
}

// TaskTemplate is the ordered catalog of tasks instantiated for every new
// production. Each production snapshots the catalog at creation time via
// its materialized task rows, so editing the catalog never touches
// existing productions.
type TaskTemplate struct {
	version string
	entries []TemplateEntry
}

// defaultCatalog is the provisioning task sequence used for every
// production. The order mirrors the operational fulfillment flow, from
// number portability through billing activation.
var defaultCatalog = []string{
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

// DefaultTaskTemplate returns the current task catalog.
func DefaultTaskTemplate() *TaskTemplate {
	entries := make([]TemplateEntry, len(defaultCatalog))
	for i, name := range defaultCatalog {
		entries[i] = TemplateEntry{Name: name, Order: i + 1}
	}
	return &TaskTemplate{
		version: "v1",
		entries: entries,
	}
}

func (t *TaskTemplate) Version() string {
	return t.version
}

func (t *TaskTemplate) Len() int {
	return len(t.entries)
}

// Entries returns the catalog in order. The slice is a copy; callers
// cannot mutate the registry.
func (t *TaskTemplate) Entries() []TemplateEntry {
	entriesCopy := make([]TemplateEntry, len(t.entries))
	copy(entriesCopy, t.entries)
	return entriesCopy
}
