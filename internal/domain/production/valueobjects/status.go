package valueobjects

import "fmt"

// ProductionStatus is the status of a production work order. It is set
// explicitly by agents and is not derived from task progress.
type ProductionStatus string

const (
	ProductionEnAttente ProductionStatus = "en_attente"
	ProductionEnCours   ProductionStatus = "en_cours"
	ProductionTermine   ProductionStatus = "termine"
	ProductionBloque    ProductionStatus = "bloque"
	ProductionAnnule    ProductionStatus = "annule"
)

var validProductionStatuses = map[ProductionStatus]bool{
	ProductionEnAttente: true,
	ProductionEnCours:   true,
	ProductionTermine:   true,
	ProductionBloque:    true,
	ProductionAnnule:    true,
}

// ActiveProductionStatuses is the status set behind the "active" list
// filter: not finished, not cancelled.
var ActiveProductionStatuses = []ProductionStatus{
	ProductionEnAttente,
	ProductionEnCours,
	ProductionBloque,
}

func (s ProductionStatus) String() string {
	return string(s)
}

func (s ProductionStatus) IsValid() bool {
	return validProductionStatuses[s]
}

func (s ProductionStatus) IsActive() bool {
	for _, active := range ActiveProductionStatuses {
		if s == active {
			return true
		}
	}
	return false
}

func (s ProductionStatus) IsTermine() bool {
	return s == ProductionTermine
}

func (s ProductionStatus) IsAnnule() bool {
	return s == ProductionAnnule
}

func NewProductionStatus(s string) (ProductionStatus, error) {
	ps := ProductionStatus(s)
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid production status: %s", s)
	}
	return ps, nil
}
