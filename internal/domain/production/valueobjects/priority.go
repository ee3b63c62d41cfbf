package valueobjects

import "fmt"

type Priority string

const (
	PriorityBasse   Priority = "basse"
	PriorityNormale Priority = "normale"
	PriorityHaute   Priority = "haute"
	PriorityUrgente Priority = "urgente"
)

var validPriorities = map[Priority]bool{
	PriorityBasse:   true,
	PriorityNormale: true,
	PriorityHaute:   true,
	PriorityUrgente: true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

// DefaultPriority is applied when a creation request omits the priority.
func DefaultPriority() Priority {
	return PriorityNormale
}
