package valueobjects

import "fmt"

// TaskStatus is the status of a single production task. Every task starts
// at a_faire; any other status is reached only by an explicit agent edit,
// and any valid status may be set directly (agents correct mistakes by
// picking the right value, not by replaying intermediate states).
type TaskStatus string

const (
	TaskAFaire              TaskStatus = "a_faire"
	TaskEnCours             TaskStatus = "en_cours"
	TaskTermine             TaskStatus = "termine"
	TaskBloque              TaskStatus = "bloque"
	TaskHorsScope           TaskStatus = "hors_scope"
	TaskAttenteInstallation TaskStatus = "attente_installation"
)

var validTaskStatuses = map[TaskStatus]bool{
	TaskAFaire:              true,
	TaskEnCours:             true,
	TaskTermine:             true,
	TaskBloque:              true,
	TaskHorsScope:           true,
	TaskAttenteInstallation: true,
}

func (ts TaskStatus) String() string {
	return string(ts)
}

func (ts TaskStatus) IsValid() bool {
	return validTaskStatuses[ts]
}

func (ts TaskStatus) IsTermine() bool {
	return ts == TaskTermine
}

func (ts TaskStatus) IsBloque() bool {
	return ts == TaskBloque
}

// InScope reports whether the task counts toward progress accounting.
// hors_scope tasks are excluded from the denominator.
func (ts TaskStatus) InScope() bool {
	return ts != TaskHorsScope
}

func NewTaskStatus(s string) (TaskStatus, error) {
	ts := TaskStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid task status: %s", s)
	}
	return ts, nil
}
