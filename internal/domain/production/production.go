package production

import (
	"fmt"
	"sort"
	"strings"
	"time"

	vo "provisio/internal/domain/production/valueobjects"
	"provisio/internal/shared/biztime"
)

// Production is a provisioning work order: a bundle of telecom setup
// tasks for one client. Its status is set explicitly by agents and is
// deliberately not derived from task progress.
type Production struct {
	id                     uint
	number                 string
	titre                  string
	description            string
	priority               vo.Priority
	status                 vo.ProductionStatus
	demandeurID            string
	clientID               string
	dateLivraisonSouhaitee *time.Time
	createdAt              time.Time
	updatedAt              time.Time
	tasks                  []*Task
}

func NewProduction(
	titre string,
	description string,
	priority vo.Priority,
	clientID string,
	demandeurID string,
	dateLivraisonSouhaitee *time.Time,
) (*Production, error) {
	if len(strings.TrimSpace(titre)) == 0 {
		return nil, fmt.Errorf("titre is required")
	}
	if len(titre) > 200 {
		return nil, fmt.Errorf("titre exceeds maximum length of 200 characters")
	}
	if len(clientID) == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if len(demandeurID) == 0 {
		return nil, fmt.Errorf("demandeur ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := biztime.NowUTC()
	return &Production{
		titre:                  titre,
		description:            description,
		priority:               priority,
		status:                 vo.ProductionEnAttente,
		demandeurID:            demandeurID,
		clientID:               clientID,
		dateLivraisonSouhaitee: dateLivraisonSouhaitee,
		createdAt:              now,
		updatedAt:              now,
		tasks:                  []*Task{},
	}, nil
}

func ReconstructProduction(
	id uint,
	number string,
	titre string,
	description string,
	priority vo.Priority,
	status vo.ProductionStatus,
	clientID string,
	demandeurID string,
	dateLivraisonSouhaitee *time.Time,
	createdAt, updatedAt time.Time,
) (*Production, error) {
	if id == 0 {
		return nil, fmt.Errorf("production ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("production number is required")
	}
	if len(titre) == 0 {
		return nil, fmt.Errorf("titre is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Production{
		id:                     id,
		number:                 number,
		titre:                  titre,
		description:            description,
		priority:               priority,
		status:                 status,
		demandeurID:            demandeurID,
		clientID:               clientID,
		dateLivraisonSouhaitee: dateLivraisonSouhaitee,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
		tasks:                  []*Task{},
	}, nil
}

func (p *Production) ID() uint {
	return p.id
}

func (p *Production) Number() string {
	return p.number
}

func (p *Production) Titre() string {
	return p.titre
}

func (p *Production) Description() string {
	return p.description
}

func (p *Production) Priority() vo.Priority {
	return p.priority
}

func (p *Production) Status() vo.ProductionStatus {
	return p.status
}

func (p *Production) DemandeurID() string {
	return p.demandeurID
}

func (p *Production) ClientID() string {
	return p.clientID
}

func (p *Production) DateLivraisonSouhaitee() *time.Time {
	return p.dateLivraisonSouhaitee
}

func (p *Production) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Production) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Production) Tasks() []*Task {
	tasksCopy := make([]*Task, len(p.tasks))
	copy(tasksCopy, p.tasks)
	return tasksCopy
}

func (p *Production) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("production ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("production ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Production) SetNumber(number string) error {
	if len(p.number) > 0 {
		return fmt.Errorf("production number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("production number cannot be empty")
	}
	p.number = number
	return nil
}

// AttachTasks replaces the loaded task set, keeping it sorted by ordre.
func (p *Production) AttachTasks(tasks []*Task) error {
	for _, t := range tasks {
		if t == nil {
			return fmt.Errorf("task cannot be nil")
		}
		if p.id != 0 && t.ProductionID() != p.id {
			return fmt.Errorf("task production ID mismatch")
		}
	}
	attached := make([]*Task, len(tasks))
	copy(attached, tasks)
	sortTasksByOrdre(attached)
	p.tasks = attached
	return nil
}

func (p *Production) UpdateTitre(titre string) error {
	if len(strings.TrimSpace(titre)) == 0 {
		return fmt.Errorf("titre cannot be empty")
	}
	if len(titre) > 200 {
		return fmt.Errorf("titre exceeds maximum length of 200 characters")
	}
	p.titre = titre
	p.touch()
	return nil
}

func (p *Production) UpdateDescription(description string) {
	p.description = description
	p.touch()
}

func (p *Production) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	if p.priority == newPriority {
		return nil
	}
	p.priority = newPriority
	p.touch()
	return nil
}

// ChangeStatus sets the production status. Any valid status may be set by
// an agent; there is no transition table at the production level.
func (p *Production) ChangeStatus(newStatus vo.ProductionStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if p.status == newStatus {
		return nil
	}
	p.status = newStatus
	p.touch()
	return nil
}

func (p *Production) ReassignClient(clientID string) error {
	if len(clientID) == 0 {
		return fmt.Errorf("client ID cannot be empty")
	}
	p.clientID = clientID
	p.touch()
	return nil
}

func (p *Production) ReassignDemandeur(demandeurID string) error {
	if len(demandeurID) == 0 {
		return fmt.Errorf("demandeur ID cannot be empty")
	}
	p.demandeurID = demandeurID
	p.touch()
	return nil
}

func (p *Production) SetDateLivraisonSouhaitee(d *time.Time) {
	p.dateLivraisonSouhaitee = d
	p.touch()
}

// Progress computes the percentage of tasks in termine over the loaded
// task set. See ComputeProgress for the exclusion semantics.
func (p *Production) Progress(excludeOutOfScope bool) int {
	return ComputeProgress(p.tasks, excludeOutOfScope)
}

func (p *Production) touch() {
	p.updatedAt = biztime.NowUTC()
}

func sortTasksByOrdre(tasks []*Task) {
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Ordre() < tasks[j].Ordre()
	})
}
