package production

import (
	"fmt"
	"time"

	vo "provisio/internal/domain/production/valueobjects"
	"provisio/internal/shared/biztime"
)

// Task is one of the fixed sub-steps of a production's fulfillment. The
// name and ordre are snapshotted from the task template at creation and
// never change afterward.
type Task struct {
	id                 uint
	productionID       uint
	ordre              int
	nom                string
	status             vo.TaskStatus
	descriptif         string
	dateLivraison      *time.Time
	commentaireInterne string
	createdAt          time.Time
	updatedAt          time.Time
}

func NewTask(productionID uint, ordre int, nom string) (*Task, error) {
	if productionID == 0 {
		return nil, fmt.Errorf("production ID is required")
	}
	if ordre < 1 {
		return nil, fmt.Errorf("ordre must be positive")
	}
	if len(nom) == 0 {
		return nil, fmt.Errorf("nom is required")
	}

	now := biztime.NowUTC()
	return &Task{
		productionID: productionID,
		ordre:        ordre,
		nom:          nom,
		status:       vo.TaskAFaire,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// TasksFromTemplate materializes the full task set for a freshly created
// production, in template order, all at a_faire.
func TasksFromTemplate(productionID uint, template *TaskTemplate) ([]*Task, error) {
	entries := template.Entries()
	tasks := make([]*Task, 0, len(entries))
	for _, entry := range entries {
		task, err := NewTask(productionID, entry.Order, entry.Name)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func ReconstructTask(
	id uint,
	productionID uint,
	ordre int,
	nom string,
	status vo.TaskStatus,
	descriptif string,
	dateLivraison *time.Time,
	commentaireInterne string,
	createdAt, updatedAt time.Time,
) (*Task, error) {
	if id == 0 {
		return nil, fmt.Errorf("task ID cannot be zero")
	}
	if productionID == 0 {
		return nil, fmt.Errorf("production ID is required")
	}
	if ordre < 1 {
		return nil, fmt.Errorf("ordre must be positive")
	}
	if len(nom) == 0 {
		return nil, fmt.Errorf("nom is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid task status")
	}

	return &Task{
		id:                 id,
		productionID:       productionID,
		ordre:              ordre,
		nom:                nom,
		status:             status,
		descriptif:         descriptif,
		dateLivraison:      dateLivraison,
		commentaireInterne: commentaireInterne,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (t *Task) ID() uint {
	return t.id
}

func (t *Task) ProductionID() uint {
	return t.productionID
}

func (t *Task) Ordre() int {
	return t.ordre
}

func (t *Task) Nom() string {
	return t.nom
}

func (t *Task) Status() vo.TaskStatus {
	return t.status
}

func (t *Task) Descriptif() string {
	return t.descriptif
}

func (t *Task) DateLivraison() *time.Time {
	return t.dateLivraison
}

func (t *Task) CommentaireInterne() string {
	return t.commentaireInterne
}

func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Task) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Task) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("task ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("task ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus applies an explicit agent status edit. Any valid status may
// be set directly; setting the current status again is a no-op.
func (t *Task) ChangeStatus(newStatus vo.TaskStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid task status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.touch()
	return nil
}

func (t *Task) UpdateDescriptif(descriptif string) {
	t.descriptif = descriptif
	t.touch()
}

func (t *Task) SetDateLivraison(d *time.Time) {
	t.dateLivraison = d
	t.touch()
}

func (t *Task) SetCommentaireInterne(commentaire string) {
	t.commentaireInterne = commentaire
	t.touch()
}

func (t *Task) touch() {
	t.updatedAt = biztime.NowUTC()
}
