// Package usecases implements the production lifecycle operations. Each
// use case takes a command, enforces role rules, and persists through the
// domain repositories; multi-write operations run inside one transaction.
package usecases

import (
	"context"
	"time"

	"provisio/internal/domain/production"
	"provisio/internal/shared/authorization"
)

// TransactionRunner is the unit-of-work seam; satisfied by
// db.TransactionManager in production and stubbed in tests.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TaskView is the wire representation of a production task. The internal
// agent commentary is blanked for demandeur callers.
type TaskView struct {
	ID                 uint       `json:"id"`
	ProductionID       uint       `json:"production_id"`
	OrdreTache         int        `json:"ordre_tache"`
	NomTache           string     `json:"nom_tache"`
	Status             string     `json:"status"`
	Descriptif         string     `json:"descriptif"`
	DateLivraison      *time.Time `json:"date_livraison,omitempty"`
	CommentaireInterne string     `json:"commentaire_interne,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ProductionView is the wire representation of a production. Progress is
// recomputed on every read; Taches is populated only on detail reads.
type ProductionView struct {
	ID                     uint       `json:"id"`
	Number                 string     `json:"numero"`
	Titre                  string     `json:"titre"`
	Description            string     `json:"description"`
	Priorite               string     `json:"priorite"`
	Status                 string     `json:"status"`
	ClientID               string     `json:"client_id"`
	DemandeurID            string     `json:"demandeur_id"`
	DateLivraisonSouhaitee *time.Time `json:"date_livraison_souhaitee,omitempty"`
	Progress               int        `json:"progress"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
	Taches                 []TaskView `json:"taches,omitempty"`
}

type CommentView struct {
	ID              uint      `json:"id"`
	TaskID          uint      `json:"production_tache_id"`
	AuthorID        string    `json:"auteur_id"`
	AuthorName      string    `json:"auteur_nom"`
	AuthorRole      string    `json:"auteur_role"`
	Body            string    `json:"contenu"`
	BodyHTML        string    `json:"contenu_html,omitempty"`
	TypeCommentaire string    `json:"type_commentaire"`
	CreatedAt       time.Time `json:"created_at"`
}

// FileView carries file metadata; Content is included only on the
// single-file download path.
type FileView struct {
	ID           uint      `json:"id"`
	TaskID       uint      `json:"production_tache_id"`
	FileName     string    `json:"nom_fichier"`
	MimeType     string    `json:"type_mime"`
	SizeBytes    int64     `json:"taille"`
	Content      string    `json:"contenu,omitempty"`
	UploaderID   string    `json:"uploader_id"`
	UploaderName string    `json:"uploader_nom"`
	CreatedAt    time.Time `json:"created_at"`
}

func newTaskView(t *production.Task, actor authorization.Actor) TaskView {
	view := TaskView{
		ID:            t.ID(),
		ProductionID:  t.ProductionID(),
		OrdreTache:    t.Ordre(),
		NomTache:      t.Nom(),
		Status:        t.Status().String(),
		Descriptif:    t.Descriptif(),
		DateLivraison: t.DateLivraison(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
	if actor.Role.IsAgent() {
		view.CommentaireInterne = t.CommentaireInterne()
	}
	return view
}

func newTaskViews(tasks []*production.Task, actor authorization.Actor) []TaskView {
	views := make([]TaskView, len(tasks))
	for i, t := range tasks {
		views[i] = newTaskView(t, actor)
	}
	return views
}

func newProductionView(p *production.Production, actor authorization.Actor, includeTasks bool) ProductionView {
	view := ProductionView{
		ID:                     p.ID(),
		Number:                 p.Number(),
		Titre:                  p.Titre(),
		Description:            p.Description(),
		Priorite:               p.Priority().String(),
		Status:                 p.Status().String(),
		ClientID:               p.ClientID(),
		DemandeurID:            p.DemandeurID(),
		DateLivraisonSouhaitee: p.DateLivraisonSouhaitee(),
		Progress:               p.Progress(true),
		CreatedAt:              p.CreatedAt(),
		UpdatedAt:              p.UpdatedAt(),
	}
	if includeTasks {
		view.Taches = newTaskViews(p.Tasks(), actor)
	}
	return view
}

func newCommentView(c *production.Comment) CommentView {
	return CommentView{
		ID:              c.ID(),
		TaskID:          c.TaskID(),
		AuthorID:        c.AuthorID(),
		AuthorName:      c.AuthorName(),
		AuthorRole:      c.AuthorRole(),
		Body:            c.Body(),
		TypeCommentaire: c.Type().String(),
		CreatedAt:       c.CreatedAt(),
	}
}

func newFileView(f *production.File, includeContent bool) FileView {
	view := FileView{
		ID:           f.ID(),
		TaskID:       f.TaskID(),
		FileName:     f.FileName(),
		MimeType:     f.MimeType(),
		SizeBytes:    f.SizeBytes(),
		UploaderID:   f.UploaderID(),
		UploaderName: f.UploaderName(),
		CreatedAt:    f.CreatedAt(),
	}
	if includeContent {
		view.Content = f.Content()
	}
	return view
}
