package models

type ProductionModel struct {
	ID                     uint   `gorm:"primaryKey"`
	Number                 string `gorm:"uniqueIndex;size:50;not null"`
	Titre                  string `gorm:"size:200;not null"`
	Description            string `gorm:"type:text"`
	Priority               string `gorm:"size:20;not null;index"`
	Status                 string `gorm:"size:20;not null;index"`
	ClientID               string `gorm:"size:64;not null;index"`
	DemandeurID            string `gorm:"size:64;not null;index"`
	DateLivraisonSouhaitee *int64
	CreatedAt              int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt              int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ProductionModel) TableName() string {
	return "productions"
}

type TaskModel struct {
	ID                 uint   `gorm:"primaryKey"`
	ProductionID       uint   `gorm:"not null;index"`
	Ordre              int    `gorm:"not null"`
	Nom                string `gorm:"size:100;not null"`
	Status             string `gorm:"size:30;not null;index"`
	Descriptif         string `gorm:"type:text"`
	DateLivraison      *int64
	CommentaireInterne string `gorm:"type:text"`
	CreatedAt          int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TaskModel) TableName() string {
	return "production_taches"
}

type TaskCommentModel struct {
	ID          uint   `gorm:"primaryKey"`
	TaskID      uint   `gorm:"not null;index"`
	AuthorID    string `gorm:"size:64;not null"`
	AuthorName  string `gorm:"size:100"`
	AuthorRole  string `gorm:"size:20"`
	Body        string `gorm:"type:text;not null"`
	CommentType string `gorm:"size:20;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TaskCommentModel) TableName() string {
	return "production_tache_commentaires"
}

type TaskFileModel struct {
	ID           uint   `gorm:"primaryKey"`
	TaskID       uint   `gorm:"not null;index"`
	FileName     string `gorm:"size:255;not null"`
	MimeType     string `gorm:"size:100"`
	SizeBytes    int64  `gorm:"not null"`
	Content      string `gorm:"type:longtext;not null"`
	UploaderID   string `gorm:"size:64;not null"`
	UploaderName string `gorm:"size:100"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TaskFileModel) TableName() string {
	return "production_tache_fichiers"
}
