package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DocumentStatus string

const (
	DocumentStatusProcessing DocumentStatus = "processing"
	DocumentStatusCompleted  DocumentStatus = "completed"
	DocumentStatusFailed     DocumentStatus = "failed"
)

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusProcessing, DocumentStatusCompleted, DocumentStatusFailed:
		return true
	}
	return false
}

// DocumentResult is the processing output attached to a completed document.
type DocumentResult struct {
	Summaries   []string `bson:"summaries,omitempty" json:"summaries,omitempty"`
	KeyConcepts []string `bson:"keyConcepts,omitempty" json:"keyConcepts,omitempty"`
	Exercises   []string `bson:"exercises,omitempty" json:"exercises,omitempty"`
}

// ModuleDocument is an embedded record on a module. The dashboard never
// writes these; a separate pipeline owns them.
type ModuleDocument struct {
	FileName  string         `bson:"fileName" json:"fileName"`
	FileSize  int64          `bson:"fileSize" json:"fileSize"`
	Status    DocumentStatus `bson:"status" json:"status"`
	Result    DocumentResult `bson:"result,omitempty" json:"result,omitempty"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`
}

type Module struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	Recommended bool               `bson:"recommended" json:"recommended"`
	Users       []string           `bson:"users,omitempty" json:"users"`
	Documents   []ModuleDocument   `bson:"documents,omitempty" json:"documents"`
}

// ModuleSummary is the projection returned by the module list endpoint.
type ModuleSummary struct {
	ID              primitive.ObjectID `json:"_id"`
	Title           string             `json:"title"`
	IsActive        bool               `json:"isActive"`
	Recommended     bool               `json:"recommended"`
	SubscriberCount int                `json:"subscriberCount"`
	DocumentCount   int                `json:"documentCount"`
}

// Summary projects the list view fields from a full module record.
func (m *Module) Summary() ModuleSummary {
	return ModuleSummary{
		ID:              m.ID,
		Title:           m.Title,
		IsActive:        m.IsActive,
		Recommended:     m.Recommended,
		SubscriberCount: len(m.Users),
		DocumentCount:   len(m.Documents),
	}
}
