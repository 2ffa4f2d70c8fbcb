package dto

import (
	"encoding/json"
	"time"
)

// ImportNoteRecord keeps the loosely-typed fields raw so the importer can
// report exactly which ones are missing or mistyped per record.
type ImportNoteRecord struct {
	Title      string          `json:"title"`
	Content    json.RawMessage `json:"content"`
	CategoryId json.RawMessage `json:"category_id"`
	Tags       json.RawMessage `json:"tags"`
}

type ImportNotesResult struct {
	Imported int
}

type ImportNotesResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// ExportedNote is the downloadable record shape; tags are always a
// materialized array, never the stored JSON text.
type ExportedNote struct {
	Id         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	UserId     int64     `json:"user_id"`
	CategoryId int64     `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}
