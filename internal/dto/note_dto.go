package dto

import (
	"encoding/json"
	"time"
)

// Content comes in as raw JSON on purpose: string values pass through, any
// other value gets serialized to its compact text form before storage.
type CreateNoteRequest struct {
	Title      string          `json:"title" validate:"required"`
	Content    json.RawMessage `json:"content" validate:"required"`
	Tags       []string        `json:"tags"`
	UserId     int64           `json:"userId" validate:"required"`
	CategoryId int64           `json:"categoryId" validate:"required"`
}

type CreateNoteResponse struct {
	Id         int64    `json:"id"`
	UserId     int64    `json:"userId"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	CategoryId int64    `json:"categoryId"`
	Tags       []string `json:"tags"`
}

type UpdateNoteRequest struct {
	Id         int64
	Title      string          `json:"title" validate:"required"`
	Content    json.RawMessage `json:"content" validate:"required"`
	Tags       []string        `json:"tags"`
	CategoryId int64           `json:"categoryId" validate:"required"`
}

type UpdateNoteResponse struct {
	Id         int64    `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	CategoryId int64    `json:"categoryId"`
	Tags       []string `json:"tags"`
}

type NoteResponse struct {
	Id         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	UserId     int64     `json:"user_id"`
	CategoryId int64     `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type NoteFilter struct {
	Keyword    string
	CategoryId int64
	SortOrder  string
}

type HomeCategoryNotes struct {
	Category *CategoryResponse `json:"category"`
	Notes    []*NoteResponse   `json:"notes"`
}

type CategoryNotesStat struct {
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type RecentNotesStat struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type TagStatResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type PublishNoteChangedMessage struct {
	UserId int64 `json:"user_id"`
}
