package entity

import "time"

// Note rows keep tags as a serialized JSON array; the service layer
// materializes them back into a string slice on the way out.
type Note struct {
	Id         int64
	Title      string
	Content    string
	Tags       string
	UserId     int64
	CategoryId int64
	CreatedAt  time.Time
}
