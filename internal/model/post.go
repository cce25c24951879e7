package model

import "time"

// Post is a mutable record owned by a principal. Updating it is a
// broadcast-worthy occurrence: the post repository publishes a model-change
// event after every successful update.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
