package domain

import "time"

// Comment отзыв арендатора о вещи
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}
