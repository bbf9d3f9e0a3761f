package add_comment

import (
	"time"
)

// Request модель запроса на добавление отзыва
type Request struct {
	ItemID   int64
	AuthorID int64
	Text     string
}

// Response модель ответа с созданным отзывом
type Response struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorName string
	Created    time.Time
}
