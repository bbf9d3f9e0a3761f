package domain

import "time"

// ItemRequest запрос на вещь, которой пока нет в сервисе
type ItemRequest struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
}

// ItemRequestDetail запрос вместе с вещами, созданными в ответ на него
type ItemRequestDetail struct {
	ItemRequest
	Items []Item
}
