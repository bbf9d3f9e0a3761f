package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	BookerID int64      // ID арендатора из заголовка X-Sharer-User-Id
	ItemID   int64      // ID вещи
	Start    *time.Time // Начало аренды
	End      *time.Time // Конец аренды
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64     // ID созданного бронирования
	Start      time.Time // Начало аренды
	End        time.Time // Конец аренды
	Status     string    // Статус бронирования, всегда WAITING
	ItemID     int64     // ID вещи
	ItemName   string    // Название вещи
	BookerID   int64     // ID арендатора
	BookerName string    // Имя арендатора
}
