package domain

import "time"

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// BookingItem данные вещи, которые нужны вместе с бронированием
type BookingItem struct {
	ID      int64
	Name    string
	OwnerID int64
}

// BookingUser данные арендатора
type BookingUser struct {
	ID   int64
	Name string
}

// Booking бронирование вещи на интервал [Start, End)
type Booking struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status BookingStatus
	Item   BookingItem
	Booker BookingUser
}

// IsApproved возвращает true для подтверждённого бронирования
func (b *Booking) IsApproved() bool {
	return b.Status == StatusApproved
}

// IsVisibleTo бронирование видят только арендатор и владелец вещи
func (b *Booking) IsVisibleTo(userID int64) bool {
	return b.Booker.ID == userID || b.Item.OwnerID == userID
}

// DecisionStatus статус, в который переходит бронирование после решения владельца
func DecisionStatus(approved bool) BookingStatus {
	if approved {
		return StatusApproved
	}
	return StatusRejected
}
