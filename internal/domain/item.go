package domain

import "strings"

// Item вещь, которую владелец сдаёт в аренду
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// ItemPatch частичное обновление вещи, nil поля не меняются
type ItemPatch struct {
	Name        *string
	Description *string
	Available   *bool
}

// Apply применяет изменения к копии вещи
func (p ItemPatch) Apply(it Item) Item {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Available != nil {
		it.Available = *p.Available
	}
	return it
}

// IsOwnedBy проверяет владельца вещи
func (it *Item) IsOwnedBy(userID int64) bool {
	return it.OwnerID == userID
}

// MatchesSearch регистронезависимый поиск по описанию среди доступных вещей
func (it *Item) MatchesSearch(text string) bool {
	if !it.Available || strings.TrimSpace(text) == "" {
		return false
	}
	return strings.Contains(strings.ToLower(it.Description), strings.ToLower(text))
}

// BookingRef краткая ссылка на бронирование в карточке вещи
type BookingRef struct {
	ID       int64
	BookerID int64
}

// ItemDetail вещь с ближайшими бронированиями и отзывами
// LastBooking и NextBooking заполняются только для владельца
type ItemDetail struct {
	Item
	LastBooking *BookingRef
	NextBooking *BookingRef
	Comments    []Comment
}
