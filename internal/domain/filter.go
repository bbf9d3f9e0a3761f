package domain

import "time"

// BookingsFilter фильтр выборки бронирований
// Все временные границы строгие, nil означает отсутствие ограничения
// Результат всегда упорядочен по Start по убыванию, затем применяются Offset и Limit
type BookingsFilter struct {
	BookerID *int64
	OwnerID  *int64
	ItemID   *int64
	Status   *BookingStatus

	StartBefore *time.Time
	StartAfter  *time.Time
	EndBefore   *time.Time
	EndAfter    *time.Time

	Offset int
	Limit  int
}

// Matches проверяет бронирование на соответствие фильтру (без учёта Offset/Limit)
func (f BookingsFilter) Matches(b *Booking) bool {
	if f.BookerID != nil && b.Booker.ID != *f.BookerID {
		return false
	}
	if f.OwnerID != nil && b.Item.OwnerID != *f.OwnerID {
		return false
	}
	if f.ItemID != nil && b.Item.ID != *f.ItemID {
		return false
	}
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.StartBefore != nil && !b.Start.Before(*f.StartBefore) {
		return false
	}
	if f.StartAfter != nil && !b.Start.After(*f.StartAfter) {
		return false
	}
	if f.EndBefore != nil && !b.End.Before(*f.EndBefore) {
		return false
	}
	if f.EndAfter != nil && !b.End.After(*f.EndAfter) {
		return false
	}
	return true
}

// Page параметры постраничной выдачи: From смещение в элементах, Size размер страницы
type Page struct {
	From int
	Size int
}

// NewPage проверяет параметры страницы
// Одновременно нулевые from и size считаются некорректным запросом
func NewPage(from, size int) (Page, error) {
	if from < 0 || size < 0 {
		return Page{}, ErrInvalidPage
	}
	if from == 0 && size == 0 {
		return Page{}, ErrInvalidPage
	}
	return Page{From: from, Size: size}, nil
}

// ErrInvalidPage некорректные параметры страницы
var ErrInvalidPage = wrapKind(ErrValidation, "invalid pagination: from and size must not be negative and not both zero")
