package models

import (
	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос списка бронирований арендатора или владельца
type ListBookingsRequest struct {
	UserID int64
	State  string
	From   int
	Size   int
}

// Response модели

// BookingItemResponse вещь в составе бронирования
type BookingItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookerResponse арендатор в составе бронирования
type BookerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID     int64               `json:"id"`
	Start  string              `json:"start"` // "2026-01-02T15:04:05"
	End    string              `json:"end"`
	Status string              `json:"status"`
	Booker BookerResponse      `json:"booker"`
	Item   BookingItemResponse `json:"item"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:     b.ID,
		Start:  b.Start.Format(domain.DateTimeFormat),
		End:    b.End.Format(domain.DateTimeFormat),
		Status: string(b.Status),
		Booker: BookerResponse{ID: b.Booker.ID, Name: b.Booker.Name},
		Item:   BookingItemResponse{ID: b.Item.ID, Name: b.Item.Name},
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, *FromDomainBooking(b))
	}
	return resp
}
