package models

import (
	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

// Request модели

// CreateItemRequest запрос на создание вещи
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// UpdateItemRequest частичное обновление вещи
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

// ToDomainPatch конвертирует запрос в domain патч
func (r *UpdateItemRequest) ToDomainPatch() domain.ItemPatch {
	return domain.ItemPatch{Name: r.Name, Description: r.Description, Available: r.Available}
}

// Response модели

// ItemResponse краткие данные вещи
type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// BookingRefResponse ссылка на бронирование в карточке вещи
type BookingRefResponse struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// CommentResponse отзыв о вещи
type CommentResponse struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
	Created    string `json:"created"`
}

// ItemDetailResponse карточка вещи с бронированиями и отзывами
type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingRefResponse `json:"lastBooking"`
	NextBooking *BookingRefResponse `json:"nextBooking"`
	Comments    []CommentResponse   `json:"comments"`
}

// Методы конвертации

// FromDomainItem конвертирует domain модель в DTO
func FromDomainItem(it *domain.Item) *ItemResponse {
	if it == nil {
		return nil
	}
	return &ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		OwnerID:     it.OwnerID,
		RequestID:   it.RequestID,
	}
}

// FromDomainItemList конвертирует список domain моделей в DTO
func FromDomainItemList(items []*domain.Item) []ItemResponse {
	resp := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, *FromDomainItem(it))
	}
	return resp
}

// FromDomainComment конвертирует отзыв в DTO
func FromDomainComment(c domain.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.Created.Format(domain.DateTimeFormat),
	}
}

// FromDomainItemDetail конвертирует карточку вещи в DTO
func FromDomainItemDetail(d *domain.ItemDetail) *ItemDetailResponse {
	resp := &ItemDetailResponse{
		ItemResponse: *FromDomainItem(&d.Item),
		LastBooking:  fromBookingRef(d.LastBooking),
		NextBooking:  fromBookingRef(d.NextBooking),
		Comments:     make([]CommentResponse, 0, len(d.Comments)),
	}
	for _, c := range d.Comments {
		resp.Comments = append(resp.Comments, FromDomainComment(c))
	}
	return resp
}

func fromBookingRef(ref *domain.BookingRef) *BookingRefResponse {
	if ref == nil {
		return nil
	}
	return &BookingRefResponse{ID: ref.ID, BookerID: ref.BookerID}
}
