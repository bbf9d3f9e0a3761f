package models

import (
	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

// Request модели

// CreateRequestRequest запрос на создание запроса вещи
type CreateRequestRequest struct {
	Description *string `json:"description"`
}

// Response модели

// RequestItemResponse вещь, созданная в ответ на запрос
type RequestItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   int64  `json:"requestId"`
}

// RequestResponse запрос вещи вместе с ответами
type RequestResponse struct {
	ID          int64                 `json:"id"`
	Description string                `json:"description"`
	RequesterID int64                 `json:"requesterId"`
	Created     string                `json:"created"` // "2026-01-02T15:04:05"
	Items       []RequestItemResponse `json:"items"`
}

// Методы конвертации

// FromDomainRequestDetail конвертирует domain модель в DTO
func FromDomainRequestDetail(d *domain.ItemRequestDetail) *RequestResponse {
	resp := &RequestResponse{
		ID:          d.ID,
		Description: d.Description,
		RequesterID: d.RequesterID,
		Created:     d.Created.Format(domain.DateTimeFormat),
		Items:       make([]RequestItemResponse, 0, len(d.Items)),
	}
	for _, it := range d.Items {
		resp.Items = append(resp.Items, RequestItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			OwnerID:     it.OwnerID,
			RequestID:   d.ID,
		})
	}
	return resp
}
