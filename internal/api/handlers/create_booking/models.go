package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	createBooking "github.com/m04kA/SMC-ShareItService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ShareItService/pkg/ptr"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ItemID int64   `json:"itemId" validate:"gt=0"`
	Start  *string `json:"start,omitempty"` // "2026-01-02T15:04:05"
	End    *string `json:"end,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID     int64       `json:"id"`
	Start  string      `json:"start"`
	End    string      `json:"end"`
	Status string      `json:"status"`
	Booker BookerShort `json:"booker"`
	Item   ItemShort   `json:"item"`
}

// BookerShort арендатор в ответе
type BookerShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ItemShort вещь в ответе
type ItemShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Отсутствующие даты передаются как nil, их проверяет use case
func (r *CreateBookingRequest) ToUseCaseRequest(bookerID int64) (*createBooking.Request, error) {
	start, err := parseOptionalTime(r.Start)
	if err != nil {
		return nil, err
	}

	end, err := parseOptionalTime(r.End)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		BookerID: bookerID,
		ItemID:   r.ItemID,
		Start:    start,
		End:      end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:     resp.ID,
		Start:  resp.Start.Format(domain.DateTimeFormat),
		End:    resp.End.Format(domain.DateTimeFormat),
		Status: resp.Status,
		Booker: BookerShort{ID: resp.BookerID, Name: resp.BookerName},
		Item:   ItemShort{ID: resp.ItemID, Name: resp.ItemName},
	}
}

func parseOptionalTime(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := time.ParseInLocation(domain.DateTimeFormat, *raw, time.Local)
	if err != nil {
		return nil, err
	}
	return ptr.Ptr(t), nil
}
