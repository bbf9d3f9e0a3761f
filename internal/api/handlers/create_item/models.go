package create_item

import (
	"github.com/m04kA/SMC-ShareItService/internal/service/items/models"
)

// CreateItemRequest HTTP request model
type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId,omitempty" validate:"omitnil,gt=0"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateItemRequest) ToServiceRequest() *models.CreateItemRequest {
	return &models.CreateItemRequest{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
		RequestID:   r.RequestID,
	}
}
