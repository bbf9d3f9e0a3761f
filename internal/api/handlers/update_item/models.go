package update_item

import (
	"github.com/m04kA/SMC-ShareItService/internal/service/items/models"
)

// UpdateItemRequest HTTP request model, меняются только переданные поля
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateItemRequest) ToServiceRequest() *models.UpdateItemRequest {
	return &models.UpdateItemRequest{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}
