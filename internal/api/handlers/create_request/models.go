package create_request

import (
	"github.com/m04kA/SMC-ShareItService/internal/service/itemrequests/models"
)

// CreateRequestRequest HTTP request model
type CreateRequestRequest struct {
	Description *string `json:"description" validate:"required"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateRequestRequest) ToServiceRequest() *models.CreateRequestRequest {
	return &models.CreateRequestRequest{Description: r.Description}
}
