package update_user

import (
	"github.com/m04kA/SMC-ShareItService/internal/service/users/models"
)

// UpdateUserRequest HTTP request model, все поля опциональны
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitnil,email"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateUserRequest) ToServiceRequest() *models.UpdateUserRequest {
	return &models.UpdateUserRequest{Name: r.Name, Email: r.Email}
}
