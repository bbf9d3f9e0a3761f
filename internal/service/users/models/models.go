package models

import "github.com/m04kA/SMC-ShareItService/internal/domain"

// CreateUserRequest запрос на создание пользователя
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest частичное обновление, отсутствующие поля не меняются
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// ToDomainPatch конвертирует запрос в domain патч
func (r *UpdateUserRequest) ToDomainPatch() domain.UserPatch {
	return domain.UserPatch{Name: r.Name, Email: r.Email}
}

// UserResponse ответ с данными пользователя
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, *FromDomainUser(u))
	}
	return resp
}
