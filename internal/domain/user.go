package domain

// User пользователь сервиса
type User struct {
	ID    int64
	Name  string
	Email string
}

// UserPatch частичное обновление пользователя, nil поля не меняются
type UserPatch struct {
	Name  *string
	Email *string
}

// Apply применяет изменения к копии пользователя
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}
