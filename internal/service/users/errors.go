package users

import (
	"fmt"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = fmt.Errorf("%w: users: user not found", domain.ErrNotFound)

	// ErrEmailExists возвращается, когда e-mail уже занят
	ErrEmailExists = fmt.Errorf("%w: users: email already exists", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: users: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: users: internal error", domain.ErrInternal)
)
