package itemrequests

import (
	"fmt"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

var (
	// ErrRequestNotFound возвращается, когда запрос не найден
	ErrRequestNotFound = fmt.Errorf("%w: itemrequests: request not found", domain.ErrNotFound)

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = fmt.Errorf("%w: itemrequests: user not found", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: itemrequests: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: itemrequests: internal error", domain.ErrInternal)
)
