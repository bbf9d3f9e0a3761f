package items

import (
	"fmt"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

var (
	// ErrItemNotFound возвращается, когда вещь не найдена
	ErrItemNotFound = fmt.Errorf("%w: items: item not found", domain.ErrNotFound)

	// ErrNotOwner возвращается, когда вещь меняет не владелец
	// Относится к категории not found, чтобы не раскрывать чужие вещи
	ErrNotOwner = fmt.Errorf("%w: items: item does not belong to user", domain.ErrNotFound)

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = fmt.Errorf("%w: items: user not found", domain.ErrNotFound)

	// ErrRequestNotFound возвращается, когда указанный запрос не найден
	ErrRequestNotFound = fmt.Errorf("%w: items: request not found", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: items: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: items: internal error", domain.ErrInternal)
)
