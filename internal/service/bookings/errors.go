package bookings

import (
	"fmt"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено или недоступно пользователю
	ErrBookingNotFound = fmt.Errorf("%w: bookings: booking not found", domain.ErrNotFound)

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = fmt.Errorf("%w: bookings: user not found", domain.ErrNotFound)

	// ErrNotItemOwner возвращается, когда статус меняет не владелец вещи
	ErrNotItemOwner = fmt.Errorf("%w: bookings: user is not owner of the item", domain.ErrNotFound)

	// ErrAlreadyApproved возвращается при повторном подтверждении
	ErrAlreadyApproved = fmt.Errorf("%w: bookings: booking already approved", domain.ErrValidation)

	// ErrStatusConflict возвращается, когда статус изменили параллельно
	ErrStatusConflict = fmt.Errorf("%w: bookings: booking status changed concurrently", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: bookings: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: bookings: internal error", domain.ErrInternal)
)
