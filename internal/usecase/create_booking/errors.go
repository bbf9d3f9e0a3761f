package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

var (
	// ErrStartRequired возвращается, когда не указано начало бронирования
	ErrStartRequired = fmt.Errorf("%w: create_booking: start time is required", domain.ErrValidation)

	// ErrEndRequired возвращается, когда не указан конец бронирования
	ErrEndRequired = fmt.Errorf("%w: create_booking: end time is required", domain.ErrValidation)

	// ErrEndInPast возвращается, когда конец бронирования уже прошёл
	ErrEndInPast = fmt.Errorf("%w: create_booking: end time is in the past", domain.ErrValidation)

	// ErrEndBeforeStart возвращается, когда конец раньше начала
	ErrEndBeforeStart = fmt.Errorf("%w: create_booking: end time is before start time", domain.ErrValidation)

	// ErrEmptyInterval возвращается, когда начало совпадает с концом
	ErrEmptyInterval = fmt.Errorf("%w: create_booking: start and end are equal", domain.ErrValidation)

	// ErrStartInPast возвращается, когда начало бронирования уже прошло
	ErrStartInPast = fmt.Errorf("%w: create_booking: start time is in the past", domain.ErrValidation)

	// ErrItemNotFound возвращается, когда вещь не найдена
	ErrItemNotFound = fmt.Errorf("%w: create_booking: item not found", domain.ErrNotFound)

	// ErrOwnItem возвращается при попытке забронировать свою вещь
	ErrOwnItem = fmt.Errorf("%w: create_booking: owner cannot book own item", domain.ErrNotFound)

	// ErrUserNotFound возвращается, когда арендатор не найден
	ErrUserNotFound = fmt.Errorf("%w: create_booking: user not found", domain.ErrNotFound)

	// ErrItemUnavailable возвращается, когда вещь недоступна для бронирования
	ErrItemUnavailable = fmt.Errorf("%w: create_booking: item is not available", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: create_booking: internal error", domain.ErrInternal)
)
