package domain

import (
	"errors"
	"fmt"
)

// Категории ошибок, по которым handlers выбирают HTTP статус
var (
	// ErrValidation некорректные входные данные или недопустимый переход
	ErrValidation = errors.New("validation error")

	// ErrNotFound сущность не найдена или недоступна вызывающему пользователю
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedState неизвестное значение параметра state
	ErrUnsupportedState = errors.New("unsupported state")

	// ErrConflict нарушение уникальности (e-mail) или гонка при смене статуса
	ErrConflict = errors.New("conflict")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)

// UnsupportedStateError содержит исходное значение state
type UnsupportedStateError struct {
	State string
}

func (e *UnsupportedStateError) Error() string {
	return fmt.Sprintf("Unknown state: %s", e.State)
}

func (e *UnsupportedStateError) Is(target error) bool {
	return target == ErrUnsupportedState
}

func wrapKind(kind error, msg string) error {
	return fmt.Errorf("%w: %s", kind, msg)
}
