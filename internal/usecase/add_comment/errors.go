package add_comment

import (
	"fmt"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

var (
	// ErrEmptyText возвращается, когда текст отзыва пустой
	ErrEmptyText = fmt.Errorf("%w: add_comment: comment text is blank", domain.ErrValidation)

	// ErrNotPastBooker возвращается, когда у автора нет завершённой подтверждённой аренды вещи
	ErrNotPastBooker = fmt.Errorf("%w: add_comment: user has no finished approved booking of the item", domain.ErrValidation)

	// ErrUserNotFound возвращается, когда автор не найден
	ErrUserNotFound = fmt.Errorf("%w: add_comment: user not found", domain.ErrNotFound)

	// ErrItemNotFound возвращается, когда вещь не найдена
	ErrItemNotFound = fmt.Errorf("%w: add_comment: item not found", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: add_comment: internal error", domain.ErrInternal)
)
