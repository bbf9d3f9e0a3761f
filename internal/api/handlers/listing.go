package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

// PageParams параметры постраничного списка из query
type PageParams struct {
	From int `validate:"gte=0"`
	Size int `validate:"gte=0"`
}

// ParsePage читает from и size, size по умолчанию defaultSize
func ParsePage(r *http.Request, defaultSize int) (PageParams, error) {
	from, err := QueryInt(r, "from", domain.DefaultPageFrom)
	if err != nil {
		return PageParams{}, err
	}

	size, err := QueryInt(r, "size", defaultSize)
	if err != nil {
		return PageParams{}, err
	}

	page := PageParams{From: from, Size: size}
	if err := Validate(page); err != nil {
		return PageParams{}, err
	}
	return page, nil
}

// UnsupportedStateMessage текст ошибки для неизвестного state, если err про него
func UnsupportedStateMessage(err error) (string, bool) {
	var stateErr *domain.UnsupportedStateError
	if errors.As(err, &stateErr) {
		return stateErr.Error(), true
	}
	return "", false
}
