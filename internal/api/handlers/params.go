package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// PathID положительный идентификатор из пути
func PathID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("path parameter %s is missing", name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("path parameter %s: %w", name, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("path parameter %s must be positive", name)
	}
	return id, nil
}

// QueryInt целое из query, def если параметр не передан
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s: %w", name, err)
	}
	return v, nil
}

// QueryString строка из query, def если параметр не передан
func QueryString(r *http.Request, name string, def string) string {
	if raw := r.URL.Query().Get(name); raw != "" {
		return raw
	}
	return def
}
