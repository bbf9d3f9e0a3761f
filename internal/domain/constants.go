package domain

const (
	// DateTimeFormat формат дат в API (без часового пояса)
	DateTimeFormat = "2006-01-02T15:04:05"

	// UserIDHeader заголовок с ID пользователя, выставляемый шлюзом
	UserIDHeader = "X-Sharer-User-Id"

	DefaultPageFrom = 0
	DefaultPageSize = 10
)
