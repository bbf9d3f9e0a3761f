package get_user_requests

import (
	"context"

	"github.com/m04kA/SMC-ShareItService/internal/service/itemrequests/models"
)

type RequestService interface {
	GetOwn(ctx context.Context, userID int64) ([]models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
