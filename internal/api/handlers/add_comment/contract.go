package add_comment

import (
	"context"

	addComment "github.com/m04kA/SMC-ShareItService/internal/usecase/add_comment"
)

type AddCommentUseCase interface {
	Execute(ctx context.Context, req *addComment.Request) (*addComment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
