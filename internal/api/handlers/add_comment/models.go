package add_comment

import (
	"github.com/m04kA/SMC-ShareItService/internal/domain"
	addComment "github.com/m04kA/SMC-ShareItService/internal/usecase/add_comment"
)

// AddCommentRequest HTTP request model
type AddCommentRequest struct {
	Text string `json:"text"`
}

// CommentResponse HTTP response model
type CommentResponse struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	ItemID     int64  `json:"itemId"`
	AuthorName string `json:"authorName"`
	Created    string `json:"created"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addComment.Response) *CommentResponse {
	return &CommentResponse{
		ID:         resp.ID,
		Text:       resp.Text,
		ItemID:     resp.ItemID,
		AuthorName: resp.AuthorName,
		Created:    resp.Created.Format(domain.DateTimeFormat),
	}
}
