package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

// CommentRepository отзывы в памяти
type CommentRepository struct {
	store *Store
}

func (r *CommentRepository) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	comment.ID = s.nextID("comments")
	s.comments[comment.ID] = *comment
	return comment, nil
}

func (r *CommentRepository) GetByItemID(_ context.Context, itemID int64) ([]domain.Comment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]domain.Comment, 0)
	for _, c := range s.comments {
		if c.ItemID != itemID {
			continue
		}
		c.AuthorName = s.users[c.AuthorID].Name
		comments = append(comments, c)
	}

	sort.Slice(comments, func(i, j int) bool {
		if comments[i].Created.Equal(comments[j].Created) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].Created.Before(comments[j].Created)
	})
	return comments, nil
}
