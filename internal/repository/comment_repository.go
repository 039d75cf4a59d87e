package repository

import (
	"context"

	"github.com/ncnews/news-api/internal/domain"
)

// CommentRepository handles comment persistence for articles.
type CommentRepository interface {
	// ListByArticleID retrieves an article's comments, most recent first.
	// An article with no comments yields an empty (non-nil) slice; callers
	// are responsible for confirming the parent article exists, since both
	// cases produce zero rows here.
	ListByArticleID(ctx context.Context, articleID string) ([]domain.Comment, error)

	// Create inserts a comment against an article and returns the stored
	// row with its store-assigned id, timestamp and zero vote count.
	// Returns domain.NotFoundError if the article does not exist and
	// domain.ValidationError if the author username is unknown.
	Create(ctx context.Context, articleID, author, body string) (*domain.Comment, error)

	// Delete removes a comment by id.
	// Returns domain.NotFoundError if no matching comment exists.
	Delete(ctx context.Context, commentID string) error
}
