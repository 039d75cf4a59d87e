package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ncnews/news-api/internal/domain"
)

// Compile-time interface verification.
var _ CommentRepository = (*PgCommentRepository)(nil)

// PgCommentRepository is a PostgreSQL implementation of CommentRepository.
type PgCommentRepository struct {
	db DBTX
}

// NewPgCommentRepository creates a new PostgreSQL comment repository.
func NewPgCommentRepository(db DBTX) *PgCommentRepository {
	return &PgCommentRepository{db: db}
}

// ListByArticleID retrieves an article's comments ordered newest first.
func (r *PgCommentRepository) ListByArticleID(ctx context.Context, articleID string) ([]domain.Comment, error) {
	query := `
		SELECT comment_id, article_id, author, body, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

// Create inserts a comment and returns the stored row. Callers verify the
// parent article first; the foreign-key translation below is the backstop
// for the race where the article disappears between check and insert.
func (r *PgCommentRepository) Create(ctx context.Context, articleID, author, body string) (*domain.Comment, error) {
	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, article_id, author, body, votes, created_at`

	var c domain.Comment
	err := r.db.QueryRow(ctx, query, articleID, author, body).
		Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			if strings.Contains(pgErr.ConstraintName, "author") {
				return nil, domain.NewValidationError("username", "Invalid username")
			}
			return nil, domain.NewNotFoundError("article", "Article Not Found")
		}
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return &c, nil
}

// Delete removes a comment by id, using the affected-row count to detect
// whether anything was actually deleted.
func (r *PgCommentRepository) Delete(ctx context.Context, commentID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFoundError("comment",
			fmt.Sprintf("Comment with ID of %s not found", commentID))
	}

	return nil
}
