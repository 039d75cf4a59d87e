package repository

import (
	"context"
	"fmt"

	"github.com/ncnews/news-api/internal/domain"
)

// TopicRepository handles topic reads. Topics have no write path through
// the API.
type TopicRepository interface {
	// List retrieves all topics in insertion order.
	List(ctx context.Context) ([]domain.Topic, error)
}

// Compile-time interface verification.
var _ TopicRepository = (*PgTopicRepository)(nil)

// PgTopicRepository is a PostgreSQL implementation of TopicRepository.
type PgTopicRepository struct {
	db DBTX
}

// NewPgTopicRepository creates a new PostgreSQL topic repository.
func NewPgTopicRepository(db DBTX) *PgTopicRepository {
	return &PgTopicRepository{db: db}
}

// List retrieves all topics.
func (r *PgTopicRepository) List(ctx context.Context) ([]domain.Topic, error) {
	rows, err := r.db.Query(ctx, `SELECT slug, description FROM topics`)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer rows.Close()

	topics := make([]domain.Topic, 0)
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating topics: %w", err)
	}

	return topics, nil
}
