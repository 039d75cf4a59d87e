package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ncnews/news-api/internal/domain"
)

// Compile-time interface verification.
var _ ArticleRepository = (*PgArticleRepository)(nil)

// PgArticleRepository is a PostgreSQL implementation of ArticleRepository.
type PgArticleRepository struct {
	db DBTX
}

// NewPgArticleRepository creates a new PostgreSQL article repository.
func NewPgArticleRepository(db DBTX) *PgArticleRepository {
	return &PgArticleRepository{db: db}
}

// articleColumns is the projection shared by the list and single-article
// queries. comment_count is derived by aggregating the joined comments and
// cast to INT so it scans as a plain Go int.
const articleColumns = `articles.article_id, articles.title, articles.topic,
		articles.author, articles.body, articles.created_at, articles.votes,
		articles.article_img_url, COUNT(comments.comment_id)::INT AS comment_count`

// List retrieves articles with comment counts, optionally filtered by topic.
//
// The join must be a LEFT JOIN so articles with zero comments are retained
// with comment_count = 0. The topic filter is always a bound parameter;
// sort column and direction are interpolated only after whitelist
// validation, which is the sole place dynamic SQL text is permitted.
func (r *PgArticleRepository) List(ctx context.Context, filter ArticleFilter) ([]domain.Article, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + articleColumns + `
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id`

	var args []interface{}
	if filter.Topic != "" {
		query += `
		WHERE articles.topic = $1`
		args = append(args, filter.Topic)
	}

	query += `
		GROUP BY articles.article_id`
	query += fmt.Sprintf(`
		ORDER BY %s %s`, filter.SortBy, strings.ToUpper(filter.Order))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		var a domain.Article
		if err := scanArticle(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating articles: %w", err)
	}

	// An empty result under a topic filter is ambiguous: either the topic
	// exists and genuinely has no articles, or the filter value itself is
	// unknown. The topic check is deferred to this empty path so the common
	// case costs a single round trip.
	if len(articles) == 0 && filter.Topic != "" {
		slugs, err := r.topicSlugs(ctx)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(slugs, filter.Topic) {
			return nil, domain.NewNotFoundError("topic",
				"Article topic not found. Valid topic queries: "+joinWithAnd(slugs))
		}
	}

	return articles, nil
}

// GetByID retrieves a single article with its comment count.
func (r *PgArticleRepository) GetByID(ctx context.Context, articleID string) (*domain.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id`

	var a domain.Article
	if err := scanArticle(r.db.QueryRow(ctx, query, articleID), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("article", "Article Not Found")
		}
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	return &a, nil
}

// IncrementVotes applies the delta with an atomic in-store increment.
// The read-modify-write alternative would lose updates under concurrent
// votes on the same article.
func (r *PgArticleRepository) IncrementVotes(ctx context.Context, articleID string, delta int) (*domain.Article, error) {
	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes,
			article_img_url,
			(SELECT COUNT(*)::INT FROM comments WHERE comments.article_id = articles.article_id) AS comment_count`

	var a domain.Article
	if err := scanArticle(r.db.QueryRow(ctx, query, delta, articleID), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("article", "Article Not Found")
		}
		return nil, fmt.Errorf("failed to update article votes: %w", err)
	}

	return &a, nil
}

// topicSlugs fetches the current set of topic slugs, used to distinguish an
// unknown topic filter from a known topic with no articles.
func (r *PgArticleRepository) topicSlugs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT slug FROM topics ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("failed to list topic slugs: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("failed to scan topic slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating topic slugs: %w", err)
	}

	return slugs, nil
}

// scanArticle scans one article row, in articleColumns order, into a.
func scanArticle(row pgx.Row, a *domain.Article) error {
	return row.Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
}
