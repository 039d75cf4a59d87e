package repository

import (
	"context"
	"slices"
	"strings"

	"github.com/ncnews/news-api/internal/domain"
)

// ArticleRepository handles article reads and vote updates.
type ArticleRepository interface {
	// List retrieves articles with their derived comment counts, optionally
	// filtered by topic and ordered by the filter's sort column/direction.
	// Returns domain.ValidationError for a sort or order value outside the
	// whitelist, and domain.NotFoundError when the topic filter names a
	// topic that does not exist.
	List(ctx context.Context, filter ArticleFilter) ([]domain.Article, error)

	// GetByID retrieves a single article with its derived comment count.
	// Returns domain.NotFoundError if no matching article exists.
	GetByID(ctx context.Context, articleID string) (*domain.Article, error)

	// IncrementVotes applies an integer delta to an article's vote count
	// atomically at the store and returns the updated article.
	// Returns domain.NotFoundError if no matching article exists.
	IncrementVotes(ctx context.Context, articleID string, delta int) (*domain.Article, error)
}

// Sort whitelists for article listing. Only these closed sets are ever
// interpolated into query text; everything else stays a bound parameter.
var (
	validSortColumns = []string{
		"article_id", "title", "topic", "author", "body",
		"created_at", "article_img_url", "comment_count",
	}
	validOrders = []string{"asc", "desc"}
)

// Sort defaults applied when the client omits the query parameters.
const (
	defaultSortColumn = "created_at"
	defaultSortOrder  = "desc"
)

// ArticleFilter specifies criteria for listing articles.
type ArticleFilter struct {
	// Topic filters to articles in a single topic (optional). The value is
	// passed through opaque here; it is checked against actual topic rows
	// only when the filtered result set comes back empty.
	Topic string

	// SortBy is the column to order by. Must be one of the sort whitelist;
	// defaults to created_at.
	SortBy string

	// Order is the sort direction, asc or desc (case-insensitive);
	// defaults to desc.
	Order string
}

// Validate checks the filter against the sort whitelists and sets defaults.
// Order is normalized to lower case on success.
func (f *ArticleFilter) Validate() error {
	if f.SortBy == "" {
		f.SortBy = defaultSortColumn
	}
	if f.Order == "" {
		f.Order = defaultSortOrder
	}
	f.Order = strings.ToLower(f.Order)

	if !slices.Contains(validSortColumns, f.SortBy) {
		return domain.NewValidationError("sort_by",
			"Invalid sort query. Valid queries: "+strings.Join(validSortColumns, ", "))
	}
	if !slices.Contains(validOrders, f.Order) {
		return domain.NewValidationError("order",
			"Invalid order query. Valid queries: "+strings.Join(validOrders, ", "))
	}
	return nil
}
