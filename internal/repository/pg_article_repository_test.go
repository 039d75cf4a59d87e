package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncnews/news-api/internal/domain"
)

var articleRowColumns = []string{
	"article_id", "title", "topic", "author", "body",
	"created_at", "votes", "article_img_url", "comment_count",
}

func articleRow(id int, topic string, votes, commentCount int, createdAt time.Time) []interface{} {
	return []interface{}{
		id, "Article title", topic, "icellusedkars", "Article body",
		createdAt, votes, "https://example.com/img.png", commentCount,
	}
}

func TestArticleFilter_Validate(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		f := ArticleFilter{}
		require.NoError(t, f.Validate())
		assert.Equal(t, "created_at", f.SortBy)
		assert.Equal(t, "desc", f.Order)
	})

	t.Run("accepts every whitelisted sort column", func(t *testing.T) {
		for _, col := range validSortColumns {
			f := ArticleFilter{SortBy: col}
			assert.NoError(t, f.Validate(), col)
		}
	})

	t.Run("normalizes order case", func(t *testing.T) {
		f := ArticleFilter{Order: "ASC"}
		require.NoError(t, f.Validate())
		assert.Equal(t, "asc", f.Order)
	})

	t.Run("rejects unknown sort column with the enumerated set", func(t *testing.T) {
		f := ArticleFilter{SortBy: "votes; DROP TABLE articles"}
		err := f.Validate()

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "sort_by", ve.Field)
		assert.Equal(t,
			"Invalid sort query. Valid queries: article_id, title, topic, author, body, created_at, article_img_url, comment_count",
			ve.Message)
	})

	t.Run("rejects unknown order with the enumerated set", func(t *testing.T) {
		f := ArticleFilter{Order: "sideways"}
		err := f.Validate()

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "order", ve.Field)
		assert.Equal(t, "Invalid order query. Valid queries: asc, desc", ve.Message)
	})
}

func TestPgArticleRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("lists articles with default sort", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`ORDER BY created_at DESC`).
			WillReturnRows(pgxmock.NewRows(articleRowColumns).
				AddRow(articleRow(2, "mitch", 5, 0, now)...).
				AddRow(articleRow(1, "mitch", 100, 11, now.Add(-time.Hour))...))

		articles, err := repo.List(ctx, ArticleFilter{})
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, 2, articles[0].ArticleID)
		assert.Equal(t, 0, articles[0].CommentCount)
		assert.Equal(t, 11, articles[1].CommentCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("interpolates validated sort column and direction", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`ORDER BY article_id ASC`).
			WillReturnRows(pgxmock.NewRows(articleRowColumns).
				AddRow(articleRow(1, "mitch", 1, 2, now)...))

		_, err = repo.List(ctx, ArticleFilter{SortBy: "votes", Order: "asc"})
		assert.Error(t, err) // whitelist rejects before any query

		articles, err := repo.List(ctx, ArticleFilter{SortBy: "article_id", Order: "ASC"})
		require.NoError(t, err)
		assert.Len(t, articles, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("binds topic filter as a parameter", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`WHERE articles.topic = \$1`).
			WithArgs("cats").
			WillReturnRows(pgxmock.NewRows(articleRowColumns).
				AddRow(articleRow(5, "cats", 0, 2, now)...))

		articles, err := repo.List(ctx, ArticleFilter{Topic: "cats"})
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "cats", articles[0].Topic)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result for a known topic is a success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`FROM articles`).
			WithArgs("paper").
			WillReturnRows(pgxmock.NewRows(articleRowColumns))
		mock.ExpectQuery(`SELECT slug FROM topics`).
			WillReturnRows(pgxmock.NewRows([]string{"slug"}).
				AddRow("cats").AddRow("mitch").AddRow("paper"))

		articles, err := repo.List(ctx, ArticleFilter{Topic: "paper"})
		require.NoError(t, err)
		assert.NotNil(t, articles)
		assert.Empty(t, articles)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result for an unknown topic is not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`FROM articles`).
			WithArgs("bananas").
			WillReturnRows(pgxmock.NewRows(articleRowColumns))
		mock.ExpectQuery(`SELECT slug FROM topics`).
			WillReturnRows(pgxmock.NewRows([]string{"slug"}).
				AddRow("cats").AddRow("mitch"))

		articles, err := repo.List(ctx, ArticleFilter{Topic: "bananas"})
		assert.Nil(t, articles)

		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "topic", nf.Entity)
		assert.Equal(t, "Article topic not found. Valid topic queries: cats and mitch", nf.Message)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates store faults", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`FROM articles`).
			WillReturnError(errors.New("connection reset"))

		_, err = repo.List(ctx, ArticleFilter{})
		assert.ErrorContains(t, err, "failed to list articles")
	})
}

func TestPgArticleRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("returns the article with comment count", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`WHERE articles.article_id = \$1`).
			WithArgs("1").
			WillReturnRows(pgxmock.NewRows(articleRowColumns).
				AddRow(articleRow(1, "mitch", 100, 11, now)...))

		article, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, 1, article.ArticleID)
		assert.Equal(t, 11, article.CommentCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps zero rows to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`WHERE articles.article_id = \$1`).
			WithArgs("9999").
			WillReturnError(pgx.ErrNoRows)

		article, err := repo.GetByID(ctx, "9999")
		assert.Nil(t, article)

		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "Article Not Found", nf.Message)
	})

	t.Run("passes through store type faults for classification", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`WHERE articles.article_id = \$1`).
			WithArgs("not-an-id").
			WillReturnError(&pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type integer"})

		_, err = repo.GetByID(ctx, "not-an-id")

		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		assert.Equal(t, "22P02", pgErr.Code)
		assert.False(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestPgArticleRepository_IncrementVotes(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("binds delta and id positionally and returns the updated row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`SET votes = votes \+ \$1`).
			WithArgs(-10, "1").
			WillReturnRows(pgxmock.NewRows(articleRowColumns).
				AddRow(articleRow(1, "mitch", 90, 11, now)...))

		article, err := repo.IncrementVotes(ctx, "1", -10)
		require.NoError(t, err)
		assert.Equal(t, 90, article.Votes)
		assert.Equal(t, 11, article.CommentCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps zero rows to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgArticleRepository(mock)

		mock.ExpectQuery(`UPDATE articles`).
			WithArgs(1, "9999").
			WillReturnError(pgx.ErrNoRows)

		article, err := repo.IncrementVotes(ctx, "9999", 1)
		assert.Nil(t, article)

		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "Article Not Found", nf.Message)
	})
}
