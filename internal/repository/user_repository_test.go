package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgUserRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("lists all users", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgUserRepository(mock)

		mock.ExpectQuery(`SELECT username, name, avatar_url FROM users`).
			WillReturnRows(pgxmock.NewRows([]string{"username", "name", "avatar_url"}).
				AddRow("butter_bridge", "jonny", "https://example.com/jonny.png").
				AddRow("icellusedkars", "sam", "https://example.com/sam.png"))

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "butter_bridge", users[0].Username)
		assert.Equal(t, "sam", users[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps store faults", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgUserRepository(mock)

		mock.ExpectQuery(`FROM users`).
			WillReturnError(errors.New("connection reset"))

		_, err = repo.List(ctx)
		assert.ErrorContains(t, err, "failed to list users")
	})
}
