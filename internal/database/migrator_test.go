package database

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewMigrator_RequiresDatabase(t *testing.T) {
	m, err := NewMigrator(nil, "migrations", zerolog.Nop())
	assert.Nil(t, m)
	assert.ErrorContains(t, err, "database is required")
}

func TestNewMigrator_RequiresInitializedPool(t *testing.T) {
	m, err := NewMigrator(&DB{}, "migrations", zerolog.Nop())
	assert.Nil(t, m)
	assert.ErrorContains(t, err, "pool not initialized")
}

func TestNewMigrator_RequiresPath(t *testing.T) {
	m, err := NewMigrator(nil, "", zerolog.Nop())
	assert.Nil(t, m)
	assert.Error(t, err)
}
