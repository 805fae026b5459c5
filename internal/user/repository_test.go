package user

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return db, mock, func() { db.Close() }
}

func TestGetByID(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "username", "email", "profile_image_url", "rating", "user_level", "is_verified"}).
		AddRow("creator_user_001", "creator_one", "one@creators.test", nil, 4.5, 3, true)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("creator_user_001").
		WillReturnRows(rows)

	repo := NewRepository(db)
	u, err := repo.GetByID(context.Background(), "creator_user_001")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "creator_one", u.Username)
	assert.Equal(t, 4.5, u.Rating)
	assert.True(t, u.IsVerified)
	assert.Nil(t, u.ProfileImageURL)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	repo := NewRepository(db)
	u, err := repo.GetByID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, u)

	assert.NoError(t, mock.ExpectationsWereMet())
}
