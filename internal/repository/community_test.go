package repository

import (
	"context"
	"regexp"
	"testing"

	"huddle/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityRepository_Create_DuplicateNameIsConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommunityRepository(db)
	ctx := context.Background()

	community := &models.Community{Name: "gophers", Description: "Go talk", CreatorID: 1}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "communities"`)).
		WillReturnError(errDuplicateKey(t))
	mock.ExpectRollback()

	err := repo.Create(ctx, community)
	assertAppErrorCode(t, err, models.CodeConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommunityRepository_GetByName(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommunityRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "communities" WHERE name = $1 AND "communities"."deleted_at" IS NULL ORDER BY "communities"."id" LIMIT $2`)).
		WithArgs("gophers", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "creator_id"}).
			AddRow(3, "gophers", "Go talk", 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(1, "marla", "marla@example.com"))

	community, err := repo.GetByName(ctx, "gophers")
	require.NoError(t, err)
	assert.Equal(t, uint(3), community.ID)
	assert.Equal(t, "marla", community.Creator.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommunityRepository_GetByName_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommunityRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "communities" WHERE name = $1 AND "communities"."deleted_at" IS NULL ORDER BY "communities"."id" LIMIT $2`)).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByName(ctx, "missing")
	assertAppErrorCode(t, err, models.CodeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommunityRepository_SoftDelete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommunityRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "communities" SET "deleted_at"=$1 WHERE "communities"."id" = $2 AND "communities"."deleted_at" IS NULL`)).
		WithArgs(sqlmock.AnyArg(), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SoftDelete(ctx, &models.Community{ID: 3, Name: "gophers"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
