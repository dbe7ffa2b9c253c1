package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatherchat/internal/common"
	"gatherchat/internal/dbmysql"
	"gatherchat/internal/dbmysql/dbmysqltest"
)

var profileColumns = []string{"id", "email", "username", "vrchat_username", "avatar_url", "bio", "created_at", "updated_at"}

func TestProfileRepository_ByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := dbmysqltest.New(t)
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `profiles` WHERE id = ?")).
			WillReturnRows(sqlmock.NewRows(profileColumns).
				AddRow("user-1", "a@example.com", "alice", "alice_vr", "", "", now, now))

		profile, err := NewProfileRepository(db).ByID(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "alice_vr", profile.VRChatUsername)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := dbmysqltest.New(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `profiles` WHERE id = ?")).
			WillReturnRows(sqlmock.NewRows(profileColumns))

		_, err := NewProfileRepository(db).ByID(context.Background(), "nobody")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestProfileRepository_UsernamesByIDs(t *testing.T) {
	db, mock := dbmysqltest.New(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`,`username` FROM `profiles` WHERE id IN (?,?)")).
		WithArgs("user-1", "user-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow("user-1", "alice"))

	names, err := NewProfileRepository(db).UsernamesByIDs(context.Background(), []string{"user-1", "user-2", "user-1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"user-1": "alice"}, names)
}

func TestProfileRepository_ByIDs(t *testing.T) {
	t.Run("empty input skips the query", func(t *testing.T) {
		db, _ := dbmysqltest.New(t)
		profiles, err := NewProfileRepository(db).ByIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := dbmysqltest.New(t)
		mock.ExpectQuery("SELECT \\* FROM `profiles`").WillReturnError(assert.AnError)

		profiles, err := NewProfileRepository(db).ByIDs(context.Background(), []string{"user-1"})
		assert.Error(t, err)
		assert.Nil(t, profiles)
	})
}

func TestProfileRepository_Create(t *testing.T) {
	db, mock := dbmysqltest.New(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `profiles`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewProfileRepository(db).Create(context.Background(), &dbmysql.Profile{ID: "user-1", Email: "a@example.com"})
	assert.NoError(t, err)
}

func TestProfileRepository_Update(t *testing.T) {
	t.Run("writes given columns", func(t *testing.T) {
		db, mock := dbmysqltest.New(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `profiles` SET .*`bio`=\\?").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := NewProfileRepository(db).Update(context.Background(), "user-1", map[string]interface{}{"bio": "hi"})
		assert.NoError(t, err)
	})

	t.Run("no fields is a no-op", func(t *testing.T) {
		db, _ := dbmysqltest.New(t)
		assert.NoError(t, NewProfileRepository(db).Update(context.Background(), "user-1", nil))
	})
}
