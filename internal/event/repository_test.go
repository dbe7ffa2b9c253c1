package event

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatherchat/internal/common"
	"gatherchat/internal/dbmysql/dbmysqltest"
)

func TestEventRepository_TitlesByIDs(t *testing.T) {
	t.Run("deduplicates ids and maps by id", func(t *testing.T) {
		db, mock := dbmysqltest.New(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`,`title` FROM `events` WHERE id IN (?,?)")).
			WithArgs("e-1", "e-2").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
				AddRow("e-1", "Summer Meetup").
				AddRow("e-2", "Photo Walk"))

		titles, err := NewEventRepository(db).TitlesByIDs(context.Background(), []string{"e-1", "e-2", "e-1"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"e-1": "Summer Meetup", "e-2": "Photo Walk"}, titles)
	})

	t.Run("no ids skips the query", func(t *testing.T) {
		db, _ := dbmysqltest.New(t)

		titles, err := NewEventRepository(db).TitlesByIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, titles)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := dbmysqltest.New(t)
		mock.ExpectQuery("SELECT .* FROM `events`").WillReturnError(assert.AnError)

		titles, err := NewEventRepository(db).TitlesByIDs(context.Background(), []string{"e-1"})
		assert.Error(t, err)
		assert.Nil(t, titles)
	})
}

func TestEventRepository_Title(t *testing.T) {
	db, mock := dbmysqltest.New(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`,`title` FROM `events` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow("e-1", "Summer Meetup"))

	title, err := NewEventRepository(db).Title(context.Background(), "e-1")
	require.NoError(t, err)
	assert.Equal(t, "Summer Meetup", title)
}

func TestEventRepository_OrganizerID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := dbmysqltest.New(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`,`user_id` FROM `events` WHERE id = ?")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow("e-1", "organizer-1"))

		organizer, err := NewEventRepository(db).OrganizerID(context.Background(), "e-1")
		require.NoError(t, err)
		assert.Equal(t, "organizer-1", organizer)
	})

	t.Run("unknown event", func(t *testing.T) {
		db, mock := dbmysqltest.New(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`,`user_id` FROM `events` WHERE id = ?")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

		organizer, err := NewEventRepository(db).OrganizerID(context.Background(), "missing")
		assert.ErrorIs(t, err, common.ErrNotFound)
		assert.Empty(t, organizer)
	})
}
