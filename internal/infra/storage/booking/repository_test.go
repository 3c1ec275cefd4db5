package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func bookingRows(t *testing.T) *sqlmock.Rows {
	t.Helper()
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "room_id", "room_name", "title", "description",
		"start_time", "end_time", "organizer_code", "attendee_codes",
		"status", "cancellation_reason", "cancelled_at", "created_at", "updated_at",
	}).AddRow(
		int64(1), int64(7), "Jupiter", "Sprint review", nil,
		now, now.Add(time.Hour), "E001", "{E001,E002}",
		"confirmed", nil, nil, now, now,
	)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(bookingRows(t))

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.ID)
	require.NotNil(t, got.RoomID)
	assert.Equal(t, int64(7), *got.RoomID)
	assert.Equal(t, "Sprint review", got.Title)
	assert.Equal(t, []string{"E001", "E002"}, got.AttendeeCodes)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "room_id", "room_name", "title", "description",
			"start_time", "end_time", "organizer_code", "attendee_codes",
			"status", "cancellation_reason", "cancelled_at", "created_at", "updated_at",
		}))

	got, err := repo.GetByID(context.Background(), 42)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_ExcludesCancelledByDefault(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE room_id = \$1 AND status NOT IN \(\$2\) ORDER BY start_time ASC, id ASC`).
		WithArgs(int64(7), "cancelled").
		WillReturnRows(bookingRows(t))

	got, err := repo.GetWithFilter(context.Background(), domain.BookingsFilter{
		RoomID: ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1, cancellation_reason = \$2, cancelled_at = NOW\(\), updated_at = NOW\(\) WHERE id = \$3`).
		WithArgs("cancelled", "meeting moved", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Cancel(context.Background(), 1, "meeting moved")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE bookings SET status = `).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), 99, "whatever")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
