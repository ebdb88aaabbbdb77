package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"confprogram/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session *domain.ProgramSession
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			session: &domain.ProgramSession{
				EventDayID:  "day-1",
				Title:       "Morning Track",
				Description: "Opening talks",
				SortOrder:   1,
				CreatedAt:   createdAt,
				UpdatedAt:   updatedAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO program_sessions`).
					WithArgs("day-1", "Morning Track", "Opening talks", 1, createdAt, updatedAt).
					WillReturnRows(sqlmock.NewRows([]string{"id", "version"}).AddRow("sess-uuid-1", 1))
			},
			wantID:  "sess-uuid-1",
			wantErr: false,
		},
		{
			name: "db error",
			session: &domain.ProgramSession{
				EventDayID: "day-1",
				Title:      "Broken",
				CreatedAt:  createdAt,
				UpdatedAt:  updatedAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO program_sessions`).
					WillReturnError(sql.ErrConnDone)
			},
			wantID:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSessionRepository(db)
			err = repo.Create(ctx, tt.session)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.session.ID)
			require.Equal(t, 1, tt.session.Version)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	start := domain.MustTimeOfDay("09:00")
	end := domain.MustTimeOfDay("10:30")

	t.Run("scheduled session", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{
			"id", "event_day_id", "venue_id", "title", "description",
			"start_time", "end_time", "sort_order", "version", "created_at", "updated_at",
		}).AddRow("sess-1", "day-1", "venue-1", "Morning Track", "", "09:00:00", "10:30:00", 1, 3, createdAt, createdAt)
		mock.ExpectQuery(`SELECT (.+) FROM program_sessions WHERE id`).
			WithArgs("sess-1").
			WillReturnRows(rows)

		repo := NewSessionRepository(db)
		got, err := repo.GetByID(ctx, "sess-1")
		require.NoError(t, err)
		require.NotNil(t, got.VenueID)
		require.Equal(t, "venue-1", *got.VenueID)
		require.Equal(t, start, *got.Start)
		require.Equal(t, end, *got.End)
		require.Equal(t, 3, got.Version)
		require.True(t, got.Scheduled())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unscheduled session has nil venue and times", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{
			"id", "event_day_id", "venue_id", "title", "description",
			"start_time", "end_time", "sort_order", "version", "created_at", "updated_at",
		}).AddRow("sess-2", "day-1", nil, "Unplaced Talk", "", nil, nil, 2, 1, createdAt, createdAt)
		mock.ExpectQuery(`SELECT (.+) FROM program_sessions WHERE id`).
			WithArgs("sess-2").
			WillReturnRows(rows)

		repo := NewSessionRepository(db)
		got, err := repo.GetByID(ctx, "sess-2")
		require.NoError(t, err)
		require.Nil(t, got.VenueID)
		require.Nil(t, got.Start)
		require.Nil(t, got.End)
		require.False(t, got.Scheduled())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM program_sessions WHERE id`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewSessionRepository(db)
		_, err = repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_UpdateSchedule(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	venueID := "venue-1"
	start := domain.NullTimeOfDay{TimeOfDay: domain.MustTimeOfDay("09:00"), Valid: true}
	end := domain.NullTimeOfDay{TimeOfDay: domain.MustTimeOfDay("10:00"), Valid: true}

	t.Run("success increments version", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{
			"id", "event_day_id", "venue_id", "title", "description",
			"start_time", "end_time", "sort_order", "version", "created_at", "updated_at",
		}).AddRow("sess-1", "day-1", "venue-1", "Morning Track", "", "09:00:00", "10:00:00", 1, 4, createdAt, createdAt)
		mock.ExpectQuery(`UPDATE program_sessions`).
			WithArgs(&venueID, start, end, "sess-1", 3).
			WillReturnRows(rows)

		repo := NewSessionRepository(db)
		got, err := repo.UpdateSchedule(ctx, "sess-1", &venueID, start, end, 3)
		require.NoError(t, err)
		require.Equal(t, 4, got.Version)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE program_sessions`).
			WithArgs(&venueID, start, end, "sess-1", 2).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("sess-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		repo := NewSessionRepository(db)
		_, err = repo.UpdateSchedule(ctx, "sess-1", &venueID, start, end, 2)
		require.ErrorIs(t, err, domain.ErrVersionMismatch)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("session gone", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE program_sessions`).
			WithArgs(&venueID, start, end, "missing", 1).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		repo := NewSessionRepository(db)
		_, err = repo.UpdateSchedule(ctx, "missing", &venueID, start, end, 1)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clearing the schedule", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		null := domain.NullTimeOfDay{}
		rows := sqlmock.NewRows([]string{
			"id", "event_day_id", "venue_id", "title", "description",
			"start_time", "end_time", "sort_order", "version", "created_at", "updated_at",
		}).AddRow("sess-1", "day-1", nil, "Morning Track", "", nil, nil, 1, 2, createdAt, createdAt)
		mock.ExpectQuery(`UPDATE program_sessions`).
			WithArgs(nil, null, null, "sess-1", 1).
			WillReturnRows(rows)

		repo := NewSessionRepository(db)
		got, err := repo.UpdateSchedule(ctx, "sess-1", nil, null, null, 1)
		require.NoError(t, err)
		require.False(t, got.Scheduled())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_ApplySchedule(t *testing.T) {
	ctx := context.Background()
	venueID := "venue-1"
	batch := []domain.ScheduleAssignment{
		{
			SessionID:       "sess-1",
			VenueID:         &venueID,
			Start:           domain.NullTimeOfDay{TimeOfDay: domain.MustTimeOfDay("09:00"), Valid: true},
			End:             domain.NullTimeOfDay{TimeOfDay: domain.MustTimeOfDay("09:30"), Valid: true},
			ExpectedVersion: 1,
		},
		{
			SessionID:       "sess-2",
			VenueID:         &venueID,
			Start:           domain.NullTimeOfDay{TimeOfDay: domain.MustTimeOfDay("09:30"), Valid: true},
			End:             domain.NullTimeOfDay{TimeOfDay: domain.MustTimeOfDay("10:00"), Valid: true},
			ExpectedVersion: 3,
		},
	}

	t.Run("commits the batch in one transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE program_sessions`).
			WithArgs(&venueID, batch[0].Start, batch[0].End, "sess-1", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE program_sessions`).
			WithArgs(&venueID, batch[1].Start, batch[1].End, "sess-2", 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewSessionRepository(db)
		require.NoError(t, repo.ApplySchedule(ctx, batch))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version mid-batch rolls everything back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE program_sessions`).
			WithArgs(&venueID, batch[0].Start, batch[0].End, "sess-1", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE program_sessions`).
			WithArgs(&venueID, batch[1].Start, batch[1].End, "sess-2", 3).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("sess-2").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		repo := NewSessionRepository(db)
		err = repo.ApplySchedule(ctx, batch)
		require.ErrorIs(t, err, domain.ErrVersionMismatch)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing session mid-batch rolls everything back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE program_sessions`).
			WithArgs(&venueID, batch[0].Start, batch[0].End, "sess-1", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE program_sessions`).
			WithArgs(&venueID, batch[1].Start, batch[1].End, "sess-2", 3).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("sess-2").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		repo := NewSessionRepository(db)
		err = repo.ApplySchedule(ctx, batch)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewSessionRepository(db)
		require.NoError(t, repo.ApplySchedule(ctx, nil))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_ListByDayID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "event_day_id", "venue_id", "title", "description",
		"start_time", "end_time", "sort_order", "version", "created_at", "updated_at",
	}).
		AddRow("sess-1", "day-1", "venue-1", "Early", "", "09:00:00", "10:00:00", 1, 1, createdAt, createdAt).
		AddRow("sess-2", "day-1", nil, "Unplaced", "", nil, nil, 2, 1, createdAt, createdAt)
	mock.ExpectQuery(`SELECT (.+) FROM program_sessions`).
		WithArgs("day-1").
		WillReturnRows(rows)

	repo := NewSessionRepository(db)
	got, err := repo.ListByDayID(ctx, "day-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.True(t, got[0].Scheduled())
	require.False(t, got[1].Scheduled())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM program_sessions`).
			WithArgs("sess-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewSessionRepository(db)
		require.NoError(t, repo.Delete(ctx, "sess-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM program_sessions`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewSessionRepository(db)
		require.ErrorIs(t, repo.Delete(ctx, "missing"), domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
