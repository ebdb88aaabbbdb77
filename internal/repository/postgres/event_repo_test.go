package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"confprogram/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	startsOn := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	endsOn := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			event: &domain.Event{
				OrgID:       "org-1",
				Name:        "GopherCon",
				Slug:        "gophercon",
				Description: "The Go conference",
				StartsOn:    &startsOn,
				EndsOn:      &endsOn,
				Location:    "Berlin",
				CreatedAt:   createdAt,
				UpdatedAt:   createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WithArgs("org-1", "GopherCon", "gophercon", "The Go conference", "Berlin",
						sql.NullTime{Time: startsOn, Valid: true}, sql.NullTime{Time: endsOn, Valid: true},
						createdAt, createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("event-uuid-1"))
			},
			wantID: "event-uuid-1",
		},
		{
			name: "duplicate slug",
			event: &domain.Event{
				OrgID:     "org-1",
				Name:      "GopherCon",
				Slug:      "gophercon",
				CreatedAt: createdAt,
				UpdatedAt: createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrDuplicateSlug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success with null dates", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{
			"id", "org_id", "name", "slug", "description", "location",
			"starts_on", "ends_on", "created_at", "updated_at",
		}).AddRow("event-1", "org-1", "GopherCon", "gophercon", "", "Berlin", nil, nil, createdAt, createdAt)
		mock.ExpectQuery(`SELECT (.+) FROM events`).
			WithArgs("org-1", "event-1").
			WillReturnRows(rows)

		repo := NewEventRepository(db)
		got, err := repo.GetByID(ctx, "org-1", "event-1")
		require.NoError(t, err)
		require.Equal(t, "gophercon", got.Slug)
		require.Nil(t, got.StartsOn)
		require.Nil(t, got.EndsOn)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong org is not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM events`).
			WithArgs("org-2", "event-1").
			WillReturnError(sql.ErrNoRows)

		repo := NewEventRepository(db)
		_, err = repo.GetByID(ctx, "org-2", "event-1")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("partial update touches only given fields", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		name := "GopherCon EU"
		rows := sqlmock.NewRows([]string{
			"id", "org_id", "name", "slug", "description", "location",
			"starts_on", "ends_on", "created_at", "updated_at",
		}).AddRow("event-1", "org-1", name, "gophercon", "", "Berlin", nil, nil, createdAt, createdAt)
		mock.ExpectQuery(`UPDATE events SET`).
			WithArgs(name, "org-1", "event-1").
			WillReturnRows(rows)

		repo := NewEventRepository(db)
		got, err := repo.Update(ctx, "org-1", "event-1", domain.EventUpdate{Name: &name})
		require.NoError(t, err)
		require.Equal(t, name, got.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		name := "Renamed"
		mock.ExpectQuery(`UPDATE events SET`).
			WithArgs(name, "org-1", "missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewEventRepository(db)
		_, err = repo.Update(ctx, "org-1", "missing", domain.EventUpdate{Name: &name})
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_Days(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("create day", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		day := &domain.EventDay{EventID: "event-1", Date: date, Label: "Day 1", SortOrder: 1, CreatedAt: createdAt, UpdatedAt: createdAt}
		mock.ExpectQuery(`INSERT INTO event_days`).
			WithArgs("event-1", date, "Day 1", 1, createdAt, createdAt).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("day-uuid-1"))

		repo := NewEventRepository(db)
		require.NoError(t, repo.CreateDay(ctx, day))
		require.Equal(t, "day-uuid-1", day.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("list days ordered", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "event_id", "date", "label", "sort_order", "created_at", "updated_at"}).
			AddRow("day-1", "event-1", date, "Day 1", 1, createdAt, createdAt).
			AddRow("day-2", "event-1", date.AddDate(0, 0, 1), "Day 2", 2, createdAt, createdAt)
		mock.ExpectQuery(`SELECT (.+) FROM event_days`).
			WithArgs("event-1").
			WillReturnRows(rows)

		repo := NewEventRepository(db)
		days, err := repo.ListDaysByEventID(ctx, "event-1")
		require.NoError(t, err)
		require.Len(t, days, 2)
		require.Equal(t, "Day 1", days[0].Label)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
