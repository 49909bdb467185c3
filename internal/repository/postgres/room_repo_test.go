package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"codecamp/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var roomRowColumns = []string{
	"item_id", "code_camp_id", "name", "description", "capacity",
	"created_by_user_id", "created_by_date", "last_updated_by_user_id", "last_updated_by_date",
}

func mainHall() *domain.Room {
	return &domain.Room{
		ItemID:     5,
		CodeCampID: 1,
		Name:       "Main Hall",
		Capacity:   200,
		Audit: domain.Audit{
			CreatedByUserID:     7,
			CreatedByDate:       april1,
			LastUpdatedByUserID: 7,
			LastUpdatedByDate:   april1,
		},
	}
}

func TestRoomRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		mock       func(mock sqlmock.Sqlmock)
		wantID     int
		wantErr    bool
		isNotFound bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO rooms \(code_camp_id, name, description, capacity,`).
					WithArgs(1, "Main Hall", "", 200, 7, april1, 7, april1).
					WillReturnRows(sqlmock.NewRows([]string{"item_id"}).AddRow(5))
			},
			wantID: 5,
		},
		{
			name: "missing parent event",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO rooms`).
					WillReturnError(&pq.Error{Code: "23503"})
			},
			wantErr:    true,
			isNotFound: true,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO rooms`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			room := mainHall()
			room.ItemID = 0
			err = NewRoomRepository(db).Create(ctx, room)
			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, tt.isNotFound, errors.Is(err, domain.ErrNotFound))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, room.ItemID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRoomRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE item_id = \$1 AND code_camp_id = \$2`).
		WithArgs(5, 1).
		WillReturnRows(sqlmock.NewRows(roomRowColumns).AddRow(5, 1, "Main Hall", "", 200, 7, april1, 7, april1))
	mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE item_id = \$1 AND code_camp_id = \$2`).
		WithArgs(5, 2).
		WillReturnRows(sqlmock.NewRows(roomRowColumns))

	repo := NewRoomRepository(db)
	got, err := repo.GetByID(context.Background(), 5, 1)
	require.NoError(t, err)
	require.Equal(t, mainHall(), got)

	other, err := repo.GetByID(context.Background(), 5, 2)
	require.NoError(t, err)
	require.Nil(t, other, "a room is invisible from another event")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_GetByCodeCampID(t *testing.T) {
	ctx := context.Background()

	t.Run("rows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE code_camp_id = \$1 ORDER BY name, item_id`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(roomRowColumns).
				AddRow(5, 1, "Main Hall", "", 200, 7, april1, 7, april1).
				AddRow(6, 1, "Room B", "upstairs", 30, 7, april1, 7, april1))

		got, err := NewRoomRepository(db).GetByCodeCampID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "Room B", got[1].Name)
		require.Equal(t, 30, got[1].Capacity)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty is a non-nil slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE code_camp_id = \$1`).
			WithArgs(9).
			WillReturnRows(sqlmock.NewRows(roomRowColumns))

		got, err := NewRoomRepository(db).GetByCodeCampID(ctx, 9)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRoomRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE rooms SET name = \$1, description = \$2, capacity = \$3,`).
		WithArgs("Main Hall", "", 200, 7, april1, 5, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE rooms`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM rooms WHERE item_id = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM rooms WHERE item_id = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRoomRepository(db)
	require.NoError(t, repo.Update(ctx, mainHall()))

	err = repo.Update(ctx, mainHall())
	require.True(t, errors.Is(err, domain.ErrNotFound))

	require.NoError(t, repo.Delete(ctx, mainHall()))

	err = repo.Delete(ctx, mainHall())
	require.True(t, errors.Is(err, domain.ErrNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_RowsAffectedError(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	driverErr := errors.New("driver: rows affected unavailable")
	mock.ExpectExec(`UPDATE rooms`).
		WillReturnResult(sqlmock.NewErrorResult(driverErr))
	mock.ExpectExec(`DELETE FROM rooms WHERE item_id = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewErrorResult(driverErr))

	repo := NewRoomRepository(db)
	require.ErrorIs(t, repo.Update(ctx, mainHall()), driverErr)
	require.ErrorIs(t, repo.Delete(ctx, mainHall()), driverErr)
	require.NoError(t, mock.ExpectationsWereMet())
}
