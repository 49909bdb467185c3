package postgres

import (
	"context"
	"database/sql"
	"errors"

	"codecamp/internal/domain"
)

const roomColumns = `item_id, code_camp_id, name, description, capacity,
		created_by_user_id, created_by_date, last_updated_by_user_id, last_updated_by_date`

type roomRepository struct {
	DB *sql.DB
}

func NewRoomRepository(db *sql.DB) domain.RoomRepository {
	return &roomRepository{DB: db}
}

func scanRoom(s rowScanner) (*domain.Room, error) {
	room := &domain.Room{}
	err := s.Scan(&room.ItemID, &room.CodeCampID, &room.Name, &room.Description, &room.Capacity,
		&room.CreatedByUserID, &room.CreatedByDate, &room.LastUpdatedByUserID, &room.LastUpdatedByDate)
	if err != nil {
		return nil, err
	}
	room.CreatedByDate = room.CreatedByDate.UTC()
	room.LastUpdatedByDate = room.LastUpdatedByDate.UTC()
	return room, nil
}

// Create inserts the room. A missing parent event surfaces as a CodeCampInfo NotFoundError.
func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `
		INSERT INTO rooms (code_camp_id, name, description, capacity,
			created_by_user_id, created_by_date, last_updated_by_user_id, last_updated_by_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING item_id
	`
	err := withConn(ctx, r.DB, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query,
			room.CodeCampID, room.Name, room.Description, room.Capacity,
			room.CreatedByUserID, room.CreatedByDate.UTC(), room.LastUpdatedByUserID, room.LastUpdatedByDate.UTC(),
		).Scan(&room.ItemID)
	})
	if isForeignKeyViolation(err) {
		return domain.NewNotFound(domain.CodeCampEntityName)
	}
	return err
}

func (r *roomRepository) GetByID(ctx context.Context, itemID, codeCampID int) (*domain.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE item_id = $1 AND code_camp_id = $2
	`
	var room *domain.Room
	err := withConn(ctx, r.DB, func(conn *sql.Conn) error {
		var err error
		room, err = scanRoom(conn.QueryRowContext(ctx, query, itemID, codeCampID))
		return err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return room, nil
}

func (r *roomRepository) GetByCodeCampID(ctx context.Context, codeCampID int) ([]*domain.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE code_camp_id = $1
		ORDER BY name, item_id
	`
	rooms := make([]*domain.Room, 0)
	err := withConn(ctx, r.DB, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, codeCampID)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			room, err := scanRoom(rows)
			if err != nil {
				return err
			}
			rooms = append(rooms, room)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `
		UPDATE rooms
		SET name = $1, description = $2, capacity = $3,
			last_updated_by_user_id = $4, last_updated_by_date = $5
		WHERE item_id = $6 AND code_camp_id = $7
	`
	return withConn(ctx, r.DB, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, query,
			room.Name, room.Description, room.Capacity,
			room.LastUpdatedByUserID, room.LastUpdatedByDate.UTC(), room.ItemID, room.CodeCampID)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.NewNotFound(domain.RoomEntityName)
		}
		return nil
	})
}

func (r *roomRepository) Delete(ctx context.Context, room *domain.Room) error {
	query := `DELETE FROM rooms WHERE item_id = $1`
	return withConn(ctx, r.DB, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, query, room.ItemID)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.NewNotFound(domain.RoomEntityName)
		}
		return nil
	})
}
