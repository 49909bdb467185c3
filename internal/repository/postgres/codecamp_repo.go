package postgres

import (
	"context"
	"database/sql"
	"errors"

	"codecamp/internal/domain"
)

const codeCampColumns = `item_id, module_id, name, description, begin_date, end_date,
		created_by_user_id, created_by_date, last_updated_by_user_id, last_updated_by_date`

type codeCampRepository struct {
	DB *sql.DB
}

func NewCodeCampRepository(db *sql.DB) domain.CodeCampRepository {
	return &codeCampRepository{
		DB: db,
	}
}

func scanCodeCamp(s rowScanner) (*domain.CodeCampEvent, error) {
	e := &domain.CodeCampEvent{}
	err := s.Scan(&e.ItemID, &e.ModuleID, &e.Name, &e.Description, &e.BeginDate, &e.EndDate,
		&e.CreatedByUserID, &e.CreatedByDate, &e.LastUpdatedByUserID, &e.LastUpdatedByDate)
	if err != nil {
		return nil, err
	}
	e.BeginDate = e.BeginDate.UTC()
	e.EndDate = e.EndDate.UTC()
	e.CreatedByDate = e.CreatedByDate.UTC()
	e.LastUpdatedByDate = e.LastUpdatedByDate.UTC()
	return e, nil
}

func (r *codeCampRepository) Create(ctx context.Context, e *domain.CodeCampEvent) error {
	query := `
		INSERT INTO codecamp_events (module_id, name, description, begin_date, end_date,
			created_by_user_id, created_by_date, last_updated_by_user_id, last_updated_by_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING item_id
	`
	return withConn(ctx, r.DB, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query,
			e.ModuleID, e.Name, e.Description, e.BeginDate.UTC(), e.EndDate.UTC(),
			e.CreatedByUserID, e.CreatedByDate.UTC(), e.LastUpdatedByUserID, e.LastUpdatedByDate.UTC(),
		).Scan(&e.ItemID)
	})
}

func (r *codeCampRepository) GetByID(ctx context.Context, itemID, moduleID int) (*domain.CodeCampEvent, error) {
	query := `
		SELECT ` + codeCampColumns + `
		FROM codecamp_events
		WHERE item_id = $1 AND module_id = $2
	`
	return r.getOne(ctx, query, itemID, moduleID)
}

func (r *codeCampRepository) GetFirstByModuleID(ctx context.Context, moduleID int) (*domain.CodeCampEvent, error) {
	query := `
		SELECT ` + codeCampColumns + `
		FROM codecamp_events
		WHERE module_id = $1
		ORDER BY item_id
		LIMIT 1
	`
	return r.getOne(ctx, query, moduleID)
}

func (r *codeCampRepository) getOne(ctx context.Context, query string, args ...any) (*domain.CodeCampEvent, error) {
	var e *domain.CodeCampEvent
	err := withConn(ctx, r.DB, func(conn *sql.Conn) error {
		var err error
		e, err = scanCodeCamp(conn.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *codeCampRepository) GetByModuleID(ctx context.Context, moduleID int) ([]*domain.CodeCampEvent, error) {
	query := `
		SELECT ` + codeCampColumns + `
		FROM codecamp_events
		WHERE module_id = $1
		ORDER BY begin_date, item_id
	`
	events := make([]*domain.CodeCampEvent, 0)
	err := withConn(ctx, r.DB, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, moduleID)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			e, err := scanCodeCamp(rows)
			if err != nil {
				return err
			}
			events = append(events, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Update overwrites the mutable columns. module_id and the created_by pair are never written.
func (r *codeCampRepository) Update(ctx context.Context, e *domain.CodeCampEvent) error {
	query := `
		UPDATE codecamp_events
		SET name = $1, description = $2, begin_date = $3, end_date = $4,
			last_updated_by_user_id = $5, last_updated_by_date = $6
		WHERE item_id = $7 AND module_id = $8
	`
	return withConn(ctx, r.DB, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, query,
			e.Name, e.Description, e.BeginDate.UTC(), e.EndDate.UTC(),
			e.LastUpdatedByUserID, e.LastUpdatedByDate.UTC(), e.ItemID, e.ModuleID)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.NewNotFound(domain.CodeCampEntityName)
		}
		return nil
	})
}

func (r *codeCampRepository) Delete(ctx context.Context, e *domain.CodeCampEvent) error {
	query := `DELETE FROM codecamp_events WHERE item_id = $1`
	return withConn(ctx, r.DB, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, query, e.ItemID)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.NewNotFound(domain.CodeCampEntityName)
		}
		return nil
	})
}
