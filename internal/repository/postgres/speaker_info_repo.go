package postgres

import (
	"context"
	"database/sql"
	"errors"

	"codecamp/internal/domain"
)

const speakerInfoColumns = `item_id, code_camp_id, registration_id, company_name, company_title,
		bio, website, twitter, linked_in, icon_file,
		created_by_user_id, created_by_date, last_updated_by_user_id, last_updated_by_date`

type speakerInfoRepository struct {
	DB *sql.DB
}

func NewSpeakerInfoRepository(db *sql.DB) domain.SpeakerInfoRepository {
	return &speakerInfoRepository{DB: db}
}

func scanSpeakerInfo(s rowScanner) (*domain.SpeakerInfo, error) {
	sp := &domain.SpeakerInfo{}
	err := s.Scan(&sp.ItemID, &sp.CodeCampID, &sp.RegistrationID, &sp.CompanyName, &sp.CompanyTitle,
		&sp.Bio, &sp.Website, &sp.Twitter, &sp.LinkedIn, &sp.IconFile,
		&sp.CreatedByUserID, &sp.CreatedByDate, &sp.LastUpdatedByUserID, &sp.LastUpdatedByDate)
	if err != nil {
		return nil, err
	}
	sp.CreatedByDate = sp.CreatedByDate.UTC()
	sp.LastUpdatedByDate = sp.LastUpdatedByDate.UTC()
	return sp, nil
}

// Create inserts the profile. Duplicate (code_camp_id, registration_id) pairs are accepted.
func (r *speakerInfoRepository) Create(ctx context.Context, sp *domain.SpeakerInfo) error {
	query := `
		INSERT INTO speaker_infos (code_camp_id, registration_id, company_name, company_title,
			bio, website, twitter, linked_in, icon_file,
			created_by_user_id, created_by_date, last_updated_by_user_id, last_updated_by_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING item_id
	`
	err := withConn(ctx, r.DB, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query,
			sp.CodeCampID, sp.RegistrationID, sp.CompanyName, sp.CompanyTitle,
			sp.Bio, sp.Website, sp.Twitter, sp.LinkedIn, sp.IconFile,
			sp.CreatedByUserID, sp.CreatedByDate.UTC(), sp.LastUpdatedByUserID, sp.LastUpdatedByDate.UTC(),
		).Scan(&sp.ItemID)
	})
	if isForeignKeyViolation(err) {
		return domain.NewNotFound(domain.CodeCampEntityName)
	}
	return err
}

func (r *speakerInfoRepository) GetByID(ctx context.Context, itemID, codeCampID int) (*domain.SpeakerInfo, error) {
	query := `
		SELECT ` + speakerInfoColumns + `
		FROM speaker_infos
		WHERE item_id = $1 AND code_camp_id = $2
	`
	return r.getOne(ctx, query, itemID, codeCampID)
}

// GetByRegistrationID returns the lowest item_id for the pair, or nil when there is none.
func (r *speakerInfoRepository) GetByRegistrationID(ctx context.Context, codeCampID, registrationID int) (*domain.SpeakerInfo, error) {
	query := `
		SELECT ` + speakerInfoColumns + `
		FROM speaker_infos
		WHERE code_camp_id = $1 AND registration_id = $2
		ORDER BY item_id
		LIMIT 1
	`
	return r.getOne(ctx, query, codeCampID, registrationID)
}

func (r *speakerInfoRepository) getOne(ctx context.Context, query string, args ...any) (*domain.SpeakerInfo, error) {
	var sp *domain.SpeakerInfo
	err := withConn(ctx, r.DB, func(conn *sql.Conn) error {
		var err error
		sp, err = scanSpeakerInfo(conn.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return sp, nil
}

func (r *speakerInfoRepository) GetByCodeCampID(ctx context.Context, codeCampID int) ([]*domain.SpeakerInfo, error) {
	query := `
		SELECT ` + speakerInfoColumns + `
		FROM speaker_infos
		WHERE code_camp_id = $1
		ORDER BY item_id
	`
	speakers := make([]*domain.SpeakerInfo, 0)
	err := withConn(ctx, r.DB, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, codeCampID)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			sp, err := scanSpeakerInfo(rows)
			if err != nil {
				return err
			}
			speakers = append(speakers, sp)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return speakers, nil
}

// Update overwrites the profile columns. registration_id and code_camp_id are fixed.
func (r *speakerInfoRepository) Update(ctx context.Context, sp *domain.SpeakerInfo) error {
	query := `
		UPDATE speaker_infos
		SET company_name = $1, company_title = $2, bio = $3, website = $4, twitter = $5,
			linked_in = $6, icon_file = $7, last_updated_by_user_id = $8, last_updated_by_date = $9
		WHERE item_id = $10 AND code_camp_id = $11
	`
	return withConn(ctx, r.DB, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, query,
			sp.CompanyName, sp.CompanyTitle, sp.Bio, sp.Website, sp.Twitter,
			sp.LinkedIn, sp.IconFile, sp.LastUpdatedByUserID, sp.LastUpdatedByDate.UTC(),
			sp.ItemID, sp.CodeCampID)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.NewNotFound(domain.SpeakerInfoEntityName)
		}
		return nil
	})
}

func (r *speakerInfoRepository) Delete(ctx context.Context, sp *domain.SpeakerInfo) error {
	query := `DELETE FROM speaker_infos WHERE item_id = $1`
	return withConn(ctx, r.DB, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, query, sp.ItemID)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.NewNotFound(domain.SpeakerInfoEntityName)
		}
		return nil
	})
}
