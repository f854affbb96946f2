package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"siddeshlogistics/models"

	"github.com/google/uuid"
)

type PostgresInitialRepo struct {
	DB *sql.DB
}

func NewPostgresInitialRepo(db *sql.DB) *PostgresInitialRepo {
	return &PostgresInitialRepo{DB: db}
}

// SaveInitial inserts a new setup, or updates the existing one when ID is set.
func (r *PostgresInitialRepo) SaveInitial(ctx context.Context, initial *models.InitialSetup) error {
	if initial.CreatedAt.IsZero() {
		initial.CreatedAt = time.Now().UTC()
	}

	taglines, err := json.Marshal(initial.Taglines)
	if err != nil {
		return err
	}
	mobile, err := json.Marshal(initial.Mobile)
	if err != nil {
		return err
	}
	bank, err := json.Marshal(initial.Bank)
	if err != nil {
		return err
	}
	terms, err := json.Marshal(initial.Terms)
	if err != nil {
		return err
	}

	if initial.ID != "" {
		res, err := r.DB.ExecContext(ctx, `
			UPDATE initial_setup
			SET company_name=$1, taglines=$2, address=$3, email=$4, pan=$5, gstin=$6,
				mobile=$7, bank=$8, terms=$9
			WHERE id=$10 AND owner_id=$11
		`, initial.CompanyName, taglines, initial.Address, initial.Email, initial.PAN, initial.GSTIN,
			mobile, bank, terms, initial.ID, initial.OwnerID)
		if err != nil {
			return err
		}
		return expectOneRow(res)
	}

	initial.ID = uuid.NewString()
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO initial_setup
		(id, owner_id, company_name, taglines, address, email, pan, gstin, mobile, bank, terms, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`, initial.ID, initial.OwnerID, initial.CompanyName, taglines, initial.Address, initial.Email,
		initial.PAN, initial.GSTIN, mobile, bank, terms, initial.CreatedAt)
	return err
}

func (r *PostgresInitialRepo) GetInitial(ctx context.Context, ownerID string) (*models.InitialSetup, error) {
	initial := &models.InitialSetup{}
	var taglines, mobile, bank, terms []byte

	err := r.DB.QueryRowContext(ctx, `
		SELECT id, owner_id, company_name, taglines, address, email, pan, gstin, mobile, bank, terms, created_at
		FROM initial_setup
		WHERE owner_id = $1
		ORDER BY created_at DESC LIMIT 1
	`, ownerID).Scan(&initial.ID, &initial.OwnerID, &initial.CompanyName, &taglines, &initial.Address,
		&initial.Email, &initial.PAN, &initial.GSTIN, &mobile, &bank, &terms, &initial.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	for _, f := range []struct {
		raw []byte
		dst interface{}
	}{
		{taglines, &initial.Taglines},
		{mobile, &initial.Mobile},
		{bank, &initial.Bank},
		{terms, &initial.Terms},
	} {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, err
		}
	}
	return initial, nil
}
