package repository

import (
	"context"
	"database/sql"
	"time"

	"siddeshlogistics/models"

	"github.com/google/uuid"
)

type PostgresPaymentRepo struct {
	DB *sql.DB
}

func NewPostgresPaymentRepo(db *sql.DB) *PostgresPaymentRepo {
	return &PostgresPaymentRepo{DB: db}
}

func (r *PostgresPaymentRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO payments(id,bill_id,owner_id,amount,date,time,description,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
	`, id, p.BillID, p.OwnerID, p.Amount, p.Date, p.Time, p.Description, p.CreatedAt)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *PostgresPaymentRepo) ListPayments(ctx context.Context, filters map[string]interface{}) ([]*models.Payment, error) {
	where, args, err := buildWhere(PaymentsCollection, filters, PaymentFilterKeys)
	if err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id,bill_id,owner_id,amount,date,time,description,created_at
		FROM payments`+where+` ORDER BY created_at`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		if err := rows.Scan(&p.ID, &p.BillID, &p.OwnerID, &p.Amount, &p.Date, &p.Time,
			&p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresPaymentRepo) DeletePayment(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM payments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}
