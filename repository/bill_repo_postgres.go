package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"siddeshlogistics/models"

	"github.com/google/uuid"
)

type PostgresBillRepo struct {
	DB *sql.DB
}

func NewPostgresBillRepo(db *sql.DB) *PostgresBillRepo {
	return &PostgresBillRepo{DB: db}
}

const billColumns = `id, bill_number, customer_name, customer_address, bill_date,
	total_amount, total_paid, balance_amount, status, owner_id,
	pdf_url, pdf_created_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBill(row rowScanner) (*models.Bill, error) {
	b := &models.Bill{}
	var status string
	err := row.Scan(&b.ID, &b.BillNumber, &b.CustomerName, &b.CustomerAddress, &b.BillDate,
		&b.TotalAmount, &b.TotalPaid, &b.BalanceAmount, &status, &b.OwnerID,
		&b.PdfURL, &b.PdfCreatedAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.Status = models.BillStatus(status)
	return b, nil
}

func (r *PostgresBillRepo) CreateBill(ctx context.Context, bill *models.Bill) error {
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now().UTC()
	}
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO bills (`+billColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`, id, bill.BillNumber, bill.CustomerName, bill.CustomerAddress, bill.BillDate,
		bill.TotalAmount, bill.TotalPaid, bill.BalanceAmount, string(bill.Status), bill.OwnerID,
		bill.PdfURL, bill.PdfCreatedAt, bill.CreatedAt, bill.UpdatedAt)
	if err != nil {
		return err
	}
	bill.ID = id
	return nil
}

func (r *PostgresBillRepo) GetBill(ctx context.Context, ownerID, id string) (*models.Bill, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+billColumns+` FROM bills WHERE id = $1 AND owner_id = $2`, id, ownerID)
	b, err := scanBill(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *PostgresBillRepo) ListBills(ctx context.Context, filters map[string]interface{}) ([]*models.Bill, error) {
	where, args, err := buildWhere(BillsCollection, filters, BillFilterKeys)
	if err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, `SELECT `+billColumns+` FROM bills`+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresBillRepo) UpdateBill(ctx context.Context, bill *models.Bill) error {
	now := time.Now().UTC()
	bill.UpdatedAt = &now

	res, err := r.DB.ExecContext(ctx, `
		UPDATE bills
		SET bill_number=$1, customer_name=$2, customer_address=$3, bill_date=$4,
			total_amount=$5, total_paid=$6, balance_amount=$7, status=$8,
			pdf_url=$9, pdf_created_at=$10, updated_at=$11
		WHERE id=$12 AND owner_id=$13
	`, bill.BillNumber, bill.CustomerName, bill.CustomerAddress, bill.BillDate,
		bill.TotalAmount, bill.TotalPaid, bill.BalanceAmount, string(bill.Status),
		bill.PdfURL, bill.PdfCreatedAt, bill.UpdatedAt, bill.ID, bill.OwnerID)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func (r *PostgresBillRepo) SetPDFLocation(ctx context.Context, ownerID, id, fileURL string, at time.Time) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE bills
		SET pdf_url = COALESCE(NULLIF($1, ''), pdf_url), pdf_created_at = $2
		WHERE id = $3 AND owner_id = $4
	`, fileURL, at, id, ownerID)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func (r *PostgresBillRepo) DeleteBill(ctx context.Context, ownerID, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM bills WHERE id=$1 AND owner_id=$2`, id, ownerID)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
