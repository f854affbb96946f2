package repository

import (
	"context"
	"database/sql"
	"time"

	"siddeshlogistics/models"

	"github.com/google/uuid"
)

type PostgresShipmentRepo struct {
	DB *sql.DB
}

func NewPostgresShipmentRepo(db *sql.DB) *PostgresShipmentRepo {
	return &PostgresShipmentRepo{DB: db}
}

func (r *PostgresShipmentRepo) CreateShipment(ctx context.Context, s *models.Shipment) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO shipments(id,bill_id,owner_id,sr_no,date,container_no,vehicle_no,
			from_location,to_location,weight,total_fair,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`, id, s.BillID, s.OwnerID, s.SrNo, s.Date, s.ContainerNo, s.VehicleNo,
		s.FromLocation, s.ToLocation, s.Weight, s.TotalFair, s.CreatedAt)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *PostgresShipmentRepo) ListShipments(ctx context.Context, filters map[string]interface{}) ([]*models.Shipment, error) {
	where, args, err := buildWhere(ShipmentsCollection, filters, ShipmentFilterKeys)
	if err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id,bill_id,owner_id,sr_no,date,container_no,vehicle_no,
			from_location,to_location,weight,total_fair,created_at
		FROM shipments`+where+` ORDER BY sr_no`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Shipment
	for rows.Next() {
		s := &models.Shipment{}
		if err := rows.Scan(&s.ID, &s.BillID, &s.OwnerID, &s.SrNo, &s.Date, &s.ContainerNo, &s.VehicleNo,
			&s.FromLocation, &s.ToLocation, &s.Weight, &s.TotalFair, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresShipmentRepo) DeleteShipment(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM shipments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}
