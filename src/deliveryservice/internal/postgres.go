package internal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	pb "github.com/pongsathonn/ihavefood/src/deliveryservice/genproto"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// PostgresStorage implements DeliveryStorage on database/sql with lib/pq.
// Schema lives in db/migrations and is applied at boot.
type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) CreateDelivery(ctx context.Context, d *NewDelivery) error {
	query := `
		INSERT INTO deliveries (
			order_id, pickup_code,
			pickup_lat, pickup_lng,
			drop_off_lat, drop_off_lng,
			status, create_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`

	_, err := s.db.ExecContext(ctx, query,
		d.OrderID,
		d.PickupCode,
		pointLat(d.PickupLocation),
		pointLng(d.PickupLocation),
		pointLat(d.DropOffLocation),
		pointLng(d.DropOffLocation),
		pb.DeliveryStatus_RIDER_UNACCEPT.String(),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("delivery %s: %w", d.OrderID, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("insert delivery %s: %w", d.OrderID, err)
	}
	return nil
}

func (s *PostgresStorage) Delivery(ctx context.Context, orderID string) (*DbDelivery, error) {
	query := `
		SELECT d.order_id, d.pickup_code,
		       d.pickup_lat, d.pickup_lng,
		       d.drop_off_lat, d.drop_off_lng,
		       d.status, d.create_time, d.accept_time, d.deliver_time,
		       r.rider_id, r.username, r.phone_number, r.create_time
		FROM deliveries d
		LEFT JOIN riders r ON r.rider_id = d.rider_id
		WHERE d.order_id = $1`

	var (
		d                        DbDelivery
		pickupLat, pickupLng     sql.NullFloat64
		dropOffLat, dropOffLng   sql.NullFloat64
		acceptTime, deliverTime  sql.NullTime
		riderID, username, phone sql.NullString
		riderCreateTime          sql.NullTime
	)

	err := s.db.QueryRowContext(ctx, query, orderID).Scan(
		&d.OrderID, &d.PickupCode,
		&pickupLat, &pickupLng,
		&dropOffLat, &dropOffLng,
		&d.Status, &d.CreateTime, &acceptTime, &deliverTime,
		&riderID, &username, &phone, &riderCreateTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("delivery %s: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query delivery %s: %w", orderID, err)
	}

	if pickupLat.Valid && pickupLng.Valid {
		d.PickupLocation = &DbPoint{Latitude: pickupLat.Float64, Longitude: pickupLng.Float64}
	}
	if dropOffLat.Valid && dropOffLng.Valid {
		d.DropOffLocation = &DbPoint{Latitude: dropOffLat.Float64, Longitude: dropOffLng.Float64}
	}
	if acceptTime.Valid {
		d.AcceptTime = acceptTime.Time
	}
	if deliverTime.Valid {
		d.DeliverTime = deliverTime.Time
	}
	if riderID.Valid {
		d.Rider = &DbRider{
			RiderID:     riderID.String,
			Username:    username.String,
			PhoneNumber: phone.String,
			CreateTime:  riderCreateTime.Time,
		}
	}
	return &d, nil
}

func (s *PostgresStorage) CreateRider(ctx context.Context, r *NewRider) error {
	query := `
		INSERT INTO riders (rider_id, username, phone_number, create_time)
		VALUES ($1, $2, $3, now())`

	_, err := s.db.ExecContext(ctx, query, r.RiderID, r.Username, r.PhoneNumber)
	if isUniqueViolation(err) {
		return fmt.Errorf("rider %s: %w", r.RiderID, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("insert rider %s: %w", r.RiderID, err)
	}
	return nil
}

func (s *PostgresStorage) Rider(ctx context.Context, riderID string) (*DbRider, error) {
	query := `
		SELECT rider_id, username, phone_number, create_time
		FROM riders
		WHERE rider_id = $1`

	var r DbRider
	err := s.db.QueryRowContext(ctx, query, riderID).Scan(
		&r.RiderID, &r.Username, &r.PhoneNumber, &r.CreateTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rider %s: %w", riderID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query rider %s: %w", riderID, err)
	}
	return &r, nil
}

func (s *PostgresStorage) UpdateDeliveryRider(ctx context.Context, orderID, riderID string) error {
	query := `
		UPDATE deliveries
		SET rider_id = $2, accept_time = now()
		WHERE order_id = $1`

	if _, err := s.db.ExecContext(ctx, query, orderID, riderID); err != nil {
		return fmt.Errorf("update delivery %s rider: %w", orderID, err)
	}
	return nil
}

func (s *PostgresStorage) UpdateDeliveryStatus(ctx context.Context, orderID string, status pb.DeliveryStatus) error {
	query := `
		UPDATE deliveries
		SET status = $2,
		    deliver_time = CASE WHEN $3 THEN now() ELSE deliver_time END
		WHERE order_id = $1`

	delivered := status == pb.DeliveryStatus_RIDER_DELIVERED
	if _, err := s.db.ExecContext(ctx, query, orderID, status.String(), delivered); err != nil {
		return fmt.Errorf("update delivery %s status: %w", orderID, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func pointLat(p *DbPoint) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: p.Latitude, Valid: true}
}

func pointLng(p *DbPoint) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: p.Longitude, Valid: true}
}

var _ DeliveryStorage = (*PostgresStorage)(nil)
