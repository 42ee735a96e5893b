package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	"github.com/swiftlr/cargo_booking_app/internal/models"
)

type PgxVehicleRepository struct {
	db *pgxpool.Pool
}

func newPgxVehicleRepository(db *pgxpool.Pool) portsrepo.VehicleRepositoryFacade {
	return &PgxVehicleRepository{db: db}
}

var _ portsrepo.VehicleRepositoryFacade = (*PgxVehicleRepository)(nil)

func toDomainVehicle(m models.Vehicle) domain.Vehicle {
	return domain.Vehicle{
		VehicleID:          m.VehicleID,
		OperatorID:         m.OperatorID,
		RegistrationNumber: m.RegistrationNumber,
		VehicleType:        m.VehicleType,
		CapacityKg:         m.CapacityKg,
		DriverName:         m.DriverName,
		DriverPhone:        m.DriverPhone,
		IsActive:           m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const vehicleColumns = `vehicle_id, operator_id, registration_number, vehicle_type, capacity_kg, driver_name, driver_phone, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanVehicle(row pgx.Row) (*domain.Vehicle, error) {
	var m models.Vehicle
	err := row.Scan(
		&m.VehicleID,
		&m.OperatorID,
		&m.RegistrationNumber,
		&m.VehicleType,
		&m.CapacityKg,
		&m.DriverName,
		&m.DriverPhone,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
	}
	v := toDomainVehicle(m)
	return &v, nil
}

func (r *PgxVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db.Exec(ctx, query,
		vehicle.VehicleID,
		vehicle.OperatorID,
		vehicle.RegistrationNumber,
		vehicle.VehicleType,
		vehicle.CapacityKg,
		vehicle.DriverName,
		vehicle.DriverPhone,
		vehicle.IsActive,
		vehicle.CreatedAt,
		vehicle.CreatedBy,
		vehicle.LastUpdatedAt,
		vehicle.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save vehicle: %w", err)
	}
	return nil
}

func (r *PgxVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	query := `
		UPDATE vehicles
		SET vehicle_type = $2, capacity_kg = $3, driver_name = $4, driver_phone = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE vehicle_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		vehicle.VehicleID,
		vehicle.VehicleType,
		vehicle.CapacityKg,
		vehicle.DriverName,
		vehicle.DriverPhone,
		vehicle.IsActive,
		vehicle.LastUpdatedAt,
		vehicle.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle %s: %w", vehicle.VehicleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE vehicle_id = $1;`
	return scanVehicle(r.db.QueryRow(ctx, query, vehicleID))
}

func (r *PgxVehicleRepository) ListVehiclesByOperator(ctx context.Context, operatorID string, limit, offset int) ([]domain.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE operator_id = $1
		ORDER BY registration_number
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, operatorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles for operator %s: %w", operatorID, err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}

func (r *PgxVehicleRepository) DeactivateVehicle(ctx context.Context, vehicleID string, updatedBy string, now time.Time) error {
	query := `
		UPDATE vehicles
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE vehicle_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, vehicleID, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate vehicle %s: %w", vehicleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
