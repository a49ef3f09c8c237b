package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/trucklink/fleetcall/internal/pkg/apperrors"
	"github.com/trucklink/fleetcall/internal/pkg/models"
)

// GetDriverByID retrieves a driver from the directory
func (r *DispatchRepo) GetDriverByID(ctx context.Context, driverID string) (*models.Driver, error) {
	query := `SELECT * FROM drivers WHERE driver_id = $1`

	var driver models.Driver
	err := r.db.GetContext(ctx, &driver, query, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.DriverNotFound(driverID)
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return &driver, nil
}

// GetDriversByIDs retrieves the subset of the given drivers that exist.
// Missing IDs are not an error; callers diff the result against the
// request to find them.
func (r *DispatchRepo) GetDriversByIDs(ctx context.Context, driverIDs []string) ([]*models.Driver, error) {
	if len(driverIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM drivers WHERE driver_id IN (?)`, driverIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build driver query: %w", err)
	}
	query = r.db.Rebind(query)

	var drivers []*models.Driver
	if err := r.db.SelectContext(ctx, &drivers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}

	return drivers, nil
}

// ListDrivers returns the full driver directory
func (r *DispatchRepo) ListDrivers(ctx context.Context) ([]*models.Driver, error) {
	query := `SELECT * FROM drivers ORDER BY last_name, first_name`

	var drivers []*models.Driver
	if err := r.db.SelectContext(ctx, &drivers, query); err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	return drivers, nil
}

// CreateDriver inserts a new driver directory record
func (r *DispatchRepo) CreateDriver(ctx context.Context, driver *models.Driver) error {
	query := `
		INSERT INTO drivers (
			driver_id, status, first_name, last_name, truck_id, phone_number,
			email, hired_on, updated_on, company_id, dispatcher,
			first_language, second_language, global_dnd,
			safety_call, safety_message, hos_support,
			maintenance_call, maintenance_message,
			dispatch_call, dispatch_message,
			account_call, account_message, telegram_id
		) VALUES (
			:driver_id, :status, :first_name, :last_name, :truck_id, :phone_number,
			:email, :hired_on, :updated_on, :company_id, :dispatcher,
			:first_language, :second_language, :global_dnd,
			:safety_call, :safety_message, :hos_support,
			:maintenance_call, :maintenance_message,
			:dispatch_call, :dispatch_message,
			:account_call, :account_message, :telegram_id
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, driver); err != nil {
		return fmt.Errorf("failed to insert driver: %w", err)
	}

	return nil
}
