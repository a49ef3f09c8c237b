package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/trucklink/fleetcall/internal/pkg/models"
)

// DispatchRepo implements the driver and report repository interfaces
type DispatchRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDispatchRepo creates a new dispatch repository instance
func NewDispatchRepo(cfg *models.Config, db *sqlx.DB) *DispatchRepo {
	return &DispatchRepo{
		cfg: cfg,
		db:  db,
	}
}
