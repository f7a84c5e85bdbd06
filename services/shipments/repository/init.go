package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/viajemos/viajemos/internal/pkg/database"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

// ShipmentRepo implements shipments.ShipmentRepo on PostgreSQL, with the
// delivery PIN attempt counter in Redis
type ShipmentRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewShipmentRepo creates a new shipment repository
func NewShipmentRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *ShipmentRepo {
	return &ShipmentRepo{
		db:          db,
		redisClient: redisClient,
		cfg:         cfg,
	}
}
