package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/viajemos/viajemos/internal/pkg/database"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

// TripRepo implements trips.TripRepo on PostgreSQL with a Redis search cache
type TripRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewTripRepo creates a new trip repository
func NewTripRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *TripRepo {
	return &TripRepo{
		db:          db,
		redisClient: redisClient,
		cfg:         cfg,
	}
}
