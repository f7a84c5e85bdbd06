package repository

import (
	"github.com/viajemos/viajemos/internal/pkg/database"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepo implements payments.PaymentRepo on MongoDB
type PaymentRepo struct {
	hooks *mongo.Collection
}

// NewPaymentRepo stores notifications in the configured hook collection
func NewPaymentRepo(mongoClient *database.MongoClient, cfg *models.Config) *PaymentRepo {
	return NewPaymentRepoWithCollection(mongoClient.Collection(cfg.Mongo.HookCollection))
}

// NewPaymentRepoWithCollection wires an existing collection
func NewPaymentRepoWithCollection(hooks *mongo.Collection) *PaymentRepo {
	return &PaymentRepo{hooks: hooks}
}
