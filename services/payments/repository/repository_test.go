package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/viajemos/viajemos/internal/pkg/models"
)

func TestSaveNotification(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("stored", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewPaymentRepoWithCollection(mt.Coll)

		err := repo.SaveNotification(context.Background(), &models.PaymentNotification{
			ID:         "n-1",
			Topic:      "payment",
			ResourceID: "123",
			Query:      map[string][]string{"topic": {"payment"}},
			Payload:    `{"type":"payment"}`,
			ReceivedAt: time.Now(),
		})

		require.NoError(mt, err)
	})

	mt.Run("duplicate id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		repo := NewPaymentRepoWithCollection(mt.Coll)

		err := repo.SaveNotification(context.Background(), &models.PaymentNotification{ID: "n-1"})

		require.Error(mt, err)
		assert.True(mt, mongo.IsDuplicateKeyError(err))
	})
}
