package gateway

import (
	httpclient "github.com/viajemos/viajemos/internal/pkg/http"
	"github.com/viajemos/viajemos/internal/pkg/models"
	nsqpkg "github.com/viajemos/viajemos/internal/pkg/nsq"
)

// publisher is the part of nsq.Producer the gateway needs
type publisher interface {
	Publish(topic string, message interface{}) error
}

// PaymentGW implements payments.PaymentGW
type PaymentGW struct {
	providerClient *httpclient.Client
	producer       publisher
	topic          string
}

// NewPaymentGW creates a gateway to the payment provider API that publishes
// notifications with producer
func NewPaymentGW(producer *nsqpkg.Producer, cfg *models.Config) *PaymentGW {
	client := httpclient.NewClient(httpclient.Config{
		Name:        "payment-provider",
		BaseURL:     cfg.Payments.APIURL,
		Timeout:     cfg.Payments.Timeout,
		BearerToken: cfg.Payments.AccessToken,
	})
	return NewPaymentGWWithClient(client, producer, cfg.NSQ.Topic)
}

// NewPaymentGWWithClient wires an existing provider client and publisher
func NewPaymentGWWithClient(providerClient *httpclient.Client, producer publisher, topic string) *PaymentGW {
	return &PaymentGW{providerClient: providerClient, producer: producer, topic: topic}
}
