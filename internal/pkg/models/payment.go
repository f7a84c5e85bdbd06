package models

import (
	"time"
)

// PreferenceItem is one line item of a checkout preference
type PreferenceItem struct {
	ID         string  `json:"id,omitempty"`
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id,omitempty"`
}

// Payer identifies who is paying
type Payer struct {
	Name    string `json:"name,omitempty"`
	Surname string `json:"surname,omitempty"`
	Email   string `json:"email,omitempty"`
}

// PreferenceRequest is what clients send to the relay
type PreferenceRequest struct {
	Items             []PreferenceItem `json:"items"`
	Payer             Payer            `json:"payer"`
	ExternalReference string           `json:"external_reference,omitempty"`
}

// BackURLs are the provider redirect targets after checkout
type BackURLs struct {
	Success string `json:"success,omitempty"`
	Failure string `json:"failure,omitempty"`
	Pending string `json:"pending,omitempty"`
}

// ProviderPreference is the body forwarded to the payment provider
type ProviderPreference struct {
	Items             []PreferenceItem `json:"items"`
	Payer             Payer            `json:"payer"`
	ExternalReference string           `json:"external_reference,omitempty"`
	NotificationURL   string           `json:"notification_url,omitempty"`
	BackURLs          *BackURLs        `json:"back_urls,omitempty"`
}

// ProviderPreferenceResponse is the subset of the provider answer the relay uses
type ProviderPreferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

// PreferenceResponse is returned to clients
type PreferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// PaymentNotification is an asynchronous provider notification as received
type PaymentNotification struct {
	ID         string              `json:"id" bson:"_id"`
	Topic      string              `json:"topic" bson:"topic"`
	Action     string              `json:"action,omitempty" bson:"action,omitempty"`
	ResourceID string              `json:"resource_id,omitempty" bson:"resource_id,omitempty"`
	Query      map[string][]string `json:"query,omitempty" bson:"query,omitempty"`
	Payload    string              `json:"payload" bson:"payload"`
	ReceivedAt time.Time           `json:"received_at" bson:"received_at"`
}
