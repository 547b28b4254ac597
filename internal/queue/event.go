// Package queue defines message payloads exchanged over the message broker.
package queue

// PaymentInitiatedEvent is published when a student starts a payment.
// It carries enough information for downstream consumers to log, notify,
// or reconcile with the payment provider without querying the portal.
type PaymentInitiatedEvent struct {
	PaymentID   string  `json:"payment_id"`
	UserID      string  `json:"user_id"`
	CourseID    string  `json:"course_id,omitempty"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	InvoiceID   string  `json:"invoice_id"`
	InitiatedAt string  `json:"initiated_at"`
}
