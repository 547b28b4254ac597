package model

import "time"

// Payment settlement states.
const (
	PaymentPaid    = "Paid"
	PaymentPending = "Pending"
	PaymentFailed  = "Failed"
)

// Payment is a financial record tied to a user.  CourseID is empty for
// payments not linked to a specific course (e.g. semester fees).
// InvoiceID references the external payment provider's transaction.
type Payment struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	CourseID    string     `json:"courseId"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	Description string     `json:"description"`
	InvoiceID   string     `json:"invoiceId"`
	PaymentDate time.Time  `json:"paymentDate"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}
