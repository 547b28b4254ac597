package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/student-portal/internal/model"
	"github.com/iliyamo/student-portal/internal/queue"
	"github.com/iliyamo/student-portal/internal/repository"
	queue_publisher "github.com/iliyamo/student-portal/internal/service"
)

// PaymentHandler bundles dependencies for payment endpoints.  Publish is
// swappable so tests do not need a broker; it defaults to the RabbitMQ
// publisher.
type PaymentHandler struct {
	Payments *repository.PaymentRepo
	Publish  func(context.Context, queue.PaymentInitiatedEvent) error
}

func NewPaymentHandler(p *repository.PaymentRepo) *PaymentHandler {
	return &PaymentHandler{Payments: p, Publish: queue_publisher.PublishPaymentInitiated}
}

type createPaymentReq struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CourseID    string  `json:"courseId"`
	TxRef       string  `json:"txRef"`
}

// List returns the authenticated user's payments.
func (h *PaymentHandler) List(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	payments, err := h.Payments.ListByUser(ctx, sess.UserID)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}

// Create records a Pending payment for the authenticated user and
// publishes a payment.initiated event.  The payment is persisted first;
// a broker outage loses only the event, never the record.
func (h *PaymentHandler) Create(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
	}

	invoiceID := strings.TrimSpace(req.TxRef)
	if invoiceID == "" {
		invoiceID = repository.NewID()
	}
	payment := model.Payment{
		ID:          repository.NewID(),
		UserID:      sess.UserID,
		CourseID:    req.CourseID,
		Amount:      req.Amount,
		Status:      model.PaymentPending,
		Description: req.Description,
		InvoiceID:   invoiceID,
		PaymentDate: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Payments.Create(ctx, payment); err != nil {
		return repoError(c, err)
	}

	if h.Publish != nil {
		event := queue.PaymentInitiatedEvent{
			PaymentID:   payment.ID,
			UserID:      payment.UserID,
			CourseID:    payment.CourseID,
			Amount:      payment.Amount,
			Status:      payment.Status,
			Description: payment.Description,
			InvoiceID:   payment.InvoiceID,
			InitiatedAt: payment.PaymentDate.Format(time.RFC3339),
		}
		go func() {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer pubCancel()
			_ = h.Publish(pubCtx, event) // publisher logs its own failures
		}()
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "payment": payment})
}

// Confirm settles a pending payment, the step a provider callback would
// perform.  Admin only; confirming an already settled payment is a 409.
func (h *PaymentHandler) Confirm(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	settled, err := h.Payments.MarkPaid(ctx, c.Param("id"))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "payment": settled})
}
