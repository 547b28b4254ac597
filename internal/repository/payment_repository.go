package repository

import (
	"context"
	"time"

	"github.com/iliyamo/student-portal/internal/model"
	"github.com/iliyamo/student-portal/internal/store"
)

// PaymentRepo provides payment persistence over the document store.
type PaymentRepo struct{ Store *store.Store }

func NewPaymentRepo(s *store.Store) *PaymentRepo { return &PaymentRepo{Store: s} }

// Create appends a new payment record.
func (r *PaymentRepo) Create(ctx context.Context, p model.Payment) error {
	return r.Store.Update(ctx, func(doc *model.Document) error {
		doc.Payments = append(doc.Payments, p)
		return nil
	})
}

// ListByUser returns all payments belonging to userID.
func (r *PaymentRepo) ListByUser(ctx context.Context, userID string) ([]model.Payment, error) {
	doc, err := r.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Payment{}
	for i := range doc.Payments {
		if doc.Payments[i].UserID == userID {
			out = append(out, doc.Payments[i])
		}
	}
	return out, nil
}

// ListAll returns every payment in the document, for admin review.
func (r *PaymentRepo) ListAll(ctx context.Context) ([]model.Payment, error) {
	doc, err := r.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Payments, nil
}

// MarkPaid settles a pending payment.  A payment that is already Paid
// yields ErrConflict; a missing id yields ErrNotFound.
func (r *PaymentRepo) MarkPaid(ctx context.Context, id string) (model.Payment, error) {
	var settled model.Payment
	err := r.Store.Update(ctx, func(doc *model.Document) error {
		for i := range doc.Payments {
			if doc.Payments[i].ID != id {
				continue
			}
			if doc.Payments[i].Status == model.PaymentPaid {
				return ErrConflict
			}
			doc.Payments[i].Status = model.PaymentPaid
			doc.Payments[i].PaymentDate = time.Now().UTC()
			settled = doc.Payments[i]
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return model.Payment{}, err
	}
	return settled, nil
}
