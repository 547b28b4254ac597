package repository

import (
	"context"
	"time"

	"github.com/iliyamo/student-portal/internal/model"
	"github.com/iliyamo/student-portal/internal/store"
)

// EnrollmentRepo provides enrollment persistence over the document store.
type EnrollmentRepo struct{ Store *store.Store }

func NewEnrollmentRepo(s *store.Store) *EnrollmentRepo { return &EnrollmentRepo{Store: s} }

// Create appends e after verifying, against fresh data inside the same
// serialized update, that the referenced course exists and the user holds
// no enrollment for it yet.  The course's denormalized student count is
// incremented in the same document write.
func (r *EnrollmentRepo) Create(ctx context.Context, e model.Enrollment) error {
	return r.Store.Update(ctx, func(doc *model.Document) error {
		course := -1
		for i := range doc.Courses {
			if doc.Courses[i].ID == e.CourseID {
				course = i
				break
			}
		}
		if course < 0 {
			return ErrNotFound
		}
		for i := range doc.Enrollments {
			if doc.Enrollments[i].UserID == e.UserID && doc.Enrollments[i].CourseID == e.CourseID {
				return ErrAlreadyEnrolled
			}
		}
		doc.Enrollments = append(doc.Enrollments, e)
		doc.Courses[course].Students++
		doc.Courses[course].UpdatedAt = time.Now().UTC()
		return nil
	})
}

// ListByUser returns all enrollments belonging to userID.
func (r *EnrollmentRepo) ListByUser(ctx context.Context, userID string) ([]model.Enrollment, error) {
	doc, err := r.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Enrollment{}
	for i := range doc.Enrollments {
		if doc.Enrollments[i].UserID == userID {
			out = append(out, doc.Enrollments[i])
		}
	}
	return out, nil
}

// UpdateProgress sets the progress percentage on the enrollment owned by
// userID.  Reaching 100 marks the enrollment completed.
func (r *EnrollmentRepo) UpdateProgress(ctx context.Context, userID, enrollmentID string, progress int) (model.Enrollment, error) {
	var updated model.Enrollment
	err := r.Store.Update(ctx, func(doc *model.Document) error {
		for i := range doc.Enrollments {
			if doc.Enrollments[i].ID != enrollmentID || doc.Enrollments[i].UserID != userID {
				continue
			}
			doc.Enrollments[i].Progress = progress
			if progress >= 100 {
				doc.Enrollments[i].Status = model.EnrollmentCompleted
			}
			updated = doc.Enrollments[i]
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return model.Enrollment{}, err
	}
	return updated, nil
}
