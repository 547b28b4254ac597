package repository

import (
	"context"

	"github.com/iliyamo/student-portal/internal/model"
	"github.com/iliyamo/student-portal/internal/store"
)

// CourseRepo provides catalog persistence over the document store.
type CourseRepo struct{ Store *store.Store }

func NewCourseRepo(s *store.Store) *CourseRepo { return &CourseRepo{Store: s} }

// Create appends a new course to the catalog.
func (r *CourseRepo) Create(ctx context.Context, course model.Course) error {
	return r.Store.Update(ctx, func(doc *model.Document) error {
		doc.Courses = append(doc.Courses, course)
		return nil
	})
}

// FindByID fetches a course by id.
func (r *CourseRepo) FindByID(ctx context.Context, id string) (model.Course, error) {
	doc, err := r.Store.Load(ctx)
	if err != nil {
		return model.Course{}, err
	}
	for i := range doc.Courses {
		if doc.Courses[i].ID == id {
			return doc.Courses[i], nil
		}
	}
	return model.Course{}, ErrNotFound
}

// List returns the full catalog.
func (r *CourseRepo) List(ctx context.Context) ([]model.Course, error) {
	doc, err := r.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Courses, nil
}
