package repository

import (
	"context"

	"github.com/iliyamo/student-portal/internal/model"
	"github.com/iliyamo/student-portal/internal/store"
)

// UserRepo provides user persistence over the document store.
type UserRepo struct{ Store *store.Store }

func NewUserRepo(s *store.Store) *UserRepo { return &UserRepo{Store: s} }

// Create appends u to the users collection.  The duplicate-email check
// runs inside the same serialized store update as the append, so two
// concurrent registrations for one email cannot both land.
func (r *UserRepo) Create(ctx context.Context, u model.User) error {
	return r.Store.Update(ctx, func(doc *model.Document) error {
		for i := range doc.Users {
			if doc.Users[i].Email == u.Email {
				return ErrEmailExists
			}
		}
		doc.Users = append(doc.Users, u)
		return nil
	})
}

// FindByEmail fetches a user by exact email match.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (model.User, error) {
	doc, err := r.Store.Load(ctx)
	if err != nil {
		return model.User{}, err
	}
	for i := range doc.Users {
		if doc.Users[i].Email == email {
			return doc.Users[i], nil
		}
	}
	return model.User{}, ErrNotFound
}

// FindByID fetches a user by id.
func (r *UserRepo) FindByID(ctx context.Context, id string) (model.User, error) {
	doc, err := r.Store.Load(ctx)
	if err != nil {
		return model.User{}, err
	}
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			return doc.Users[i], nil
		}
	}
	return model.User{}, ErrNotFound
}

// ListStudents returns every user holding the student role.
func (r *UserRepo) ListStudents(ctx context.Context) ([]model.User, error) {
	doc, err := r.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	students := []model.User{}
	for i := range doc.Users {
		if doc.Users[i].Role == model.RoleStudent {
			students = append(students, doc.Users[i])
		}
	}
	return students, nil
}
