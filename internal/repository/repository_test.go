package repository

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/iliyamo/student-portal/internal/model"
	"github.com/iliyamo/student-portal/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "db.json"))
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	return s
}

func seedUser(t *testing.T, users *UserRepo, email string) model.User {
	t.Helper()
	u := model.User{
		ID:        NewID(),
		Email:     email,
		Password:  "$2a$04$fakehashforrepositorytests",
		FullName:  "Test User",
		Role:      model.RoleStudent,
		StudentID: "ST1",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("Create user: %v", err)
	}
	return u
}

func seedCourse(t *testing.T, courses *CourseRepo) model.Course {
	t.Helper()
	c := model.Course{
		ID:     NewID(),
		Title:  "Distributed Systems",
		Level:  model.LevelAdvanced,
		Status: model.CourseActive,
	}
	if err := courses.Create(context.Background(), c); err != nil {
		t.Fatalf("Create course: %v", err)
	}
	return c
}

func TestUserCreateAndFind(t *testing.T) {
	users := NewUserRepo(newTestStore(t))
	ctx := context.Background()

	u := seedUser(t, users, "a@x.com")

	byEmail, err := users.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if byEmail.ID != u.ID {
		t.Errorf("FindByEmail id = %s, want %s", byEmail.ID, u.ID)
	}

	byID, err := users.FindByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if byID.Email != u.Email || byID.FullName != u.FullName || byID.StudentID != u.StudentID {
		t.Errorf("FindByID = %+v, want %+v", byID, u)
	}
}

func TestUserEmailIsCaseSensitive(t *testing.T) {
	users := NewUserRepo(newTestStore(t))
	seedUser(t, users, "Ada@X.com")

	if _, err := users.FindByEmail(context.Background(), "ada@x.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("lookup with different casing: error = %v, want ErrNotFound", err)
	}
}

func TestUserDuplicateEmail(t *testing.T) {
	users := NewUserRepo(newTestStore(t))
	seedUser(t, users, "a@x.com")

	dup := model.User{ID: NewID(), Email: "a@x.com", FullName: "Clone"}
	if err := users.Create(context.Background(), dup); !errors.Is(err, ErrEmailExists) {
		t.Errorf("Create duplicate: error = %v, want ErrEmailExists", err)
	}
}

func TestUserConcurrentDuplicateRegistration(t *testing.T) {
	users := NewUserRepo(newTestStore(t))
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(n int) {
			defer wg.Done()
			errs[n] = users.Create(ctx, model.User{ID: NewID(), Email: "race@x.com"})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, ErrEmailExists) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("%d concurrent registrations succeeded, want exactly 1", succeeded)
	}
}

func TestUserNotFound(t *testing.T) {
	users := NewUserRepo(newTestStore(t))
	if _, err := users.FindByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() error = %v, want ErrNotFound", err)
	}
}

func TestListStudentsExcludesAdmins(t *testing.T) {
	users := NewUserRepo(newTestStore(t))
	ctx := context.Background()

	seedUser(t, users, "s1@x.com")
	admin := model.User{ID: NewID(), Email: "root@x.com", Role: model.RoleAdmin}
	if err := users.Create(ctx, admin); err != nil {
		t.Fatalf("Create admin: %v", err)
	}

	students, err := users.ListStudents(ctx)
	if err != nil {
		t.Fatalf("ListStudents() error = %v", err)
	}
	if len(students) != 1 || students[0].Email != "s1@x.com" {
		t.Errorf("ListStudents = %+v, want only the student", students)
	}
}

func TestEnrollmentCreateIncrementsCourseCount(t *testing.T) {
	s := newTestStore(t)
	courses := NewCourseRepo(s)
	enrollments := NewEnrollmentRepo(s)
	ctx := context.Background()

	course := seedCourse(t, courses)

	e := model.Enrollment{
		ID: NewID(), UserID: "u1", CourseID: course.ID,
		EnrolledAt: time.Now().UTC(), Status: model.EnrollmentActive,
	}
	if err := enrollments.Create(ctx, e); err != nil {
		t.Fatalf("Create enrollment: %v", err)
	}

	got, err := courses.FindByID(ctx, course.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Students != 1 {
		t.Errorf("course students = %d, want 1", got.Students)
	}

	list, err := enrollments.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(list) != 1 || list[0].CourseID != course.ID {
		t.Errorf("ListByUser = %+v", list)
	}
}

func TestEnrollmentDuplicatePair(t *testing.T) {
	s := newTestStore(t)
	courses := NewCourseRepo(s)
	enrollments := NewEnrollmentRepo(s)
	ctx := context.Background()

	course := seedCourse(t, courses)
	first := model.Enrollment{ID: NewID(), UserID: "u1", CourseID: course.ID, Status: model.EnrollmentActive}
	if err := enrollments.Create(ctx, first); err != nil {
		t.Fatalf("Create enrollment: %v", err)
	}

	second := model.Enrollment{ID: NewID(), UserID: "u1", CourseID: course.ID, Status: model.EnrollmentActive}
	if err := enrollments.Create(ctx, second); !errors.Is(err, ErrAlreadyEnrolled) {
		t.Errorf("duplicate Create: error = %v, want ErrAlreadyEnrolled", err)
	}

	// The failed add must not have bumped the count a second time.
	got, _ := courses.FindByID(ctx, course.ID)
	if got.Students != 1 {
		t.Errorf("course students = %d, want 1", got.Students)
	}
}

func TestEnrollmentConcurrentDuplicateAdds(t *testing.T) {
	s := newTestStore(t)
	courses := NewCourseRepo(s)
	enrollments := NewEnrollmentRepo(s)
	ctx := context.Background()

	course := seedCourse(t, courses)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func(n int) {
			defer wg.Done()
			errs[n] = enrollments.Create(ctx, model.Enrollment{
				ID: NewID(), UserID: "u1", CourseID: course.ID, Status: model.EnrollmentActive,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	if succeeded != 1 {
		t.Errorf("%d near-simultaneous enrollments succeeded, want exactly 1", succeeded)
	}
	got, _ := courses.FindByID(ctx, course.ID)
	if got.Students != 1 {
		t.Errorf("course students = %d, want 1", got.Students)
	}
}

func TestEnrollmentUnknownCourse(t *testing.T) {
	enrollments := NewEnrollmentRepo(newTestStore(t))
	e := model.Enrollment{ID: NewID(), UserID: "u1", CourseID: "missing"}
	if err := enrollments.Create(context.Background(), e); !errors.Is(err, ErrNotFound) {
		t.Errorf("Create with unknown course: error = %v, want ErrNotFound", err)
	}
}

func TestEnrollmentUpdateProgress(t *testing.T) {
	s := newTestStore(t)
	courses := NewCourseRepo(s)
	enrollments := NewEnrollmentRepo(s)
	ctx := context.Background()

	course := seedCourse(t, courses)
	e := model.Enrollment{ID: NewID(), UserID: "u1", CourseID: course.ID, Status: model.EnrollmentActive}
	if err := enrollments.Create(ctx, e); err != nil {
		t.Fatalf("Create enrollment: %v", err)
	}

	updated, err := enrollments.UpdateProgress(ctx, "u1", e.ID, 40)
	if err != nil {
		t.Fatalf("UpdateProgress() error = %v", err)
	}
	if updated.Progress != 40 || updated.Status != model.EnrollmentActive {
		t.Errorf("after 40%%: %+v", updated)
	}

	updated, err = enrollments.UpdateProgress(ctx, "u1", e.ID, 100)
	if err != nil {
		t.Fatalf("UpdateProgress() error = %v", err)
	}
	if updated.Status != model.EnrollmentCompleted {
		t.Errorf("status at 100%% = %s, want Completed", updated.Status)
	}

	// Another user cannot touch it.
	if _, err := enrollments.UpdateProgress(ctx, "u2", e.ID, 10); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign UpdateProgress: error = %v, want ErrNotFound", err)
	}
}

func TestPaymentLifecycle(t *testing.T) {
	payments := NewPaymentRepo(newTestStore(t))
	ctx := context.Background()

	p := model.Payment{
		ID: NewID(), UserID: "u1", Amount: 199.99,
		Status: model.PaymentPending, InvoiceID: "tx-1",
		PaymentDate: time.Now().UTC(),
	}
	if err := payments.Create(ctx, p); err != nil {
		t.Fatalf("Create payment: %v", err)
	}

	mine, err := payments.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(mine) != 1 || mine[0].Status != model.PaymentPending {
		t.Errorf("ListByUser = %+v", mine)
	}
	if other, _ := payments.ListByUser(ctx, "u2"); len(other) != 0 {
		t.Errorf("ListByUser for stranger = %+v, want empty", other)
	}

	settled, err := payments.MarkPaid(ctx, p.ID)
	if err != nil {
		t.Fatalf("MarkPaid() error = %v", err)
	}
	if settled.Status != model.PaymentPaid {
		t.Errorf("status = %s, want Paid", settled.Status)
	}

	if _, err := payments.MarkPaid(ctx, p.ID); !errors.Is(err, ErrConflict) {
		t.Errorf("second MarkPaid: error = %v, want ErrConflict", err)
	}
	if _, err := payments.MarkPaid(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("MarkPaid missing: error = %v, want ErrNotFound", err)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID returned empty string")
		}
		if seen[id] {
			t.Fatalf("NewID produced duplicate %s", id)
		}
		seen[id] = true
	}
}
