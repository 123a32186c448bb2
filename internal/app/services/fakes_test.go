package services

import (
	"context"
	"errors"
	"sync"

	"github.com/arjun/regportal/internal/app/models"
	"github.com/arjun/regportal/internal/pkg/apperrors"
)

// fakeUserRepository is an in-memory IUserRepository keyed by enrollment number.
type fakeUserRepository struct {
	mu     sync.Mutex
	users  map[string]*models.User
	nextID int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*models.User)}
}

func (f *fakeUserRepository) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.EnrollmentNumber]; ok {
		return apperrors.ErrEnrollmentAlreadyExists
	}
	for _, existing := range f.users {
		if existing.PhoneNumber == user.PhoneNumber {
			return apperrors.ErrPhoneAlreadyInUse
		}
	}
	f.nextID++
	user.ID = f.nextID
	copied := *user
	f.users[user.EnrollmentNumber] = &copied
	return nil
}

func (f *fakeUserRepository) GetByEnrollmentNumber(_ context.Context, enrollmentNumber string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[enrollmentNumber]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) EnrollmentNumberExists(_ context.Context, enrollmentNumber string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.users[enrollmentNumber]
	return ok, nil
}

func (f *fakeUserRepository) PhoneNumberExists(_ context.Context, phoneNumber string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.PhoneNumber == phoneNumber {
			return true, nil
		}
	}
	return false, nil
}

// fakeRegistrationRepository is an in-memory IRegistrationRepository.
type fakeRegistrationRepository struct {
	mu            sync.Mutex
	registrations map[string]*models.Registration
	courses       []models.RegisteredCourse
	nextID        int64
}

func newFakeRegistrationRepository() *fakeRegistrationRepository {
	return &fakeRegistrationRepository{registrations: make(map[string]*models.Registration)}
}

func (f *fakeRegistrationRepository) GetByEnrollmentNumber(_ context.Context, enrollmentNumber string) (*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reg, ok := f.registrations[enrollmentNumber]
	if !ok {
		return nil, apperrors.ErrRegistrationNotFound
	}
	copied := *reg
	return &copied, nil
}

func (f *fakeRegistrationRepository) Create(_ context.Context, registration *models.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.registrations {
		if existing.FacultyNumber == registration.FacultyNumber {
			return apperrors.ErrFacultyNumberExists
		}
	}
	f.nextID++
	registration.ID = f.nextID
	copied := *registration
	f.registrations[registration.UserEnrollmentNumber] = &copied
	return nil
}

func (f *fakeRegistrationRepository) UpdateDetails(_ context.Context, registration *models.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.registrations[registration.UserEnrollmentNumber]
	if !ok {
		return nil
	}
	updated := *registration
	updated.ID = existing.ID
	updated.Status = existing.Status
	f.registrations[registration.UserEnrollmentNumber] = &updated
	return nil
}

func (f *fakeRegistrationRepository) ListRegisteredCourses(_ context.Context, enrollmentNumber string) ([]models.RegisteredCourse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.RegisteredCourse
	for _, course := range f.courses {
		if course.UserEnrollmentNumber == enrollmentNumber {
			out = append(out, course)
		}
	}
	return out, nil
}

// fakeCourseRepository is an in-memory ICourseRepository. It shares a
// fakeRegistrationRepository so RegisterCourseSelection can flip the
// registration status the way the real transaction does.
type fakeCourseRepository struct {
	mu          sync.Mutex
	catalogs    map[models.CourseType][]models.Course
	regRepo     *fakeRegistrationRepository
	registerErr error
	nextID      int64
}

func newFakeCourseRepository(regRepo *fakeRegistrationRepository) *fakeCourseRepository {
	return &fakeCourseRepository{
		catalogs: make(map[models.CourseType][]models.Course),
		regRepo:  regRepo,
	}
}

func (f *fakeCourseRepository) ListAvailable(_ context.Context, courseType models.CourseType, semester int) ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Course
	for _, course := range f.catalogs[courseType] {
		if course.Semester == semester && course.RegisteredSeats < course.TotalSeats {
			out = append(out, course)
		}
	}
	return out, nil
}

// RegisterCourseSelection mimics the transactional write, including the
// catalog foreign keys: a paper code absent from its catalog fails the whole
// selection and nothing is recorded.
func (f *fakeCourseRepository) RegisterCourseSelection(_ context.Context, course *models.RegisteredCourse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.registerErr != nil {
		return f.registerErr
	}
	vacIdx := f.findCourse(models.CourseTypeVAC, course.VACPaperCode)
	vocIdx := f.findCourse(models.CourseTypeVOC, course.VOCPaperCode)
	if vacIdx < 0 || vocIdx < 0 {
		return errors.New(`insert or update on table "registered_courses" violates foreign key constraint`)
	}
	if f.catalogs[models.CourseTypeVAC][vacIdx].Semester == course.Semester {
		f.catalogs[models.CourseTypeVAC][vacIdx].RegisteredSeats++
	}
	if f.catalogs[models.CourseTypeVOC][vocIdx].Semester == course.Semester {
		f.catalogs[models.CourseTypeVOC][vocIdx].RegisteredSeats++
	}
	if f.regRepo != nil {
		f.regRepo.mu.Lock()
		if reg, ok := f.regRepo.registrations[course.UserEnrollmentNumber]; ok {
			reg.Status = models.StatusCompleted
		}
		f.nextID++
		course.ID = f.nextID
		f.regRepo.courses = append(f.regRepo.courses, *course)
		f.regRepo.mu.Unlock()
	}
	return nil
}

func (f *fakeCourseRepository) findCourse(courseType models.CourseType, code string) int {
	for i, course := range f.catalogs[courseType] {
		if course.CourseCode == code {
			return i
		}
	}
	return -1
}

func (f *fakeCourseRepository) Create(_ context.Context, courseType models.CourseType, course *models.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.catalogs[courseType] {
		if existing.CourseCode == course.CourseCode {
			return nil
		}
	}
	f.catalogs[courseType] = append(f.catalogs[courseType], *course)
	return nil
}

// fakeSMSSender records outgoing messages and can be made to fail.
type fakeSMSSender struct {
	mu       sync.Mutex
	sent     []string
	bodies   []string
	failWith error
}

func (f *fakeSMSSender) Send(_ context.Context, to, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.sent = append(f.sent, to)
	f.bodies = append(f.bodies, body)
	return nil
}
