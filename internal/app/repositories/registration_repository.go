package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/regportal/internal/app/models"
	"github.com/arjun/regportal/internal/pkg/apperrors"
	"github.com/arjun/regportal/internal/pkg/dberrors"
)

// IRegistrationRepository defines the interface for registration database operations
type IRegistrationRepository interface {
	GetByEnrollmentNumber(ctx context.Context, enrollmentNumber string) (*models.Registration, error)
	Create(ctx context.Context, registration *models.Registration) error
	UpdateDetails(ctx context.Context, registration *models.Registration) error
	ListRegisteredCourses(ctx context.Context, enrollmentNumber string) ([]models.RegisteredCourse, error)
}

// RegistrationRepository handles registration database operations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// GetByEnrollmentNumber retrieves a registration by the owning enrollment number
func (r *RegistrationRepository) GetByEnrollmentNumber(ctx context.Context, enrollmentNumber string) (*models.Registration, error) {
	reg := &models.Registration{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, registration_status, abc_id, user_enrollment_number,
		       faculty_number, gender, programme_name,
		       major_allotted_subject, minor_allotted_subject, generic_allotted_subject
		FROM registrations
		WHERE user_enrollment_number = $1`,
		enrollmentNumber).Scan(
		&reg.ID, &reg.Name, &reg.Status, &reg.ABCID, &reg.UserEnrollmentNumber,
		&reg.FacultyNumber, &reg.Gender, &reg.ProgrammeName,
		&reg.MajorAllottedSubject, &reg.MinorAllottedSubject, &reg.GenericAllottedSubject)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrRegistrationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching registration: %w", err)
	}

	return reg, nil
}

// Create inserts a new registration row
func (r *RegistrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO registrations
			(name, registration_status, abc_id, user_enrollment_number, faculty_number,
			 gender, programme_name, major_allotted_subject, minor_allotted_subject, generic_allotted_subject)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		registration.Name, registration.Status, registration.ABCID,
		registration.UserEnrollmentNumber, registration.FacultyNumber,
		registration.Gender, registration.ProgrammeName,
		registration.MajorAllottedSubject, registration.MinorAllottedSubject,
		registration.GenericAllottedSubject).Scan(&registration.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "registrations_faculty_number_key") {
			return apperrors.ErrFacultyNumberExists
		}
		return fmt.Errorf("error creating registration: %w", err)
	}

	return nil
}

// UpdateDetails overwrites the detail fields of an existing registration in
// place. The registration status is left untouched.
func (r *RegistrationRepository) UpdateDetails(ctx context.Context, registration *models.Registration) error {
	_, err := r.db.Exec(ctx, `
		UPDATE registrations
		SET name = $1, abc_id = $2, faculty_number = $3, gender = $4,
		    programme_name = $5, major_allotted_subject = $6,
		    minor_allotted_subject = $7, generic_allotted_subject = $8
		WHERE user_enrollment_number = $9`,
		registration.Name, registration.ABCID, registration.FacultyNumber,
		registration.Gender, registration.ProgrammeName,
		registration.MajorAllottedSubject, registration.MinorAllottedSubject,
		registration.GenericAllottedSubject, registration.UserEnrollmentNumber)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "registrations_faculty_number_key") {
			return apperrors.ErrFacultyNumberExists
		}
		return fmt.Errorf("error updating registration: %w", err)
	}

	return nil
}

// ListRegisteredCourses returns the elective pairs chosen by a user, ordered
// by semester ascending
func (r *RegistrationRepository) ListRegisteredCourses(ctx context.Context, enrollmentNumber string) ([]models.RegisteredCourse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_enrollment_number, semester, vac, vac_papercode, voc, voc_papercode
		FROM registered_courses
		WHERE user_enrollment_number = $1
		ORDER BY semester ASC`,
		enrollmentNumber)
	if err != nil {
		return nil, fmt.Errorf("error listing registered courses: %w", err)
	}
	defer rows.Close()

	var courses []models.RegisteredCourse
	for rows.Next() {
		var course models.RegisteredCourse
		if err := rows.Scan(
			&course.ID, &course.UserEnrollmentNumber, &course.Semester,
			&course.VAC, &course.VACPaperCode, &course.VOC, &course.VOCPaperCode); err != nil {
			return nil, fmt.Errorf("error scanning registered course: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}
