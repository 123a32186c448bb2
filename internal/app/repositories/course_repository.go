package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/regportal/internal/app/models"
	"github.com/arjun/regportal/internal/db"
	"github.com/arjun/regportal/internal/pkg/apperrors"
)

// ICourseRepository defines the interface for elective-catalog database operations
type ICourseRepository interface {
	ListAvailable(ctx context.Context, courseType models.CourseType, semester int) ([]models.Course, error)
	RegisterCourseSelection(ctx context.Context, course *models.RegisteredCourse) error
	Create(ctx context.Context, courseType models.CourseType, course *models.Course) error
}

// CourseRepository handles elective-catalog database operations
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// catalogTable maps a course type to its table. Table names are fixed
// strings, never caller input.
func catalogTable(courseType models.CourseType) (string, error) {
	switch courseType {
	case models.CourseTypeVAC:
		return "vac_courses", nil
	case models.CourseTypeVOC:
		return "voc_courses", nil
	default:
		return "", apperrors.ErrInvalidCourseType
	}
}

// ListAvailable returns the catalog rows for a semester that still have seats
func (r *CourseRepository) ListAvailable(ctx context.Context, courseType models.CourseType, semester int) ([]models.Course, error) {
	table, err := catalogTable(courseType)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT semester, course_code, course_name, department_name, total_seats, registered_seats
		FROM %s
		WHERE semester = $1 AND registered_seats < total_seats`, table),
		semester)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.Semester, &course.CourseCode, &course.CourseName,
			&course.DepartmentName, &course.TotalSeats, &course.RegisteredSeats); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// RegisterCourseSelection records one semester's elective pair atomically:
// both seat counters are incremented, the registration is marked Completed
// and the chosen pair is appended, all in a single transaction. Any failure
// rolls the whole selection back.
func (r *CourseRepository) RegisterCourseSelection(ctx context.Context, course *models.RegisteredCourse) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			UPDATE vac_courses
			SET registered_seats = registered_seats + 1
			WHERE course_code = $1 AND semester = $2`,
			course.VACPaperCode, course.Semester); err != nil {
			return fmt.Errorf("error incrementing VAC seats: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			UPDATE voc_courses
			SET registered_seats = registered_seats + 1
			WHERE course_code = $1 AND semester = $2`,
			course.VOCPaperCode, course.Semester); err != nil {
			return fmt.Errorf("error incrementing VOC seats: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			UPDATE registrations
			SET registration_status = $1
			WHERE user_enrollment_number = $2`,
			models.StatusCompleted, course.UserEnrollmentNumber); err != nil {
			return fmt.Errorf("error completing registration: %w", err)
		}

		err := tx.QueryRow(ctx, `
			INSERT INTO registered_courses
				(user_enrollment_number, semester, vac, vac_papercode, voc, voc_papercode)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			course.UserEnrollmentNumber, course.Semester,
			course.VAC, course.VACPaperCode, course.VOC, course.VOCPaperCode).Scan(&course.ID)
		if err != nil {
			return fmt.Errorf("error recording course selection: %w", err)
		}

		return nil
	})
}

// Create inserts a catalog row, ignoring duplicates. Used by seeding.
func (r *CourseRepository) Create(ctx context.Context, courseType models.CourseType, course *models.Course) error {
	table, err := catalogTable(courseType)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (semester, course_code, course_name, department_name, total_seats, registered_seats)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (course_code) DO NOTHING`, table),
		course.Semester, course.CourseCode, course.CourseName,
		course.DepartmentName, course.TotalSeats, course.RegisteredSeats)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}
