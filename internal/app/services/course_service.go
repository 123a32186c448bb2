package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arjun/regportal/internal/app/models"
	"github.com/arjun/regportal/internal/app/models/dto"
	"github.com/arjun/regportal/internal/app/repositories"
	"github.com/arjun/regportal/internal/pkg/apperrors"
)

// CourseService exposes the elective catalogs
type CourseService interface {
	ListAvailable(ctx context.Context, coursesType string, semester int) ([]dto.CourseListItem, error)
}

type courseService struct {
	courseRepo repositories.ICourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.ICourseRepository, logger zerolog.Logger) CourseService {
	return &courseService{courseRepo: courseRepo, logger: logger}
}

// ListAvailable returns the catalog rows for a semester that still have free
// seats, with per-row availability arithmetic.
func (s *courseService) ListAvailable(ctx context.Context, coursesType string, semester int) ([]dto.CourseListItem, error) {
	var courseType models.CourseType
	switch coursesType {
	case string(models.CourseTypeVAC):
		courseType = models.CourseTypeVAC
	case string(models.CourseTypeVOC):
		courseType = models.CourseTypeVOC
	default:
		return nil, apperrors.ErrInvalidCourseType
	}

	courses, err := s.courseRepo.ListAvailable(ctx, courseType, semester)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CourseListItem, 0, len(courses))
	for _, course := range courses {
		items = append(items, dto.CourseListItem{
			Name:           course.CourseName,
			PaperCode:      course.CourseCode,
			DepartmentName: course.DepartmentName,
			AvailableSeats: course.SeatsRemaining(),
			TotalSeats:     course.TotalSeats,
		})
	}

	return items, nil
}
