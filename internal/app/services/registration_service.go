package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arjun/regportal/internal/app/models"
	"github.com/arjun/regportal/internal/app/models/dto"
	"github.com/arjun/regportal/internal/app/repositories"
	"github.com/arjun/regportal/internal/pkg/apperrors"
)

// RegistrationService drives the registration workflow: personal details
// first, elective selection second.
type RegistrationService interface {
	SubmitDetails(ctx context.Context, enrollmentNumber string, req *dto.UserDetailsRequest) (*models.Registration, error)
	SubmitCourses(ctx context.Context, enrollmentNumber string, req *dto.UserCoursesRequest) error
	CheckStatus(ctx context.Context, enrollmentNumber string) (models.RegistrationStatus, error)
	GetRegistrationData(ctx context.Context, enrollmentNumber string) (*models.Registration, error)
	GetFullRegistrationData(ctx context.Context, enrollmentNumber string) (*dto.FullRegistrationResponse, error)
}

type registrationService struct {
	regRepo    repositories.IRegistrationRepository
	userRepo   repositories.IUserRepository
	courseRepo repositories.ICourseRepository
	logger     zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(
	regRepo repositories.IRegistrationRepository,
	userRepo repositories.IUserRepository,
	courseRepo repositories.ICourseRepository,
	logger zerolog.Logger,
) RegistrationService {
	return &registrationService{
		regRepo:    regRepo,
		userRepo:   userRepo,
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// SubmitDetails upserts the registration row for an enrollment number. An
// existing row has its detail fields overwritten in place with the status
// untouched; a fresh row starts in the Partial state.
func (s *registrationService) SubmitDetails(ctx context.Context, enrollmentNumber string, req *dto.UserDetailsRequest) (*models.Registration, error) {
	registration := &models.Registration{
		Name:                   req.Name,
		ABCID:                  req.ABCID,
		UserEnrollmentNumber:   enrollmentNumber,
		FacultyNumber:          req.FacultyNumber,
		Gender:                 req.Gender,
		ProgrammeName:          req.ProgrammeName,
		MajorAllottedSubject:   req.MajorAllottedSubject,
		MinorAllottedSubject:   req.MinorAllottedSubject,
		GenericAllottedSubject: req.GenericAllottedSubject,
	}

	existing, err := s.regRepo.GetByEnrollmentNumber(ctx, enrollmentNumber)
	switch {
	case errors.Is(err, apperrors.ErrRegistrationNotFound):
		registration.Status = models.StatusPartial
		if err := s.regRepo.Create(ctx, registration); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		registration.ID = existing.ID
		registration.Status = existing.Status
		if err := s.regRepo.UpdateDetails(ctx, registration); err != nil {
			return nil, err
		}
	}

	s.logger.Info().Str("enrollmentNumber", enrollmentNumber).Msg("Registration details saved")
	return registration, nil
}

// SubmitCourses records one semester's elective pair. The seat increments,
// the status transition to Completed and the course row all commit in a
// single transaction; any failure rolls the whole selection back.
func (s *registrationService) SubmitCourses(ctx context.Context, enrollmentNumber string, req *dto.UserCoursesRequest) error {
	course := &models.RegisteredCourse{
		UserEnrollmentNumber: enrollmentNumber,
		Semester:             req.Semester,
		VAC:                  req.VAC,
		VACPaperCode:         req.VACPaperCode,
		VOC:                  req.VOC,
		VOCPaperCode:         req.VOCPaperCode,
	}

	if err := s.courseRepo.RegisterCourseSelection(ctx, course); err != nil {
		s.logger.Error().Err(err).Str("enrollmentNumber", enrollmentNumber).Msg("Course registration failed")
		return fmt.Errorf("%w: %v", apperrors.ErrRegistrationFailed, err)
	}

	s.logger.Info().
		Str("enrollmentNumber", enrollmentNumber).
		Int("semester", req.Semester).
		Msg("Courses registration completed")
	return nil
}

// CheckStatus returns the current registration status.
func (s *registrationService) CheckStatus(ctx context.Context, enrollmentNumber string) (models.RegistrationStatus, error) {
	registration, err := s.regRepo.GetByEnrollmentNumber(ctx, enrollmentNumber)
	if err != nil {
		return "", err
	}
	return registration.Status, nil
}

// GetRegistrationData returns the registration row alone.
func (s *registrationService) GetRegistrationData(ctx context.Context, enrollmentNumber string) (*models.Registration, error) {
	return s.regRepo.GetByEnrollmentNumber(ctx, enrollmentNumber)
}

// GetFullRegistrationData flattens the registration, the user's phone number
// and up to two semesters of registered courses into one response. A missing
// second semester renders as zero/empty fields, not an error.
func (s *registrationService) GetFullRegistrationData(ctx context.Context, enrollmentNumber string) (*dto.FullRegistrationResponse, error) {
	registration, err := s.regRepo.GetByEnrollmentNumber(ctx, enrollmentNumber)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEnrollmentNumber(ctx, enrollmentNumber)
	if err != nil {
		return nil, err
	}

	courses, err := s.regRepo.ListRegisteredCourses(ctx, enrollmentNumber)
	if err != nil {
		return nil, err
	}

	resp := &dto.FullRegistrationResponse{
		Name:                   registration.Name,
		ID:                     registration.ID,
		UserEnrollmentNumber:   registration.UserEnrollmentNumber,
		MobileNo:               user.PhoneNumber,
		Gender:                 registration.Gender,
		ProgrammeName:          registration.ProgrammeName,
		MinorAllottedSubject:   registration.MinorAllottedSubject,
		ABCID:                  registration.ABCID,
		RegistrationStatus:     string(registration.Status),
		FacultyNumber:          registration.FacultyNumber,
		MajorAllottedSubject:   registration.MajorAllottedSubject,
		GenericAllottedSubject: registration.GenericAllottedSubject,
	}

	if len(courses) > 0 {
		first := courses[0]
		resp.SemesterI = first.Semester
		resp.VACI = first.VAC
		resp.VACPaperCodeI = first.VACPaperCode
		resp.VOCI = first.VOC
		resp.VOCPaperCodeI = first.VOCPaperCode
	}

	if len(courses) > 1 {
		second := courses[1]
		resp.SemesterII = second.Semester
		resp.VACII = second.VAC
		resp.VACPaperCodeII = second.VACPaperCode
		resp.VOCII = second.VOC
		resp.VOCPaperCodeII = second.VOCPaperCode
	}

	return resp, nil
}
