package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/arjun/regportal/internal/app/models"
	"github.com/arjun/regportal/internal/app/models/dto"
	"github.com/arjun/regportal/internal/pkg/apperrors"
)

func newRegistrationFixture(t *testing.T) (*fakeRegistrationRepository, *fakeUserRepository, *fakeCourseRepository, RegistrationService) {
	t.Helper()
	regRepo := newFakeRegistrationRepository()
	userRepo := newFakeUserRepository()
	courseRepo := newFakeCourseRepository(regRepo)
	svc := NewRegistrationService(regRepo, userRepo, courseRepo, zerolog.Nop())
	return regRepo, userRepo, courseRepo, svc
}

func detailsRequest() *dto.UserDetailsRequest {
	return &dto.UserDetailsRequest{
		Name:                   "Asha Verma",
		ABCID:                  "123456789012",
		FacultyNumber:          "23BSC042",
		Gender:                 "Female",
		ProgrammeName:          "B.Sc. (Hons) Physics",
		MajorAllottedSubject:   "Physics",
		MinorAllottedSubject:   "Mathematics",
		GenericAllottedSubject: "Chemistry",
	}
}

func TestSubmitDetails(t *testing.T) {
	t.Parallel()

	t.Run("first submission creates a partial registration", func(t *testing.T) {
		t.Parallel()
		regRepo, _, _, svc := newRegistrationFixture(t)

		reg, err := svc.SubmitDetails(context.Background(), "GL1234", detailsRequest())
		require.NoError(t, err)
		require.Equal(t, models.StatusPartial, reg.Status)
		require.NotZero(t, reg.ID)

		stored, err := regRepo.GetByEnrollmentNumber(context.Background(), "GL1234")
		require.NoError(t, err)
		require.Equal(t, "Asha Verma", stored.Name)
		require.Equal(t, models.StatusPartial, stored.Status)
	})

	t.Run("resubmission overwrites details without touching status", func(t *testing.T) {
		t.Parallel()
		regRepo, _, _, svc := newRegistrationFixture(t)

		first, err := svc.SubmitDetails(context.Background(), "GL1234", detailsRequest())
		require.NoError(t, err)

		regRepo.mu.Lock()
		regRepo.registrations["GL1234"].Status = models.StatusCompleted
		regRepo.mu.Unlock()

		updated := detailsRequest()
		updated.Name = "Asha V. Verma"
		second, err := svc.SubmitDetails(context.Background(), "GL1234", updated)
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)

		stored, err := regRepo.GetByEnrollmentNumber(context.Background(), "GL1234")
		require.NoError(t, err)
		require.Equal(t, "Asha V. Verma", stored.Name)
		require.Equal(t, models.StatusCompleted, stored.Status)
	})

	t.Run("rejects a faculty number owned by another user", func(t *testing.T) {
		t.Parallel()
		_, _, _, svc := newRegistrationFixture(t)

		_, err := svc.SubmitDetails(context.Background(), "GL1234", detailsRequest())
		require.NoError(t, err)

		_, err = svc.SubmitDetails(context.Background(), "GL5678", detailsRequest())
		require.ErrorIs(t, err, apperrors.ErrFacultyNumberExists)
	})
}

func TestSubmitCourses(t *testing.T) {
	t.Parallel()

	coursesRequest := func() *dto.UserCoursesRequest {
		return &dto.UserCoursesRequest{
			Semester:     1,
			VAC:          "Yoga and Wellness",
			VACPaperCode: "VAC101",
			VOC:          "Web Development",
			VOCPaperCode: "VOC101",
		}
	}

	t.Run("records the selection and completes the registration", func(t *testing.T) {
		t.Parallel()
		regRepo, _, courseRepo, svc := newRegistrationFixture(t)

		_, err := svc.SubmitDetails(context.Background(), "GL1234", detailsRequest())
		require.NoError(t, err)
		require.NoError(t, courseRepo.Create(context.Background(), models.CourseTypeVAC, &models.Course{
			Semester: 1, CourseCode: "VAC101", CourseName: "Yoga and Wellness", TotalSeats: 50,
		}))
		require.NoError(t, courseRepo.Create(context.Background(), models.CourseTypeVOC, &models.Course{
			Semester: 1, CourseCode: "VOC101", CourseName: "Web Development", TotalSeats: 50,
		}))

		require.NoError(t, svc.SubmitCourses(context.Background(), "GL1234", coursesRequest()))

		status, err := svc.CheckStatus(context.Background(), "GL1234")
		require.NoError(t, err)
		require.Equal(t, models.StatusCompleted, status)

		courses, err := regRepo.ListRegisteredCourses(context.Background(), "GL1234")
		require.NoError(t, err)
		require.Len(t, courses, 1)
		require.Equal(t, "VAC101", courses[0].VACPaperCode)

		vac, err := courseRepo.ListAvailable(context.Background(), models.CourseTypeVAC, 1)
		require.NoError(t, err)
		require.Equal(t, 1, vac[0].RegisteredSeats)
	})

	t.Run("rejects paper codes missing from the catalogs", func(t *testing.T) {
		t.Parallel()
		regRepo, _, courseRepo, svc := newRegistrationFixture(t)

		_, err := svc.SubmitDetails(context.Background(), "GL1234", detailsRequest())
		require.NoError(t, err)
		require.NoError(t, courseRepo.Create(context.Background(), models.CourseTypeVAC, &models.Course{
			Semester: 1, CourseCode: "VAC101", CourseName: "Yoga and Wellness", TotalSeats: 50,
		}))

		req := coursesRequest()
		req.VOCPaperCode = "VOC999"
		err = svc.SubmitCourses(context.Background(), "GL1234", req)
		require.ErrorIs(t, err, apperrors.ErrRegistrationFailed)

		// The failed selection leaves no trace: status unchanged, no course
		// row, no seat claimed.
		status, err := svc.CheckStatus(context.Background(), "GL1234")
		require.NoError(t, err)
		require.Equal(t, models.StatusPartial, status)

		courses, err := regRepo.ListRegisteredCourses(context.Background(), "GL1234")
		require.NoError(t, err)
		require.Empty(t, courses)

		vac, err := courseRepo.ListAvailable(context.Background(), models.CourseTypeVAC, 1)
		require.NoError(t, err)
		require.Zero(t, vac[0].RegisteredSeats)
	})

	t.Run("wraps a failed transaction", func(t *testing.T) {
		t.Parallel()
		_, _, courseRepo, svc := newRegistrationFixture(t)
		courseRepo.registerErr = errors.New("insert failed")

		err := svc.SubmitCourses(context.Background(), "GL1234", coursesRequest())
		require.ErrorIs(t, err, apperrors.ErrRegistrationFailed)
	})
}

func TestCheckStatus(t *testing.T) {
	t.Parallel()

	t.Run("returns not found without a registration", func(t *testing.T) {
		t.Parallel()
		_, _, _, svc := newRegistrationFixture(t)

		_, err := svc.CheckStatus(context.Background(), "GL1234")
		require.ErrorIs(t, err, apperrors.ErrRegistrationNotFound)
	})
}

func TestGetFullRegistrationData(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*fakeRegistrationRepository, RegistrationService) {
		t.Helper()
		regRepo, userRepo, _, svc := newRegistrationFixture(t)
		require.NoError(t, userRepo.Create(context.Background(), &models.User{
			EnrollmentNumber: "GL1234",
			PhoneNumber:      "9876543210",
		}))
		_, err := svc.SubmitDetails(context.Background(), "GL1234", detailsRequest())
		require.NoError(t, err)
		return regRepo, svc
	}

	t.Run("renders an absent second semester as zero values", func(t *testing.T) {
		t.Parallel()
		regRepo, svc := setup(t)
		regRepo.mu.Lock()
		regRepo.courses = append(regRepo.courses, models.RegisteredCourse{
			UserEnrollmentNumber: "GL1234", Semester: 1,
			VAC: "Yoga and Wellness", VACPaperCode: "VAC101",
			VOC: "Web Development", VOCPaperCode: "VOC101",
		})
		regRepo.mu.Unlock()

		full, err := svc.GetFullRegistrationData(context.Background(), "GL1234")
		require.NoError(t, err)
		require.Equal(t, "Asha Verma", full.Name)
		require.Equal(t, "9876543210", full.MobileNo)
		require.Equal(t, 1, full.SemesterI)
		require.Equal(t, "VAC101", full.VACPaperCodeI)
		require.Zero(t, full.SemesterII)
		require.Empty(t, full.VACII)
		require.Empty(t, full.VOCPaperCodeII)
	})

	t.Run("fills both semesters in order", func(t *testing.T) {
		t.Parallel()
		regRepo, svc := setup(t)
		regRepo.mu.Lock()
		regRepo.courses = append(regRepo.courses,
			models.RegisteredCourse{
				UserEnrollmentNumber: "GL1234", Semester: 1,
				VAC: "Yoga and Wellness", VACPaperCode: "VAC101",
				VOC: "Web Development", VOCPaperCode: "VOC101",
			},
			models.RegisteredCourse{
				UserEnrollmentNumber: "GL1234", Semester: 2,
				VAC: "Ethics in Public Life", VACPaperCode: "VAC201",
				VOC: "Data Analytics", VOCPaperCode: "VOC201",
			})
		regRepo.mu.Unlock()

		full, err := svc.GetFullRegistrationData(context.Background(), "GL1234")
		require.NoError(t, err)
		require.Equal(t, 1, full.SemesterI)
		require.Equal(t, 2, full.SemesterII)
		require.Equal(t, "VAC201", full.VACPaperCodeII)
		require.Equal(t, "Data Analytics", full.VOCII)
	})

	t.Run("fails without a registration", func(t *testing.T) {
		t.Parallel()
		_, _, _, svc := newRegistrationFixture(t)

		_, err := svc.GetFullRegistrationData(context.Background(), "GL1234")
		require.ErrorIs(t, err, apperrors.ErrRegistrationNotFound)
	})
}
