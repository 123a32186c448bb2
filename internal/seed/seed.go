// Package seed loads the elective catalogs on startup.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/arjun/regportal/internal/app/models"
	appRepos "github.com/arjun/regportal/internal/app/repositories"
)

// CreateDefaultData seeds the VAC and VOC catalogs. Seeding is idempotent:
// rows that already exist are left untouched, registered seat counts included.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating elective catalogs (VAC/VOC)...")
	var finalErr error

	vacCourses := []appModels.Course{
		{Semester: 1, CourseCode: "VAC101", CourseName: "Yoga and Wellness", DepartmentName: "Physical Education", TotalSeats: 60},
		{Semester: 1, CourseCode: "VAC102", CourseName: "Digital Empowerment", DepartmentName: "Computer Science", TotalSeats: 60},
		{Semester: 1, CourseCode: "VAC103", CourseName: "Environmental Awareness", DepartmentName: "Environmental Science", TotalSeats: 60},
		{Semester: 2, CourseCode: "VAC201", CourseName: "Ethics in Public Life", DepartmentName: "Philosophy", TotalSeats: 60},
		{Semester: 2, CourseCode: "VAC202", CourseName: "Constitutional Values", DepartmentName: "Political Science", TotalSeats: 60},
		{Semester: 2, CourseCode: "VAC203", CourseName: "Fitness and Nutrition", DepartmentName: "Physical Education", TotalSeats: 60},
	}
	for i := range vacCourses {
		if err := courseRepo.Create(ctx, appModels.CourseTypeVAC, &vacCourses[i]); err != nil {
			lgr.Error().Err(err).Str("courseCode", vacCourses[i].CourseCode).Msg("Error seeding VAC course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	vocCourses := []appModels.Course{
		{Semester: 1, CourseCode: "VOC101", CourseName: "Web Development", DepartmentName: "Computer Science", TotalSeats: 40},
		{Semester: 1, CourseCode: "VOC102", CourseName: "Office Automation", DepartmentName: "Commerce", TotalSeats: 40},
		{Semester: 1, CourseCode: "VOC103", CourseName: "Photography Basics", DepartmentName: "Fine Arts", TotalSeats: 40},
		{Semester: 2, CourseCode: "VOC201", CourseName: "Data Analytics", DepartmentName: "Statistics", TotalSeats: 40},
		{Semester: 2, CourseCode: "VOC202", CourseName: "Digital Marketing", DepartmentName: "Commerce", TotalSeats: 40},
		{Semester: 2, CourseCode: "VOC203", CourseName: "Mobile App Development", DepartmentName: "Computer Science", TotalSeats: 40},
	}
	for i := range vocCourses {
		if err := courseRepo.Create(ctx, appModels.CourseTypeVOC, &vocCourses[i]); err != nil {
			lgr.Error().Err(err).Str("courseCode", vocCourses[i].CourseCode).Msg("Error seeding VOC course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Elective catalogs ready.")
	}
	return finalErr
}
