package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/arjun/regportal/internal/app/models/dto"
	"github.com/arjun/regportal/internal/app/services"
	"github.com/arjun/regportal/internal/middleware"
)

// CoursesController serves the elective catalogs
type CoursesController struct {
	courseService services.CourseService
	logger        zerolog.Logger
}

// NewCoursesController creates a new CoursesController
func NewCoursesController(courseService services.CourseService, logger zerolog.Logger) *CoursesController {
	return &CoursesController{
		courseService: courseService,
		logger:        logger,
	}
}

// ListCourses returns the open-seat catalog rows for a course type and semester
func (c *CoursesController) ListCourses(ctx *gin.Context) {
	if _, ok := sessionEnrollment(ctx); !ok {
		return
	}

	var req dto.CoursesListRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid courses-list request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("courses_type and semester are required"))
		return
	}

	items, err := c.courseService.ListAvailable(ctx.Request.Context(), req.CoursesType, req.Semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}
