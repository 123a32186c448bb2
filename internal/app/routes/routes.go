package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjun/regportal/internal/app/controllers"
	"github.com/arjun/regportal/internal/app/models/dto"
	"github.com/arjun/regportal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	registrationController *controllers.RegistrationController,
	coursesController *controllers.CoursesController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	// Every route runs under the session middleware so handlers can read and
	// mutate the cookie-backed session bag.
	router.Use(sessionMiddleware.Handler())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok", Message: "Registration portal API"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok", Message: "healthy"})
	})

	auth := router.Group("/auth")
	{
		auth.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok", Message: "Auth router is working"})
		})
		auth.POST("/send-otp", authController.SendOTP)
		auth.POST("/create-user", authController.CreateUser)
		auth.POST("/login-user", authController.LoginUser)
		auth.POST("/logout", authController.Logout)
	}

	register := router.Group("/register")
	{
		register.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok", Message: "Register router is working"})
		})
		register.POST("/user-details", registrationController.SubmitUserDetails)
		register.POST("/user-courses", registrationController.SubmitUserCourses)
		register.GET("/check-registration", registrationController.CheckRegistration)
		register.POST("/registration-data", registrationController.GetRegistrationData)
		register.GET("/complete-registration-data", registrationController.GetCompleteRegistrationData)
	}

	courses := router.Group("/courses")
	{
		courses.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok", Message: "Courses router is working"})
		})
		courses.POST("/courses-list", coursesController.ListCourses)
	}
}
