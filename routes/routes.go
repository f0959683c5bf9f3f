package routes

import (
	"net/http"
	"time"

	"courseware/handlers"
	"courseware/middleware"
	"courseware/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterLessonPlanRoutes registers the scheduling endpoints.
func RegisterLessonPlanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/lesson-plan")
	{
		api.POST("/generate", hb.Timetable.GenerateHandler)
		api.POST("/generate/async", hb.Timetable.AsyncGenerateHandler)
		api.GET("/course/:courseId", hb.Timetable.GetLatestForCourseHandler)
		api.GET("/:id", hb.Timetable.GetLessonPlanHandler)
		api.GET("", hb.Timetable.ListLessonPlansHandler)
	}
}

// RegisterCourseRoutes registers course-context storage endpoints.
func RegisterCourseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/courses")
	{
		api.POST("", hb.Course.CreateCourseHandler)
		api.GET("/:id", hb.Course.GetCourseHandler)
		api.GET("/:id/plans", hb.Course.GetCoursePlansHandler)
		api.GET("/:id/methods", hb.Course.GetCourseMethodsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/login", hb.Admin.AdminLoginHandler)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/courses", hb.Course.ListCoursesHandler)
		adminGroup.DELETE("/lesson-plan/:id", hb.Admin.DeleteLessonPlanHandler)
		adminGroup.DELETE("/courses/:id", hb.Course.DeleteCourseHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterLessonPlanRoutes(r, hb)
	RegisterCourseRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterAdminRoutes(r, hb)
}
