package handlers

import (
	"net/http"

	coursesRepo "courseware/database/repository/courses"
	lessonplanRepo "courseware/database/repository/lessonplan"
	"courseware/models"
	courseSvc "courseware/services/course"
	"courseware/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CourseHandler serves course-context storage and inspection.
type CourseHandler struct {
	Repo     coursesRepo.CourseRepository
	PlanRepo lessonplanRepo.LessonPlanRepository
}

func NewCourseHandler(repo coursesRepo.CourseRepository, planRepo lessonplanRepo.LessonPlanRepository) *CourseHandler {
	return &CourseHandler{Repo: repo, PlanRepo: planRepo}
}

// CreateCourseHandler stores a posted course context.
func (h *CourseHandler) CreateCourseHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var course models.CourseContext
	if err := c.ShouldBindJSON(&course); err != nil {
		logger.Error("Invalid course context", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid course context", err.Error())
		return
	}
	if err := courseSvc.Validate(course); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid course context", err.Error())
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), course)
	if err != nil {
		logger.Error("Failed to store course context", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store course context", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetCourseHandler returns a stored course context.
func (h *CourseHandler) GetCourseHandler(c *gin.Context) {
	course, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Course not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, course)
}

// GetCoursePlansHandler lists the plans generated for a course, newest first.
func (h *CourseHandler) GetCoursePlansHandler(c *gin.Context) {
	plans, err := h.PlanRepo.GetByCourseID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list lesson plans", err.Error())
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetCourseMethodsHandler lists the unique instructional-method combinations
// across a course's learning units, as they appear in the facilitator guide.
func (h *CourseHandler) GetCourseMethodsHandler(c *gin.Context) {
	course, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Course not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"instructionalMethods": courseSvc.ExtractUniqueInstructionalMethods(*course),
	})
}

// ListCoursesHandler returns every stored course context (admin).
func (h *CourseHandler) ListCoursesHandler(c *gin.Context) {
	courses, err := h.Repo.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list courses", err.Error())
		return
	}
	c.JSON(http.StatusOK, courses)
}

// DeleteCourseHandler removes a stored course context (admin).
func (h *CourseHandler) DeleteCourseHandler(c *gin.Context) {
	if err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Course not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
