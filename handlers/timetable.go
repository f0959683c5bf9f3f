package handlers

import (
	"errors"
	"net/http"

	coursesRepo "courseware/database/repository/courses"
	"courseware/models"
	courseSvc "courseware/services/course"
	"courseware/services/tasks"
	"courseware/services/timetable"
	"courseware/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TimetableHandler serves lesson-plan generation and retrieval.
type TimetableHandler struct {
	Svc        timetable.Service
	CourseRepo coursesRepo.CourseRepository
	Queue      *asynq.Client
}

func NewTimetableHandler(svc timetable.Service, courseRepo coursesRepo.CourseRepository, queue *asynq.Client) *TimetableHandler {
	return &TimetableHandler{Svc: svc, CourseRepo: courseRepo, Queue: queue}
}

// GenerateHandler runs the scheduler synchronously on a posted course context
// and returns the rendered lesson plan.
func (h *TimetableHandler) GenerateHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var course models.CourseContext
	if err := c.ShouldBindJSON(&course); err != nil {
		logger.Error("Invalid lesson plan request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid course context", err.Error())
		return
	}
	if err := courseSvc.Validate(course); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid course context", err.Error())
		return
	}

	plan, err := h.Svc.Generate(c.Request.Context(), course)
	if err != nil {
		respondSchedulerError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// AsyncGenerateHandler stores the course context and enqueues generation,
// returning the course ID the caller can poll plans for.
func (h *TimetableHandler) AsyncGenerateHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var course models.CourseContext
	if err := c.ShouldBindJSON(&course); err != nil {
		logger.Error("Invalid async lesson plan request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid course context", err.Error())
		return
	}
	if err := courseSvc.Validate(course); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid course context", err.Error())
		return
	}

	courseID, err := h.CourseRepo.Create(c.Request.Context(), course)
	if err != nil {
		logger.Error("Failed to store course context", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store course context", err.Error())
		return
	}

	task, opts, err := tasks.NewGenerateLessonPlanTask(courseID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build generation task", err.Error())
		return
	}
	if _, err := h.Queue.EnqueueContext(c.Request.Context(), task, opts...); err != nil {
		logger.Error("Failed to enqueue generation task", zap.String("courseId", courseID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to enqueue generation", err.Error())
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"courseId": courseID, "status": "queued"})
}

// GetLessonPlanHandler fetches a persisted plan by ID.
func (h *TimetableHandler) GetLessonPlanHandler(c *gin.Context) {
	plan, err := h.Svc.GetLessonPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Lesson plan not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, plan)
}

// GetLatestForCourseHandler fetches the newest plan for a course, the poll
// target after an async generation request.
func (h *TimetableHandler) GetLatestForCourseHandler(c *gin.Context) {
	plan, err := h.Svc.GetLatestForCourse(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Lesson plan not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ListLessonPlansHandler returns every persisted plan (admin).
func (h *TimetableHandler) ListLessonPlansHandler(c *gin.Context) {
	plans, err := h.Svc.ListLessonPlans(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list lesson plans", err.Error())
		return
	}
	c.JSON(http.StatusOK, plans)
}

// respondSchedulerError maps the scheduler's error taxonomy onto HTTP:
// unusable input is the caller's fault, an overfull course is unprocessable
// and carries the shortfall so the caller can add a day or cut topics.
func respondSchedulerError(c *gin.Context, err error) {
	var confErr *timetable.ConfigurationError
	if errors.As(err, &confErr) {
		utils.JSONError(c, http.StatusBadRequest, "Course context cannot be scheduled", confErr.Error())
		return
	}
	var capErr *timetable.CapacityError
	if errors.As(err, &capErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":            "Course content does not fit the course duration",
			"shortfallMinutes": capErr.ShortfallMinutes,
		})
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Failed to generate lesson plan", err.Error())
}
