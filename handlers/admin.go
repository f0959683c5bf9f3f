package handlers

import (
	"net/http"
	"time"

	"courseware/config"
	lessonplanRepo "courseware/database/repository/lessonplan"
	ai "courseware/services/intelligence"
	"courseware/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AdminHandler guards the administrative surface.
type AdminHandler struct {
	PlanRepo lessonplanRepo.LessonPlanRepository
	Cache    *ai.RedisPlanStore
}

func NewAdminHandler(planRepo lessonplanRepo.LessonPlanRepository, cache *ai.RedisPlanStore) *AdminHandler {
	return &AdminHandler{PlanRepo: planRepo, Cache: cache}
}

// AdminLoginHandler exchanges the admin key for a short-lived JWT.
func (h *AdminHandler) AdminLoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login request", err.Error())
		return
	}

	hash := config.AppConfig.AdminKeyHash
	if hash == "" {
		logger.Warn("Admin login attempted with no ADMIN_KEY_HASH configured")
		utils.JSONError(c, http.StatusForbidden, "Admin access disabled", "no admin key configured")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Key)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid admin key", "key mismatch")
		return
	}

	token, err := utils.GenerateToken("admin", adminTokenTTL)
	if err != nil {
		logger.Error("Failed to sign admin token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(adminTokenTTL.Seconds())})
}

// DeleteLessonPlanHandler removes a stored lesson plan and drops the cached
// copy for its course (admin).
func (h *AdminHandler) DeleteLessonPlanHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	plan, err := h.PlanRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Lesson plan not found", err.Error())
		return
	}
	if err := h.PlanRepo.DeleteByID(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Lesson plan not found", err.Error())
		return
	}
	if h.Cache != nil && plan.CourseID != "" {
		if err := h.Cache.Clear(c.Request.Context(), plan.CourseID); err != nil {
			logger.Warn("Failed to clear cached lesson plan", zap.String("courseId", plan.CourseID), zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
