package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"courseware/models"
	"courseware/services/timetable"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func generateRouter(svc timetable.Service) *gin.Engine {
	r := gin.New()
	h := NewTimetableHandler(svc, nil, nil)
	r.POST("/api/lesson-plan/generate", h.GenerateHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCourse() models.CourseContext {
	return models.CourseContext{
		CourseTitle:        "Workplace Safety Essentials",
		TotalTrainingHours: "7 hrs",
		LearningUnits: []models.LearningUnit{
			{
				Title:                "LU1: Safety Fundamentals",
				InstructionalMethods: []string{"Lecture", "Group Discussion"},
				Topics: []models.CourseTopic{
					{Title: "Hazard Identification"},
					{Title: "Incident Reporting"},
				},
			},
		},
	}
}

func TestGenerateHandlerReturnsPlan(t *testing.T) {
	r := generateRouter(&timetable.DefaultService{})

	w := postJSON(t, r, "/api/lesson-plan/generate", validCourse())
	require.Equal(t, http.StatusOK, w.Code)

	var plan models.LessonPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Equal(t, "Workplace Safety Essentials", plan.CourseTitle)
	require.Len(t, plan.Days, 1)
	assert.Equal(t, "Day 1", plan.Days[0].Day)
	assert.NotEmpty(t, plan.Days[0].Sessions)
}

func TestGenerateHandlerRejectsEmptyContext(t *testing.T) {
	r := generateRouter(&timetable.DefaultService{})

	w := postJSON(t, r, "/api/lesson-plan/generate", models.CourseContext{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateHandlerMapsCapacityOverflow(t *testing.T) {
	r := generateRouter(&timetable.DefaultService{})

	course := validCourse()
	course.TotalTrainingHours = "10 hrs"
	course.LearningUnits[0].Topics = course.LearningUnits[0].Topics[:1]
	course.AssessmentDetails = []models.AssessmentMethodDetail{
		{Method: "Written Assessment", Abbreviation: "WA", TotalDeliveryHours: "1 hr"},
	}

	w := postJSON(t, r, "/api/lesson-plan/generate", course)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		ShortfallMinutes int `json:"shortfallMinutes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 240, body.ShortfallMinutes)
}

func TestGenerateHandlerMapsConfigurationError(t *testing.T) {
	r := generateRouter(&timetable.DefaultService{})

	course := validCourse()
	course.AssessmentDetails = []models.AssessmentMethodDetail{
		{Method: "Written Assessment", Abbreviation: "WA", TotalDeliveryHours: "sometime"},
	}

	w := postJSON(t, r, "/api/lesson-plan/generate", course)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
