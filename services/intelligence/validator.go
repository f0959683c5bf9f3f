// File: services/intelligence/validator.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"courseware/models"
)

// PlanValidator is a post-hoc check on an already-generated lesson plan. The
// deterministic scheduler is always the source of truth; a validator may flag
// a plan but never changes it.
type PlanValidator interface {
	ValidateLessonPlan(ctx context.Context, course models.CourseContext, plan *models.LessonPlan) error
}

// GeminiPlanValidator asks Gemini to re-check a rendered plan against the
// institutional timetable rules. Used as a secondary safety net behind the
// deterministic invariant checks.
type GeminiPlanValidator struct {
	client *GeminiClient
}

func NewGeminiPlanValidator(client *GeminiClient) *GeminiPlanValidator {
	return &GeminiPlanValidator{client: client}
}

const validatorRules = `You are auditing a WSQ lesson plan timetable. Daily window is 0930-1830hrs.
Check every day against these rules:
- Day 1 starts 0930-0945 "Digital Attendance and Introduction"; other days start 0930-0940 "Digital Attendance (AM)"
- Morning Break 1050-1100, Lunch Break 1200-1245, "Digital Attendance (PM)" 1330-1340, Afternoon Break 1500-1510
- Non-last days end 1810-1830 "Recap All Contents and Close"; the last day ends 1810-1830 "Course Feedback and TRAQOM Survey"
- Sessions are contiguous with no gaps or overlaps and cover 0930-1830 exactly
- No topic session is shorter than 15 minutes
- The last day holds "Digital Attendance (Assessment)" plus one session per assessment method immediately before the closing block
Respond with JSON only: {"valid": true|false, "violations": ["..."]}`

type validatorVerdict struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}

func (v *GeminiPlanValidator) ValidateLessonPlan(ctx context.Context, course models.CourseContext, plan *models.LessonPlan) error {
	planJSON, err := json.Marshal(map[string]any{"lesson_plan": plan.Days})
	if err != nil {
		return fmt.Errorf("marshal plan for validation: %w", err)
	}

	prompt := fmt.Sprintf("%s\n\nCourse: %s\nTimetable to audit:\n%s", validatorRules, course.CourseTitle, planJSON)
	raw, err := v.client.GenerateContent(ctx, prompt)
	if err != nil {
		return fmt.Errorf("validator call: %w", err)
	}

	var verdict validatorVerdict
	if err := json.Unmarshal([]byte(extractJSON(raw)), &verdict); err != nil {
		return fmt.Errorf("validator returned unparsable verdict: %w", err)
	}
	if !verdict.Valid {
		return fmt.Errorf("validator flagged plan %s: %s", plan.ID, strings.Join(verdict.Violations, "; "))
	}
	return nil
}

// extractJSON strips markdown fences and surrounding prose, keeping the text
// between the first and last brace.
func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return raw
	}
	return raw[start : end+1]
}
