package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeGenerateLessonPlan = "lessonplan:generate"

// GenerateLessonPlanPayload identifies the stored course context a worker
// should schedule.
type GenerateLessonPlanPayload struct {
	CourseID string `json:"courseId"`
}

func NewGenerateLessonPlanTask(courseID string) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(GenerateLessonPlanPayload{CourseID: courseID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeGenerateLessonPlan, b)
	opts := []asynq.Option{
		asynq.MaxRetry(3),
		asynq.Timeout(2 * time.Minute),
	}

	return task, opts, nil
}
