package timetable

import (
	"context"

	lessonplanRepo "courseware/database/repository/lessonplan"
	ai "courseware/services/intelligence"

	"courseware/models"
)

// Service generates and retrieves lesson-plan timetables.
type Service interface {
	Generate(ctx context.Context, course models.CourseContext) (*models.LessonPlan, error)
	GetLessonPlan(ctx context.Context, id string) (*models.LessonPlan, error)
	GetLatestForCourse(ctx context.Context, courseID string) (*models.LessonPlan, error)
	ListLessonPlans(ctx context.Context) ([]models.LessonPlan, error)
}

// DefaultService is the production implementation. Repo, Cache and Validator
// are optional collaborators: generation itself is a pure computation and
// works with all three nil.
type DefaultService struct {
	Repo      lessonplanRepo.LessonPlanRepository
	Cache     *ai.RedisPlanStore
	Validator ai.PlanValidator
}
