package timetable

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courseware/models"
	"courseware/services/course"
	"courseware/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Generate flattens the course context, runs the barrier algorithm, renders
// the wire form and fans the result out to the persistence and cache
// collaborators. The Gemini validator, when configured, runs after the fact
// and can only flag — never alter — the deterministic result.
func (s *DefaultService) Generate(ctx context.Context, c models.CourseContext) (*models.LessonPlan, error) {
	logger := utils.GetLogger()

	in := Input{
		Hours:       course.HoursText(c),
		Topics:      course.FlattenTopics(c),
		Assessments: course.Assessments(c),
	}

	schedule, err := Build(in)
	if err != nil {
		return nil, err
	}

	plan := &models.LessonPlan{
		ID:          uuid.New().String(),
		CourseID:    c.ID,
		CourseTitle: c.CourseTitle,
		Days:        Render(schedule),
		CreatedAt:   time.Now(),
	}

	if s.Repo != nil {
		if _, err := s.Repo.Create(ctx, *plan); err != nil {
			return nil, fmt.Errorf("persist lesson plan: %w", err)
		}
	}
	if s.Cache != nil && c.ID != "" {
		if err := s.Cache.Set(ctx, c.ID, plan); err != nil {
			logger.Warn("failed to cache lesson plan", zap.String("courseId", c.ID), zap.Error(err))
		}
	}
	if s.Validator != nil {
		go s.validateInBackground(c, plan)
	}

	logger.Info("generated lesson plan",
		zap.String("planId", plan.ID),
		zap.String("courseTitle", c.CourseTitle),
		zap.Int("days", len(plan.Days)))
	return plan, nil
}

// GetLessonPlan fetches a persisted plan by ID.
func (s *DefaultService) GetLessonPlan(ctx context.Context, id string) (*models.LessonPlan, error) {
	if s.Repo == nil {
		return nil, errors.New("lesson plan persistence is not configured")
	}
	return s.Repo.GetByID(ctx, id)
}

// GetLatestForCourse returns the most recent plan for a course, serving from
// the cache when possible and backfilling it on a persistence hit.
func (s *DefaultService) GetLatestForCourse(ctx context.Context, courseID string) (*models.LessonPlan, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		plan, err := s.Cache.Get(ctx, courseID)
		if err != nil {
			logger.Warn("lesson plan cache lookup failed", zap.String("courseId", courseID), zap.Error(err))
		} else if plan != nil {
			return plan, nil
		}
	}

	if s.Repo == nil {
		return nil, errors.New("lesson plan persistence is not configured")
	}
	plans, err := s.Repo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, fmt.Errorf("no lesson plan generated for course %s", courseID)
	}

	latest := &plans[0]
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, courseID, latest); err != nil {
			logger.Warn("failed to backfill lesson plan cache", zap.String("courseId", courseID), zap.Error(err))
		}
	}
	return latest, nil
}

// ListLessonPlans returns every persisted plan, newest first.
func (s *DefaultService) ListLessonPlans(ctx context.Context) ([]models.LessonPlan, error) {
	if s.Repo == nil {
		return nil, errors.New("lesson plan persistence is not configured")
	}
	return s.Repo.List(ctx)
}

func (s *DefaultService) validateInBackground(c models.CourseContext, plan *models.LessonPlan) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := s.Validator.ValidateLessonPlan(ctx, c, plan); err != nil {
		logger.Warn("lesson plan validator reported a problem", zap.String("planId", plan.ID), zap.Error(err))
	}
}
