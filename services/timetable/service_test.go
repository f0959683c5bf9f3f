package timetable

import (
	"context"
	"errors"
	"testing"

	"courseware/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlanRepo struct {
	created []models.LessonPlan
}

func (f *fakePlanRepo) Create(_ context.Context, plan models.LessonPlan) (string, error) {
	f.created = append(f.created, plan)
	return plan.ID, nil
}

func (f *fakePlanRepo) GetByID(_ context.Context, id string) (*models.LessonPlan, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			return &f.created[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakePlanRepo) GetByCourseID(_ context.Context, courseID string) ([]models.LessonPlan, error) {
	var out []models.LessonPlan
	for _, p := range f.created {
		if p.CourseID == courseID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) List(_ context.Context) ([]models.LessonPlan, error) {
	return f.created, nil
}

func (f *fakePlanRepo) DeleteByID(_ context.Context, _ string) error { return nil }

func singleDayCourse() models.CourseContext {
	return models.CourseContext{
		ID:                 "course-1",
		CourseTitle:        "Workplace Safety Essentials",
		TotalTrainingHours: "7 hrs",
		LearningUnits: []models.LearningUnit{
			{
				Title:                "LU1: Safety Fundamentals",
				InstructionalMethods: []string{"Lecture", "Group Discussion"},
				Topics: []models.CourseTopic{
					{Title: "Hazard Identification", BulletPoints: []string{"common hazards"}},
					{Title: "Incident Reporting"},
				},
			},
		},
	}
}

func TestGeneratePersistsAndReturnsPlan(t *testing.T) {
	repo := &fakePlanRepo{}
	svc := &DefaultService{Repo: repo}

	plan, err := svc.Generate(context.Background(), singleDayCourse())
	require.NoError(t, err)
	require.NotNil(t, plan)

	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, "course-1", plan.CourseID)
	assert.Equal(t, "Workplace Safety Essentials", plan.CourseTitle)
	require.Len(t, plan.Days, 1)
	assert.Equal(t, "Day 1", plan.Days[0].Day)

	require.Len(t, repo.created, 1)
	assert.Equal(t, plan.ID, repo.created[0].ID)

	got, err := svc.GetLessonPlan(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, got.ID)
}

func TestGenerateSchedulerErrorsPassThrough(t *testing.T) {
	c := singleDayCourse()
	c.TotalTrainingHours = "10 hrs"
	c.LearningUnits[0].Topics = c.LearningUnits[0].Topics[:1]
	c.AssessmentDetails = []models.AssessmentMethodDetail{
		{Method: "Written Assessment", Abbreviation: "WA", TotalDeliveryHours: "1 hr"},
	}

	repo := &fakePlanRepo{}
	svc := &DefaultService{Repo: repo}

	_, err := svc.Generate(context.Background(), c)
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Empty(t, repo.created, "a failed build must not persist anything")
}

func TestGetLatestForCourse(t *testing.T) {
	repo := &fakePlanRepo{}
	svc := &DefaultService{Repo: repo}

	plan, err := svc.Generate(context.Background(), singleDayCourse())
	require.NoError(t, err)

	got, err := svc.GetLatestForCourse(context.Background(), "course-1")
	require.NoError(t, err)
	assert.Equal(t, plan.ID, got.ID)

	_, err = svc.GetLatestForCourse(context.Background(), "course-unknown")
	assert.Error(t, err)
}

func TestReadsRequirePersistence(t *testing.T) {
	svc := &DefaultService{}
	_, err := svc.GetLessonPlan(context.Background(), "x")
	assert.Error(t, err)
	_, err = svc.ListLessonPlans(context.Background())
	assert.Error(t, err)
}
