package lessonplanRepo

import (
	"context"

	"courseware/database"
	"courseware/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type LessonPlanRepository interface {
	Create(ctx context.Context, plan models.LessonPlan) (string, error)
	GetByID(ctx context.Context, id string) (*models.LessonPlan, error)
	GetByCourseID(ctx context.Context, courseID string) ([]models.LessonPlan, error)
	List(ctx context.Context) ([]models.LessonPlan, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoLessonPlanRepo struct {
	coll *mongo.Collection
}

// NewMongoLessonPlanRepo returns a new LessonPlanRepository instance using MongoDB.
func NewMongoLessonPlanRepo() LessonPlanRepository {
	db := database.MongoClient.Database("courseware")
	return &mongoLessonPlanRepo{
		coll: db.Collection("lesson_plans"),
	}
}
