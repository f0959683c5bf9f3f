package coursesRepo

import (
	"context"

	"courseware/database"
	"courseware/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CourseRepository interface {
	Create(ctx context.Context, course models.CourseContext) (string, error)
	GetByID(ctx context.Context, id string) (*models.CourseContext, error)
	List(ctx context.Context) ([]models.CourseContext, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoCourseRepo struct {
	coll *mongo.Collection
}

// NewMongoCourseRepo returns a new CourseRepository instance using MongoDB.
func NewMongoCourseRepo() CourseRepository {
	db := database.MongoClient.Database("courseware")
	return &mongoCourseRepo{
		coll: db.Collection("course_contexts"),
	}
}
