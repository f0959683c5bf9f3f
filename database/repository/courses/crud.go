package coursesRepo

import (
	"context"
	"errors"
	"time"

	"courseware/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a course context and returns its ID.
func (r *mongoCourseRepo) Create(ctx context.Context, course models.CourseContext) (string, error) {
	if course.ID == "" {
		course.ID = uuid.New().String()
	}
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, course)
	if err != nil {
		return "", err
	}
	return course.ID, nil
}

// GetByID returns a course context by its ID.
func (r *mongoCourseRepo) GetByID(ctx context.Context, id string) (*models.CourseContext, error) {
	var course models.CourseContext
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&course)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// List returns every stored course context.
func (r *mongoCourseRepo) List(ctx context.Context) ([]models.CourseContext, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.CourseContext
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// DeleteByID removes a course context by ID.
func (r *mongoCourseRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("course not found")
	}
	return nil
}
