package lessonplanRepo

import (
	"context"
	"errors"
	"time"

	"courseware/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a generated lesson plan and returns its ID.
func (r *mongoLessonPlanRepo) Create(ctx context.Context, plan models.LessonPlan) (string, error) {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, plan)
	if err != nil {
		return "", err
	}
	return plan.ID, nil
}

// GetByID returns a lesson plan by its ID.
func (r *mongoLessonPlanRepo) GetByID(ctx context.Context, id string) (*models.LessonPlan, error) {
	var plan models.LessonPlan
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&plan)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByCourseID fetches all plans generated for a course, newest first.
func (r *mongoLessonPlanRepo) GetByCourseID(ctx context.Context, courseID string) ([]models.LessonPlan, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"courseId": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.LessonPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// List returns every stored lesson plan, newest first.
func (r *mongoLessonPlanRepo) List(ctx context.Context) ([]models.LessonPlan, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.LessonPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// DeleteByID removes a lesson plan by ID.
func (r *mongoLessonPlanRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("lesson plan not found")
	}
	return nil
}
