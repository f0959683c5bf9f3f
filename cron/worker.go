package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"courseware/config"
	coursesRepo "courseware/database/repository/courses"
	"courseware/services/tasks"
	"courseware/services/timetable"

	"github.com/hibiken/asynq"
)

// InitLessonPlanWorker runs the async generation worker in the background.
// Generation itself is fast; the queue exists so chat-driven callers get an
// immediate acknowledgement and retries on transient Mongo/Redis failures.
func InitLessonPlanWorker(courseRepo coursesRepo.CourseRepository, svc timetable.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobsDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeGenerateLessonPlan, handleGenerateTask(courseRepo, svc))

	// Start async worker with retry logic.
	go func() {
		log.Println("[LessonPlanWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[LessonPlanWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[LessonPlanWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleGenerateTask(courseRepo coursesRepo.CourseRepository, svc timetable.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.GenerateLessonPlanPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[LessonPlanWorker] invalid payload: %v", err)
			return err
		}

		course, err := courseRepo.GetByID(ctx, p.CourseID)
		if err != nil {
			log.Printf("[LessonPlanWorker] failed to load course %s: %v", p.CourseID, err)
			return err
		}

		plan, err := svc.Generate(ctx, *course)
		if err != nil {
			var confErr *timetable.ConfigurationError
			var capErr *timetable.CapacityError
			// Bad input never gets better on retry; drop the task.
			if errors.As(err, &confErr) || errors.As(err, &capErr) {
				log.Printf("[LessonPlanWorker] course %s is unschedulable: %v", p.CourseID, err)
				return nil
			}
			return err
		}

		log.Printf("[LessonPlanWorker] generated lesson plan %s for course %s", plan.ID, p.CourseID)
		return nil
	}
}
