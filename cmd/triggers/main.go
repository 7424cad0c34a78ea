package main

import (
	"context"
	"log"
	"time"

	"github.com/gimnasioapp/gym-api/internal/cache"
	"github.com/gimnasioapp/gym-api/internal/config"
	dbpkg "github.com/gimnasioapp/gym-api/internal/db"
	"github.com/gimnasioapp/gym-api/internal/delivery"
	infraRepo "github.com/gimnasioapp/gym-api/internal/infra/repository"
	ucNotification "github.com/gimnasioapp/gym-api/internal/usecase/notification"
)

// Evaluates every active notification template against the current data
// and emits the matching notifications. Meant to run from cron.
func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	repo := infraRepo.NewNotificationGormRepository(db)
	unreadCache := cache.New(cfg.RedisAddr)
	recorder := delivery.NewRecorder(db)

	bulkCreate := ucNotification.NewBulkCreate(repo, unreadCache, recorder)
	evaluator := ucNotification.NewEvaluator(repo, bulkCreate)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	created, err := evaluator.Execute(ctx, time.Now())
	if err != nil {
		recorder.Close()
		log.Fatalf("trigger evaluation failed: %v", err)
	}

	// Flush pending delivery logs before the process exits.
	recorder.Close()

	log.Printf("trigger evaluation done: %d notifications created", created)
}
