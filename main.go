package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medremind-backend/config"
	"medremind-backend/models"
	"medremind-backend/routes"
	"medremind-backend/services"

	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if err := config.ConnectDB(); err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	config.DB.AutoMigrate(
		&models.Reminder{},
		&models.DispatchLog{},
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := services.NewReminderStore(config.DB)
	dispatcher := services.NewNotificationDispatcher(config.DB)
	scheduler := services.NewReminderScheduler(dispatcher)
	runner := services.NewSchedulerRunner(store, scheduler)

	go func() {
		if err := runner.Run(ctx); err != nil {
			log.Printf("Scheduler failed to start: %v", err)
		}
	}()

	maintenance := services.StartMaintenanceScheduler(config.DB, scheduler)
	defer maintenance.Stop()

	modelPath := os.Getenv("MODEL_PATH")
	if modelPath == "" {
		modelPath = "disease_model.json"
	}
	classifier, err := services.LoadClassifier(modelPath)
	if err != nil {
		log.Printf("Disease prediction disabled: %v", err)
	}

	reminderService := services.NewReminderService(store, scheduler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(reminderService, scheduler, classifier)
	srv := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		log.Printf("Listening on :%s", port)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Could not start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
