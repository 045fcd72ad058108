package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/ayan-dev/lifestack/internal/config"
	"github.com/ayan-dev/lifestack/internal/database"
	"github.com/ayan-dev/lifestack/internal/handlers"
	"github.com/ayan-dev/lifestack/internal/jobs"
	"github.com/ayan-dev/lifestack/internal/repository"
	cron "github.com/ayan-dev/lifestack/internal/scheduler"
	"github.com/ayan-dev/lifestack/internal/services"
	"github.com/ayan-dev/lifestack/pkg/logger"
	"github.com/ayan-dev/lifestack/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	goalRepo := repository.NewGoalRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	stackRepo := repository.NewStackRepository(db)
	insightRepo := repository.NewInsightRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// --- Services ---
	goalService := services.NewGoalService(goalRepo)
	attributionService := services.NewAttributionService(goalService)
	wellnessService := services.NewWellnessService(stackRepo, goalService, cfg.NominalGoalCount)
	activityService := services.NewActivityService(activityRepo)
	trackerService := services.NewTrackerService(goalService, attributionService, wellnessService, workoutRepo, journalRepo, moodRepo, activityService)
	workoutService := services.NewWorkoutService(workoutRepo)
	journalService := services.NewJournalService(journalRepo)
	moodService := services.NewMoodService(moodRepo)
	insightService := services.NewInsightService(insightRepo)

	// Derive the streak from stored stack days before serving
	if _, err := wellnessService.RecalculateStreak(context.Background()); err != nil {
		logger.Log.WithError(err).Warn("Initial streak recalculation failed")
	}

	// --- Handlers ---
	goalHandler := handlers.NewGoalHandler(goalService, activityService)
	workoutHandler := handlers.NewWorkoutHandler(trackerService, workoutService)
	journalHandler := handlers.NewJournalHandler(trackerService, journalService)
	moodHandler := handlers.NewMoodHandler(trackerService, moodService)
	stackHandler := handlers.NewStackHandler(wellnessService)
	insightHandler := handlers.NewInsightHandler(insightService, activityService)
	statsHandler := handlers.NewStatsHandler(wellnessService, moodService, workoutService, journalService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Goal routes
	goalRoutes := router.PathPrefix("/goals").Subrouter()
	goalRoutes.HandleFunc("", goalHandler.CreateGoalHandler).Methods("POST")
	goalRoutes.HandleFunc("", goalHandler.GetGoalsHandler).Methods("GET")
	goalRoutes.HandleFunc("/{id}", goalHandler.GetGoalHandler).Methods("GET")
	goalRoutes.HandleFunc("/{id}", goalHandler.UpdateGoalHandler).Methods("PUT")
	goalRoutes.HandleFunc("/{id}", goalHandler.DeleteGoalHandler).Methods("DELETE")
	goalRoutes.HandleFunc("/{id}/toggle", goalHandler.ToggleCompletionHandler).Methods("POST")
	goalRoutes.HandleFunc("/{id}/completion", goalHandler.GetCompletionHandler).Methods("GET")

	// Workout routes
	workoutRoutes := router.PathPrefix("/workouts").Subrouter()
	workoutRoutes.HandleFunc("", workoutHandler.CreateWorkoutHandler).Methods("POST")
	workoutRoutes.HandleFunc("", workoutHandler.GetWorkoutsHandler).Methods("GET")
	workoutRoutes.HandleFunc("/today", workoutHandler.GetTodayWorkoutsHandler).Methods("GET")

	// Journal routes
	journalRoutes := router.PathPrefix("/journal").Subrouter()
	journalRoutes.HandleFunc("", journalHandler.CreateEntryHandler).Methods("POST")
	journalRoutes.HandleFunc("", journalHandler.GetEntriesHandler).Methods("GET")
	journalRoutes.HandleFunc("/today", journalHandler.GetTodayEntriesHandler).Methods("GET")

	// Mood routes
	moodRoutes := router.PathPrefix("/mood").Subrouter()
	moodRoutes.HandleFunc("", moodHandler.LogMoodHandler).Methods("POST")
	moodRoutes.HandleFunc("", moodHandler.GetMoodSamplesHandler).Methods("GET")
	moodRoutes.HandleFunc("/today", moodHandler.GetTodayMoodHandler).Methods("GET")

	// Stack routes
	stackRoutes := router.PathPrefix("/stack").Subrouter()
	stackRoutes.HandleFunc("", stackHandler.GetStackDaysHandler).Methods("GET")
	stackRoutes.HandleFunc("/streak", stackHandler.GetStreakHandler).Methods("GET")
	stackRoutes.HandleFunc("/progress", stackHandler.GetDailyProgressHandler).Methods("GET")

	// Insight and activity feed routes
	router.HandleFunc("/insights", insightHandler.GetInsightsHandler).Methods("GET")
	router.HandleFunc("/activity", insightHandler.GetActivityFeedHandler).Methods("GET")
	router.HandleFunc("/stats", statsHandler.GetStatsHandler).Methods("GET")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Background jobs
	dailyScan := jobs.NewDailyScan(goalService, wellnessService, insightService)
	cron.StartCronJobs(wellnessService, dailyScan)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // adjust to frontend origin
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
