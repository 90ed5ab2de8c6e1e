package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Santosh-Singh382/citizenloop/internal/api/handler"
	"github.com/Santosh-Singh382/citizenloop/internal/models"
	"github.com/Santosh-Singh382/citizenloop/internal/storage"
)

func setupDependencies() (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Міграції (Створення таблиць)
	err = db.AutoMigrate(
		&models.User{},
		&models.Complaint{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting CitizenLoop Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET не встановлено!")
	}

	// 1. Ініціалізація залежностей
	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)

	// 2. Налаштування Gin та роутингу
	r := gin.Default()
	h := handler.NewHandler(s, []byte(jwtSecret))

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	citizen := r.Group("/api/citizen", h.RequireAuth())
	{
		citizen.POST("/complaints", h.SubmitComplaint)
		citizen.GET("/complaints", h.ListMyComplaints)
		citizen.GET("/complaints/:complaintId", h.GetMyComplaint)
		citizen.GET("/complaints/:complaintId/status", h.TrackComplaintStatus)
	}

	admin := r.Group("/api/admin", h.RequireAuth(), h.RequireAdmin())
	{
		admin.GET("/complaints", h.ListComplaints)
		admin.PUT("/complaints/:complaintId/status", h.UpdateComplaintStatus)
		admin.GET("/dashboard/stats", h.AdminDashboardStats)
		admin.GET("/users", h.ListUsers)
		admin.GET("/users/:userId", h.GetUser)
	}

	public := r.Group("/api/public")
	{
		public.GET("/dashboard/stats", h.PublicDashboardStats)
		public.GET("/complaints/resolved", h.PublicResolvedComplaints)
		public.GET("/complaints/map", h.PublicMapComplaints)
		public.GET("/sdg-analytics", h.PublicSDGAnalytics)
		public.GET("/health", h.Health)
	}

	// Запуск HTTP-сервера
	server := &http.Server{
		Addr:           ":8080",
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
