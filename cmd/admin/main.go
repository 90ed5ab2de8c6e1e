package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Santosh-Singh382/citizenloop/internal/analytics"
	"github.com/Santosh-Singh382/citizenloop/internal/complaint"
	"github.com/Santosh-Singh382/citizenloop/internal/models"
	"github.com/Santosh-Singh382/citizenloop/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed-admin":
		if len(os.Args) != 5 {
			fmt.Println("Usage: admin seed-admin <name> <email> <password>")
			os.Exit(1)
		}
		if err := seedAdmin(storageSvc, os.Args[2], os.Args[3], os.Args[4]); err != nil {
			log.Fatalf("Error creating admin: %v", err)
		}
		fmt.Printf("Admin account %s created.\n", os.Args[3])
	case "resolve":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin resolve <complaint_id>")
			os.Exit(1)
		}
		svc := complaint.NewService(storageSvc)
		updated, err := svc.Transition(os.Args[2], string(models.StatusResolved))
		if err != nil {
			log.Fatalf("Error resolving complaint: %v", err)
		}
		fmt.Printf("Complaint %s resolved at %s.\n", updated.ComplaintID, updated.ResolvedAt)
	case "stats":
		complaints, err := storageSvc.ListComplaints()
		if err != nil {
			log.Fatalf("Error loading complaints: %v", err)
		}
		printStats(analytics.ComputeDashboardStats(complaints))
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func seedAdmin(s storage.Storage, name, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.CreateUser(&models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     models.RoleAdmin,
	})
}

func printStats(stats analytics.DashboardStats) {
	fmt.Printf("Total:        %d\n", stats.TotalComplaints)
	fmt.Printf("Pending:      %d\n", stats.PendingComplaints)
	fmt.Printf("In progress:  %d\n", stats.InProgressComplaints)
	fmt.Printf("Resolved:     %d\n", stats.ResolvedComplaints)
	fmt.Printf("Rate:         %.1f%%\n", stats.ResolutionRate)
	fmt.Printf("Avg days:     %.2f\n", stats.AverageResolutionTime)
	for category, count := range stats.CategoryCount {
		fmt.Printf("  %-12s %d\n", category, count)
	}
}
