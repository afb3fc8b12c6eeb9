package db

import (
	"fmt"
	"log"

	"github.com/sparklean/cleaning-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Company{},
		&models.Team{},
		&models.Professional{},
		&models.Customer{},
		&models.Recurrence{},
		&models.Appointment{},
		&models.CheckRecord{},
		&models.Cancellation{},
		&models.Payment{},
		&models.TrackingPoint{},
		&models.Feedback{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
