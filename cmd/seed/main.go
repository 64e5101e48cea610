package main

import (
	"fmt"
	"log"
	"os"

	"fieldbook/internal/database"
	"fieldbook/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "file:fieldbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Field{},
		&domain.Reservation{},
		&domain.Config{},
		&domain.ClosedDay{},
		&domain.ClosedSlot{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM closed_slots")
	db.Exec("DELETE FROM closed_days")
	db.Exec("DELETE FROM fields")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM config")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Username:     "admin",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Credits:      0,
	}
	db.Create(&admin)
	log.Println("Admin created: admin / admin123")

	playerNames := []string{"mario", "luca", "giulia"}
	for _, name := range playerNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte(name+"123"), bcrypt.DefaultCost)
		db.Create(&domain.User{
			Username:     name,
			PasswordHash: string(hash),
			Role:         domain.RoleUser,
			Credits:      5,
		})
		log.Printf("User created: %s / %s123 (credits=5)", name, name)
	}

	// ================== FIELDS ==================
	log.Println("Creating fields...")
	fields := []domain.Field{
		{ID: "campo1", Name: "Campo 1", Position: 0},
		{ID: "campo2", Name: "Campo 2", Position: 1},
	}
	for _, f := range fields {
		db.Clauses(clause.OnConflict{DoNothing: true}).Create(&f)
	}

	// ================== CONFIG ==================
	log.Println("Creating default config...")
	cfg := domain.Config{
		ID:          domain.ConfigID,
		SlotMinutes: 45,
		MaxPerDay:   1,
		MaxPerWeek:  3,
		MaxActive:   1,
		Gallery:     "[]",
	}
	if err := cfg.SetRanges([]domain.OpenRange{
		{Name: "day", Start: "09:00", End: "20:00"},
	}); err != nil {
		log.Fatal(err)
	}
	db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&cfg)

	fmt.Println("Seed complete.")
}
