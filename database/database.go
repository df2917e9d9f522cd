package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/edutrackhq/edutrack/apperrors"
	config "github.com/edutrackhq/edutrack/configs"
	"github.com/edutrackhq/edutrack/models"
	"github.com/edutrackhq/edutrack/utils"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.AvailableDate{},
		&models.RecordedSession{},
		&models.MentorshipBooking{},
		&models.Platform{},
		&models.Task{},
		&models.Enrollment{},
		&models.Submission{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedAdmin creates the admin account on first boot. The admin doubles as
// the platform mentor, so the mentor profile fields are seeded with it.
func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	mentorBio := config.Config("ADMIN_MENTOR_BIO")
	mentorRate := config.FaceToFaceRate()

	err = DB.Transaction(func(tx *gorm.DB) error {
		walletNumber, err := utils.GenerateUniqueWalletNumber(tx)
		if err != nil {
			return err
		}

		adminUser := models.User{
			FullName:     config.Config("ADMIN_FULL_NAME"),
			Email:        adminEmail,
			Password:     string(hashedPassword),
			Role:         models.RoleAdmin,
			WalletNumber: walletNumber,
			IsMentor:     true,
			MentorBio:    &mentorBio,
			MentorRate:   &mentorRate,
		}
		return tx.Create(&adminUser).Error
	})
	if err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

// Mentor returns the seeded mentor account.
func Mentor(db *gorm.DB) (*models.User, error) {
	var mentor models.User
	if err := db.Where("is_mentor = ?", true).First(&mentor).Error; err != nil {
		return nil, apperrors.NewNotFound("no mentor is configured")
	}
	return &mentor, nil
}
