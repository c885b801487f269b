// File: /database/database.go
package database

import (
	"fmt"
	"time"

	"cleanworld-api/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Zone{},
		&models.CleanupEvent{},
		&models.Reward{},
		&models.Redemption{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Zones list view sorts by creation date and severity
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_zones_created ON zones(created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for zones created_at: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_zones_status_severity ON zones(status, severity)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for zones status/severity: %v\n", err)
	}

	// Events list view partitions on datetime
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_events_datetime ON cleanup_events(datetime)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for cleanup_events datetime: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_events_zone ON cleanup_events(zone_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for cleanup_events zone: %v\n", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// Attendees are a set, never a list with duplicates
	if err := db.Exec("ALTER TABLE event_attendees ADD CONSTRAINT uk_event_attendees_event_user UNIQUE (cleanup_event_id, user_id)").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add unique constraint for event_attendees: %v\n", err)
	}

	return nil
}

// SeedData populates the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	testUsers := []models.User{
		{
			Name:     "Laura Vega",
			Email:    "laura@example.com",
			Password: "$2a$10$dummy", // This should be properly hashed in real scenarios
			Points:   120,
		},
		{
			Name:     "Marcos Gil",
			Email:    "marcos@example.com",
			Password: "$2a$10$dummy",
		},
	}

	for i := range testUsers {
		if err := db.Create(&testUsers[i]).Error; err != nil {
			fmt.Printf("Warning: Could not create test user %s: %v\n", testUsers[i].Name, err)
		}
	}

	desc := "Orilla del río llena de plásticos y envases tras el fin de semana."
	img := "https://picsum.photos/600/400?random=11"
	testZones := []models.Zone{
		{
			Title:       "Ribera del Manzanares",
			Description: &desc,
			Latitude:    40.3948,
			Longitude:   -3.7329,
			ImgURL:      &img,
			Severity:    models.SeverityHigh,
			Status:      models.ZoneStatusDirty,
			ReportedID:  &testUsers[0].ID,
		},
		{
			Title:       "Parque de la Dehesa",
			Latitude:    40.4168,
			Longitude:   -3.7038,
			Severity:    models.SeverityLow,
			Status:      models.ZoneStatusDirty,
			ReportedID:  &testUsers[1].ID,
		},
	}

	for i := range testZones {
		if err := db.Create(&testZones[i]).Error; err != nil {
			fmt.Printf("Warning: Could not create test zone %s: %v\n", testZones[i].Title, err)
		}
	}

	testEvent := models.CleanupEvent{
		Title:        "Limpieza de la ribera",
		Description:  "Trae guantes y bolsas, nos vemos en el puente.",
		Datetime:     time.Now().Add(72 * time.Hour),
		Status:       models.EventStatusScheduled,
		RewardPoints: testZones[0].Severity.RewardPoints(),
		ZoneID:       testZones[0].ID,
	}
	if err := db.Create(&testEvent).Error; err != nil {
		fmt.Printf("Warning: Could not create test event: %v\n", err)
	}

	rewardImg := "https://picsum.photos/300/200?random=21"
	testRewards := []models.Reward{
		{Title: "Rakuten TV: 1 película en HD", Cost: 800, ImgURL: &rewardImg},
		{Title: "Tarjeta digital de Roblox", Cost: 950},
		{Title: "Vale descuento 10€", Cost: 500},
	}
	for i := range testRewards {
		if err := db.Create(&testRewards[i]).Error; err != nil {
			fmt.Printf("Warning: Could not create test reward %s: %v\n", testRewards[i].Title, err)
		}
	}

	fmt.Println("Database seeded with test data")
	return nil
}
