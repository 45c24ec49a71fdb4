package main

import (
	"log"

	"ai-coach-agent-be/internal/config"
	"ai-coach-agent-be/internal/model"
	"ai-coach-agent-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// Server-side uuid defaults need pgcrypto's gen_random_uuid().
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		log.Panicf("Unable to enable pgcrypto: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Goal{},
		&model.Milestone{},
		&model.Message{},
	); err != nil {
		log.Panicf("Migration failed: %v", err)
	}

	log.Println("✅ Migration complete")
}
