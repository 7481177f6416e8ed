package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "sprint-board-system.com/sprint-board-system/internal/models"
)

func New(dsn string) *gorm.DB {
	// TranslateError maps driver unique-constraint failures onto
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Profile{},
		&model.Project{},
		&model.ProjectMember{},
		&model.Sprint{},
		&model.BoardColumn{},
		&model.Issue{},
		&model.Comment{},
		&model.IssueWatcher{},
		&model.Attachment{},
		&model.ActivityLog{},
		&model.Notification{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
