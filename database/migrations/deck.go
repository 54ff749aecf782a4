package migrations

import (
	"ygodeck.link/configs/configslog"
	"ygodeck.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateDecksTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating decks table...")
	err := db.AutoMigrate(&models.Deck{})
	if err != nil {
		configslog.Log.Error("Failed to migrate decks table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Decks table migrated successfully")
	return nil
}
