package migrations

import (
	"ygodeck.link/configs/configslog"
	"ygodeck.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateDeckCardsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating deck_cards table...")
	err := db.AutoMigrate(&models.DeckCard{})
	if err != nil {
		configslog.Log.Error("Failed to migrate deck_cards table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Deck_cards table migrated successfully")
	return nil
}
