package seeders

import (
	"errors"
	"os"

	"ygodeck.link/configs/configslog"
	"ygodeck.link/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// DefaultCardSeedFile CARD_SEED_FILE ortam değişkeni verilmezse kullanılır.
const DefaultCardSeedFile = "database/seeders/data/cards.yaml"

type cardSeedEntry struct {
	CatalogID   int64  `yaml:"catalog_id"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Attribute   string `yaml:"attribute"`
	Race        string `yaml:"race"`
	Level       *int   `yaml:"level"`
	Attack      *int   `yaml:"attack"`
	Defense     *int   `yaml:"defense"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url"`
	BanStatus   string `yaml:"ban_status"`
}

type cardSeedFile struct {
	Cards []cardSeedEntry `yaml:"cards"`
}

// SeedCards YAML dosyasındaki başlangıç kartlarını yükler.
// Katalog ID'ye göre idempotenttir; mevcut kartlar atlanır.
func SeedCards(db *gorm.DB) error {
	path := os.Getenv("CARD_SEED_FILE")
	if path == "" {
		path = DefaultCardSeedFile
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			configslog.SLog.Infof("Kart seed dosyası bulunamadı (%s), seed adımı atlanıyor.", path)
			return nil
		}
		configslog.Log.Error("Kart seed dosyası okunamadı", zap.String("path", path), zap.Error(err))
		return err
	}

	var seedFile cardSeedFile
	if err := yaml.Unmarshal(raw, &seedFile); err != nil {
		configslog.Log.Error("Kart seed dosyası çözümlenemedi", zap.String("path", path), zap.Error(err))
		return err
	}

	var createdCount int64 = 0
	var errorOccurred bool = false

	configslog.SLog.Infof("Kart seed işlemi başlıyor (%d kayıt)...", len(seedFile.Cards))

	for _, entry := range seedFile.Cards {
		if entry.CatalogID == 0 || entry.Name == "" {
			configslog.SLog.Warnf("Geçersiz kart seed kaydı atlanıyor (catalog_id: %d).", entry.CatalogID)
			continue
		}

		var existing models.Card
		result := db.Where("catalog_id = ?", entry.CatalogID).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Kart '%s' zaten mevcut, oluşturma atlanıyor.", entry.Name)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Kart kontrol edilirken veritabanı hatası",
				zap.String("card_name", entry.Name),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		// Boş ban_status serbest kart demektir; CopyLimitForBanStatus 3 döndürür.
		card := models.Card{
			CatalogID:   entry.CatalogID,
			Name:        entry.Name,
			Type:        entry.Type,
			Attribute:   entry.Attribute,
			Race:        entry.Race,
			Level:       entry.Level,
			Attack:      entry.Attack,
			Defense:     entry.Defense,
			Description: entry.Description,
			ImageURL:    entry.ImageURL,
			CopyLimit:   models.CopyLimitForBanStatus(entry.BanStatus),
			IsExtraDeck: models.IsExtraDeckType(entry.Type),
		}

		if err := db.Create(&card).Error; err != nil {
			configslog.Log.Error("Kart oluşturulamadı",
				zap.String("card_name", entry.Name),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni kart başarıyla seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm kartlar zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("kartlar seed edilirken en az bir hata oluştu")
	}

	configslog.SLog.Info("Kart seed işlemi başarıyla tamamlandı.")
	return nil
}
