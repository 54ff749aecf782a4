package services

import (
	"context"
	"fmt"
	"os"
	"testing"

	"ygodeck.link/configs/configslog"
	"ygodeck.link/models"
	"ygodeck.link/pkg/ygoprodeck"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

// newTestDB her test için izole bir in-memory SQLite veritabanı açar.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB alınamadı: %v", err)
	}
	// :memory: her bağlantıda yeni veritabanı demektir; tek bağlantı şart.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Card{}, &models.Deck{}, &models.DeckCard{}); err != nil {
		t.Fatalf("test migrasyonu başarısız: %v", err)
	}
	return db
}

// stubCatalog ICatalogClient'in test implementasyonu.
type stubCatalog struct {
	records      map[int64]*ygoprodeck.CardRecord
	searchResult *ygoprodeck.SearchResult
	fetchCalls   int
}

func (s *stubCatalog) Search(_ context.Context, _ ygoprodeck.SearchFilters, _, _ int) *ygoprodeck.SearchResult {
	if s.searchResult != nil {
		return s.searchResult
	}
	return &ygoprodeck.SearchResult{}
}

func (s *stubCatalog) FetchByID(_ context.Context, catalogID int64) (*ygoprodeck.CardRecord, error) {
	s.fetchCalls++
	if record, ok := s.records[catalogID]; ok {
		return record, nil
	}
	return nil, ygoprodeck.ErrCardMissing
}

var _ ICatalogClient = (*stubCatalog)(nil)

// --- Test verisi yardımcıları ---

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		AvatarURL:    models.DefaultAvatarURL,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("test kullanıcısı oluşturulamadı: %v", err)
	}
	return &user
}

func createTestDeck(t *testing.T, db *gorm.DB, userID uint, name string) *models.Deck {
	t.Helper()
	deck := models.Deck{UserID: userID, Name: name}
	if err := db.Create(&deck).Error; err != nil {
		t.Fatalf("test destesi oluşturulamadı: %v", err)
	}
	return &deck
}

func createTestCard(t *testing.T, db *gorm.DB, catalogID int64, name string, copyLimit int, extraDeck bool) *models.Card {
	t.Helper()
	card := models.Card{
		CatalogID:   catalogID,
		Name:        name,
		Type:        "Effect Monster",
		ImageURL:    fmt.Sprintf("https://images.example.com/%d.jpg", catalogID),
		CopyLimit:   copyLimit,
		IsExtraDeck: extraDeck,
	}
	if extraDeck {
		card.Type = "Fusion Monster"
	}
	if err := db.Create(&card).Error; err != nil {
		t.Fatalf("test kartı oluşturulamadı: %v", err)
	}
	return &card
}

func catalogRecord(catalogID int64, name, cardType, banTCG string) *ygoprodeck.CardRecord {
	record := &ygoprodeck.CardRecord{
		ID:   catalogID,
		Name: name,
		Type: cardType,
		CardImages: []ygoprodeck.CardImage{
			{ImageURL: fmt.Sprintf("https://images.example.com/%d.jpg", catalogID)},
		},
	}
	if banTCG != "" {
		record.BanlistInfo = &ygoprodeck.BanlistInfo{BanTCG: banTCG}
	}
	return record
}
