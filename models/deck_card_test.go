package models

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newModelTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB alınamadı: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&User{}, &Card{}, &Deck{}, &DeckCard{}); err != nil {
		t.Fatalf("test migrasyonu başarısız: %v", err)
	}
	return db
}

func seedDeckAndCard(t *testing.T, db *gorm.DB, copyLimit int) (*Deck, *Card) {
	t.Helper()
	user := User{Username: "yugi", Email: "yugi@example.com", PasswordHash: "x", AvatarURL: DefaultAvatarURL}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("kullanıcı oluşturulamadı: %v", err)
	}
	deck := Deck{UserID: user.ID, Name: "Ana Deste"}
	if err := db.Create(&deck).Error; err != nil {
		t.Fatalf("deste oluşturulamadı: %v", err)
	}
	card := Card{CatalogID: 1, Name: "Kuriboh", Type: "Effect Monster", ImageURL: "https://example.com/1.jpg", CopyLimit: copyLimit}
	if err := db.Create(&card).Error; err != nil {
		t.Fatalf("kart oluşturulamadı: %v", err)
	}
	return &deck, &card
}

func TestDeckCardBeforeSaveRejectsInvalidQuantity(t *testing.T) {
	db := newModelTestDB(t)
	deck, card := seedDeckAndCard(t, db, 3)

	tests := []struct {
		name     string
		quantity int
		wantErr  bool
	}{
		{"geçerli alt sınır", 0, false},
		{"geçerli üst sınır", 3, false},
		{"negatif adet", -1, true},
		{"limit üstü adet", 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deckCard := DeckCard{DeckID: deck.ID, CardID: card.ID, Quantity: tt.quantity}
			err := db.Create(&deckCard).Error
			if tt.wantErr {
				if !errors.Is(err, ErrInvariantViolation) {
					t.Errorf("ErrInvariantViolation bekleniyordu, geldi: %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("geçerli adet reddedildi: %v", err)
			}
			db.Where("deck_id = ? AND card_id = ?", deck.ID, card.ID).Delete(&DeckCard{})
		})
	}
}

func TestDeckCardBeforeSaveHonorsCardLimit(t *testing.T) {
	db := newModelTestDB(t)
	deck, card := seedDeckAndCard(t, db, 1)

	valid := DeckCard{DeckID: deck.ID, CardID: card.ID, Quantity: 1}
	if err := db.Create(&valid).Error; err != nil {
		t.Fatalf("limit içindeki adet reddedildi: %v", err)
	}

	valid.Quantity = 2
	if err := db.Save(&valid).Error; !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("limitli kart için adet 2'ye ErrInvariantViolation bekleniyordu, geldi: %v", err)
	}
}

func TestDeckCardBeforeSaveUnknownCard(t *testing.T) {
	db := newModelTestDB(t)
	deck, _ := seedDeckAndCard(t, db, 3)

	deckCard := DeckCard{DeckID: deck.ID, CardID: 999, Quantity: 1}
	if err := db.Create(&deckCard).Error; !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("olmayan kart için ErrInvariantViolation bekleniyordu, geldi: %v", err)
	}
}

func TestDeckCounts(t *testing.T) {
	db := newModelTestDB(t)
	deck, mainCard := seedDeckAndCard(t, db, 3)

	extraCard := Card{CatalogID: 2, Name: "Stardust Dragon", Type: "Synchro Monster", ImageURL: "https://example.com/2.jpg", CopyLimit: 3, IsExtraDeck: true}
	if err := db.Create(&extraCard).Error; err != nil {
		t.Fatalf("extra kart oluşturulamadı: %v", err)
	}

	rows := []DeckCard{
		{DeckID: deck.ID, CardID: mainCard.ID, Quantity: 3},
		{DeckID: deck.ID, CardID: extraCard.ID, Quantity: 2},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("satır oluşturulamadı: %v", err)
		}
	}

	var loaded Deck
	if err := db.Preload("DeckCards.Card").First(&loaded, deck.ID).Error; err != nil {
		t.Fatalf("deste yüklenemedi: %v", err)
	}

	if got := loaded.MainDeckCount(); got != 3 {
		t.Errorf("MainDeckCount = %d, 3 bekleniyordu", got)
	}
	if got := loaded.ExtraDeckCount(); got != 2 {
		t.Errorf("ExtraDeckCount = %d, 2 bekleniyordu", got)
	}
}
