package services

import (
	"context"
	"errors"
	"testing"

	"ygodeck.link/models"
	"ygodeck.link/utils"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthServiceWithDB(db)
	ctx := context.Background()

	user, err := service.Register(ctx, "yugi", "gizli123", "yugi@example.com")
	if err != nil {
		t.Fatalf("kayıt başarısız: %v", err)
	}
	if user.PasswordHash == "gizli123" || user.PasswordHash == "" {
		t.Errorf("parola düz metin saklanmamalı")
	}
	if user.AvatarURL != models.DefaultAvatarURL {
		t.Errorf("varsayılan avatar atanmalıydı, geldi: %q", user.AvatarURL)
	}
	if !utils.CheckPasswordHash("gizli123", user.PasswordHash) {
		t.Errorf("hash orijinal parolayla doğrulanamadı")
	}

	authed, err := service.Authenticate(ctx, "yugi", "gizli123")
	if err != nil {
		t.Fatalf("giriş başarısız: %v", err)
	}
	if authed.ID != user.ID {
		t.Errorf("beklenmeyen kullanıcı: %d", authed.ID)
	}

	if _, err := service.Authenticate(ctx, "yugi", "yanlış"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("yanlış parola için ErrInvalidCredentials bekleniyordu, geldi: %v", err)
	}
	if _, err := service.Authenticate(ctx, "yokbirisi", "gizli123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("olmayan kullanıcı için ErrInvalidCredentials bekleniyordu, geldi: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthServiceWithDB(db)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		email    string
	}{
		{"kısa kullanıcı adı", "ab", "gizli123", "a@example.com"},
		{"uzun kullanıcı adı", "cokcokcokcokuzunbirad", "gizli123", "a@example.com"},
		{"kısa parola", "yugi", "123", "a@example.com"},
		{"geçersiz e-posta", "yugi", "gizli123", "epostadegil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(ctx, tt.username, tt.password, tt.email)
			if !errors.Is(err, ErrAuthInvalidInput) {
				t.Errorf("ErrAuthInvalidInput bekleniyordu, geldi: %v", err)
			}
		})
	}
}

func TestRegisterConflicts(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthServiceWithDB(db)
	ctx := context.Background()

	if _, err := service.Register(ctx, "yugi", "gizli123", "yugi@example.com"); err != nil {
		t.Fatalf("ilk kayıt başarısız: %v", err)
	}

	if _, err := service.Register(ctx, "yugi", "gizli123", "baska@example.com"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("aynı kullanıcı adı için ErrUsernameTaken bekleniyordu, geldi: %v", err)
	}
	if _, err := service.Register(ctx, "kaiba", "gizli123", "yugi@example.com"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("aynı e-posta için ErrEmailTaken bekleniyordu, geldi: %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthServiceWithDB(db)
	ctx := context.Background()

	user, err := service.Register(ctx, "yugi", "gizli123", "yugi@example.com")
	if err != nil {
		t.Fatalf("kayıt başarısız: %v", err)
	}
	if _, err := service.Register(ctx, "kaiba", "gizli123", "kaiba@example.com"); err != nil {
		t.Fatalf("ikinci kayıt başarısız: %v", err)
	}

	// Yanlış doğrulama parolası değişikliği engeller.
	if _, err := service.UpdateProfile(ctx, user.ID, "atem", "", "", "yanlış"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("yanlış parola için ErrInvalidCredentials bekleniyordu, geldi: %v", err)
	}

	// Başka kullanıcının adına geçilemez.
	if _, err := service.UpdateProfile(ctx, user.ID, "kaiba", "", "", "gizli123"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("alınmış ad için ErrUsernameTaken bekleniyordu, geldi: %v", err)
	}
	if _, err := service.UpdateProfile(ctx, user.ID, "", "kaiba@example.com", "", "gizli123"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("alınmış e-posta için ErrEmailTaken bekleniyordu, geldi: %v", err)
	}

	// Geçerli güncelleme; boş alanlar mevcut değerlerinde kalır.
	updated, err := service.UpdateProfile(ctx, user.ID, "atem", "", "https://example.com/atem.png", "gizli123")
	if err != nil {
		t.Fatalf("profil güncellenemedi: %v", err)
	}
	if updated.Username != "atem" {
		t.Errorf("kullanıcı adı güncellenmedi: %q", updated.Username)
	}
	if updated.Email != "yugi@example.com" {
		t.Errorf("boş e-posta mevcut değeri korumalıydı: %q", updated.Email)
	}

	// Kendi mevcut adıyla güncelleme çakışma sayılmaz.
	if _, err := service.UpdateProfile(ctx, user.ID, "atem", "", "", "gizli123"); err != nil {
		t.Errorf("kendi adıyla güncelleme hata döndürdü: %v", err)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	db := newTestDB(t)
	authService := NewAuthServiceWithDB(db)
	deckService := newDeckServiceForTest(t, db, nil)
	ctx := context.Background()

	user, err := authService.Register(ctx, "yugi", "gizli123", "yugi@example.com")
	if err != nil {
		t.Fatalf("kayıt başarısız: %v", err)
	}
	deck, err := deckService.CreateDeck(ctx, user.ID, "Ana Deste", "")
	if err != nil {
		t.Fatalf("deste oluşturulamadı: %v", err)
	}
	card := createTestCard(t, db, 9001, "Kuriboh", 3, false)
	if _, err := deckService.AddCard(ctx, user.ID, deck.ID, card.CatalogID); err != nil {
		t.Fatalf("ekleme başarısız: %v", err)
	}

	if err := authService.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("hesap silinemedi: %v", err)
	}

	if _, err := authService.GetUserByID(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("silinmiş kullanıcı için ErrUserNotFound bekleniyordu, geldi: %v", err)
	}

	var deckCount, rowCount int64
	db.Model(&models.Deck{}).Where("user_id = ?", user.ID).Count(&deckCount)
	db.Model(&models.DeckCard{}).Where("deck_id = ?", deck.ID).Count(&rowCount)
	if deckCount != 0 || rowCount != 0 {
		t.Errorf("kullanıcının desteleri ve satırları silinmeliydi (deste: %d, satır: %d)", deckCount, rowCount)
	}

	// Kart kataloğu hesap silmekten etkilenmez.
	var cardCount int64
	db.Model(&models.Card{}).Count(&cardCount)
	if cardCount != 1 {
		t.Errorf("kart tablosu hesap silmekten etkilenmemeliydi")
	}

	if err := authService.DeleteUser(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("tekrar silme için ErrUserNotFound bekleniyordu, geldi: %v", err)
	}
}
