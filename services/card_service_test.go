package services

import (
	"context"
	"errors"
	"testing"

	"ygodeck.link/models"
	"ygodeck.link/pkg/ygoprodeck"
)

func TestIngestRecordDerivesFields(t *testing.T) {
	db := newTestDB(t)
	service := NewCardServiceWith(db, &stubCatalog{})
	ctx := context.Background()

	tests := []struct {
		name          string
		record        *ygoprodeck.CardRecord
		wantLimit     int
		wantExtraDeck bool
	}{
		{"serbest kart", catalogRecord(101, "Kuriboh", "Effect Monster", ""), 3, false},
		{"limitli kart", catalogRecord(102, "Raigeki", "Spell Card", "Limited"), 1, false},
		{"yarı limitli kart", catalogRecord(103, "Lightning Storm", "Spell Card", "Semi-Limited"), 2, false},
		{"yasaklı kart", catalogRecord(104, "Maxx C", "Effect Monster", "Banned"), 0, false},
		{"fusion extra deck", catalogRecord(105, "Blue-Eyes Ultimate", "Fusion Monster", ""), 3, true},
		{"link extra deck", catalogRecord(106, "Decode Talker", "Link Monster", ""), 3, true},
		{"bilinmeyen ban durumu", catalogRecord(107, "Tuhaf Kart", "Effect Monster", "Whatever"), 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := service.IngestRecord(ctx, tt.record)
			if err != nil {
				t.Fatalf("ingest başarısız: %v", err)
			}
			if card.CopyLimit != tt.wantLimit {
				t.Errorf("kopya limiti %d bekleniyordu, %d bulundu", tt.wantLimit, card.CopyLimit)
			}
			if card.IsExtraDeck != tt.wantExtraDeck {
				t.Errorf("IsExtraDeck %v bekleniyordu, %v bulundu", tt.wantExtraDeck, card.IsExtraDeck)
			}
			if card.ImageURL != tt.record.PrimaryImageURL() {
				t.Errorf("görsel adresi kopyalanmadı: %q", card.ImageURL)
			}
		})
	}
}

func TestIngestRecordPersistsZeroCopyLimit(t *testing.T) {
	db := newTestDB(t)
	service := NewCardServiceWith(db, &stubCatalog{})
	ctx := context.Background()

	ingested, err := service.IngestRecord(ctx, catalogRecord(111, "Maxx C", "Effect Monster", "Banned"))
	if err != nil {
		t.Fatalf("ingest başarısız: %v", err)
	}

	// Sıfır limit veritabanına da sıfır olarak yazılmalı; column default'u
	// yasaklı kartı serbest karta çevirmemeli.
	var stored models.Card
	if err := db.First(&stored, ingested.ID).Error; err != nil {
		t.Fatalf("kart yeniden okunamadı: %v", err)
	}
	if stored.CopyLimit != 0 {
		t.Errorf("veritabanındaki copy_limit 0 bekleniyordu, %d bulundu", stored.CopyLimit)
	}
}

func TestIngestRecordIdempotent(t *testing.T) {
	db := newTestDB(t)
	service := NewCardServiceWith(db, &stubCatalog{})
	ctx := context.Background()
	record := catalogRecord(201, "Dark Magician", "Normal Monster", "")

	first, err := service.IngestRecord(ctx, record)
	if err != nil {
		t.Fatalf("ilk ingest başarısız: %v", err)
	}
	second, err := service.IngestRecord(ctx, record)
	if err != nil {
		t.Fatalf("ikinci ingest başarısız: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("aynı kayıt iki kez verildiğinde aynı satır dönmeliydi: %d != %d", first.ID, second.ID)
	}

	var count int64
	db.Model(&models.Card{}).Count(&count)
	if count != 1 {
		t.Errorf("tek kart satırı bekleniyordu, %d bulundu", count)
	}
}

func TestIngestRecordDedupesByName(t *testing.T) {
	db := newTestDB(t)
	service := NewCardServiceWith(db, &stubCatalog{})
	ctx := context.Background()

	existing := createTestCard(t, db, 301, "Dark Magician", 3, false)

	// Aynı ad, farklı katalog kimliği: ad yedeği devreye girer.
	record := catalogRecord(302, "Dark Magician", "Normal Monster", "")
	card, err := service.IngestRecord(ctx, record)
	if err != nil {
		t.Fatalf("ingest başarısız: %v", err)
	}
	if card.ID != existing.ID {
		t.Errorf("adla tekilleştirme beklenen satırı döndürmedi: %d != %d", card.ID, existing.ID)
	}
}

func TestResolveOrFetchCard(t *testing.T) {
	db := newTestDB(t)
	catalog := &stubCatalog{records: map[int64]*ygoprodeck.CardRecord{
		401: catalogRecord(401, "Stardust Dragon", "Synchro Monster", ""),
	}}
	service := NewCardServiceWith(db, catalog)
	ctx := context.Background()

	card, err := service.ResolveOrFetchCard(ctx, 401)
	if err != nil {
		t.Fatalf("çözümleme başarısız: %v", err)
	}
	if !card.IsExtraDeck {
		t.Errorf("Synchro Monster extra deck sayılmalıydı")
	}

	// İkinci çözümleme katalog yerine yerel satırdan gelir.
	if _, err := service.ResolveOrFetchCard(ctx, 401); err != nil {
		t.Fatalf("ikinci çözümleme başarısız: %v", err)
	}
	if catalog.fetchCalls != 1 {
		t.Errorf("katalog bir kez çağrılmalıydı, %d kez çağrıldı", catalog.fetchCalls)
	}

	if _, err := service.ResolveOrFetchCard(ctx, 999); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("bilinmeyen kimlik için ErrCardNotFound bekleniyordu, geldi: %v", err)
	}
}

func TestGetCardByID(t *testing.T) {
	db := newTestDB(t)
	service := NewCardServiceWith(db, &stubCatalog{})
	ctx := context.Background()

	card := createTestCard(t, db, 501, "Kuriboh", 3, false)

	found, err := service.GetCardByID(ctx, card.ID)
	if err != nil {
		t.Fatalf("kart getirilemedi: %v", err)
	}
	if found.Name != "Kuriboh" {
		t.Errorf("beklenmeyen kart: %+v", found)
	}

	if _, err := service.GetCardByID(ctx, 999); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("olmayan kart için ErrCardNotFound bekleniyordu, geldi: %v", err)
	}
}
