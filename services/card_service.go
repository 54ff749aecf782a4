package services

import (
	"context"
	"errors"

	"ygodeck.link/configs/configsdatabase"
	"ygodeck.link/configs/configslog"
	"ygodeck.link/models"
	"ygodeck.link/pkg/ygoprodeck"
	"ygodeck.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CardServiceError kart işlemlerine özel servis hataları.
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound     CardServiceError = "kart bulunamadı"
	ErrCardIngestFailed CardServiceError = "kart yerel kayda alınamadı"
)

// ICatalogClient harici kart kataloğu soyutlaması. Testlerde stub ile
// değiştirilir; ağ erişimi motorun validasyon mantığından ayrı tutulur.
type ICatalogClient interface {
	Search(ctx context.Context, filters ygoprodeck.SearchFilters, num, offset int) *ygoprodeck.SearchResult
	FetchByID(ctx context.Context, catalogID int64) (*ygoprodeck.CardRecord, error)
}

// ICardService kart arama ve yerel kayda alma (ingestion) işlemleri.
type ICardService interface {
	ResolveOrFetchCard(ctx context.Context, catalogID int64) (*models.Card, error)
	IngestRecord(ctx context.Context, record *ygoprodeck.CardRecord) (*models.Card, error)
	SearchCatalog(ctx context.Context, filters ygoprodeck.SearchFilters, num, offset int) *ygoprodeck.SearchResult
	GetCardByID(ctx context.Context, cardID uint) (*models.Card, error)
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	cardRepo repositories.ICardRepository
	catalog  ICatalogClient
}

// NewCardService yeni bir CardService örneği oluşturur.
func NewCardService() ICardService {
	return &CardService{
		cardRepo: repositories.NewCardRepository(),
		catalog:  ygoprodeck.NewClient(),
	}
}

// NewCardServiceWith bağımlılık enjeksiyonlu constructor (testler için).
func NewCardServiceWith(db *gorm.DB, catalog ICatalogClient) ICardService {
	if db == nil {
		db = configsdatabase.GetDB()
	}
	return &CardService{
		cardRepo: repositories.NewCardRepositoryTx(db),
		catalog:  catalog,
	}
}

// ResolveOrFetchCard kartı önce yerel tablodan, yoksa katalogdan getirir.
// Katalogdan gelen kart tek seferlik insert ile yerel kayda alınır;
// tekrarlanan çağrılar aynı satırı döndürür.
func (s *CardService) ResolveOrFetchCard(ctx context.Context, catalogID int64) (*models.Card, error) {
	card, err := s.cardRepo.FindByCatalogID(ctx, catalogID)
	if err == nil {
		return card, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	record, err := s.catalog.FetchByID(ctx, catalogID)
	if err != nil {
		if errors.Is(err, ygoprodeck.ErrCardMissing) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("Katalogdan kart alınamadı", zap.Int64("catalog_id", catalogID), zap.Error(err))
		return nil, ErrCardNotFound
	}
	return s.IngestRecord(ctx, record)
}

// IngestRecord katalog kaydından türetilmiş alanlarla (kopya limiti,
// main/extra deck sınıfı) yerel Card satırı oluşturur. Aynı kayıt ikinci
// kez verilirse mevcut satır değiştirilmeden döner.
func (s *CardService) IngestRecord(ctx context.Context, record *ygoprodeck.CardRecord) (*models.Card, error) {
	// Önce katalog kimliğiyle, o yoksa adla tekilleştir.
	if existing, err := s.cardRepo.FindByCatalogID(ctx, record.ID); err == nil {
		return existing, nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if existing, err := s.cardRepo.FindByName(ctx, record.Name); err == nil {
		return existing, nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	card := models.Card{
		CatalogID:   record.ID,
		Name:        record.Name,
		Type:        record.Type,
		Attribute:   record.Attribute,
		Race:        record.Race,
		Level:       record.Level,
		Attack:      record.Attack,
		Defense:     record.Defense,
		Description: record.Description,
		ImageURL:    record.PrimaryImageURL(),
		CopyLimit:   models.CopyLimitForBanStatus(record.BanStatusTCG()),
		IsExtraDeck: models.IsExtraDeckType(record.Type),
	}
	if err := s.cardRepo.Create(ctx, &card); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Eşzamanlı ingest; kazanan satırı oku.
			return s.cardRepo.FindByCatalogID(ctx, record.ID)
		}
		configslog.Log.Error("Kart kaydedilemedi", zap.Int64("catalog_id", record.ID), zap.Error(err))
		return nil, ErrCardIngestFailed
	}

	configslog.SLog.Infof("Kart yerel kayda alındı: %s (katalog %d, limit %d)", card.Name, card.CatalogID, card.CopyLimit)
	return &card, nil
}

// SearchCatalog katalog aramasını istemciye iletir. Upstream hataları
// istemci tarafında "sonuç yok"a indirgenmiştir.
func (s *CardService) SearchCatalog(ctx context.Context, filters ygoprodeck.SearchFilters, num, offset int) *ygoprodeck.SearchResult {
	return s.catalog.Search(ctx, filters, num, offset)
}

// GetCardByID yerel kartı ID ile getirir.
func (s *CardService) GetCardByID(ctx context.Context, cardID uint) (*models.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

var _ ICardService = (*CardService)(nil)
