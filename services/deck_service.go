package services

import (
	"context"
	"errors"
	"fmt"

	"ygodeck.link/configs/configsdatabase"
	"ygodeck.link/configs/configslog"
	"ygodeck.link/models"
	"ygodeck.link/pkg/queryparams"
	"ygodeck.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeckServiceError deste işlemlerine özel servis hataları.
type DeckServiceError string

func (e DeckServiceError) Error() string { return string(e) }

const (
	ErrDeckNotFound      DeckServiceError = "deste bulunamadı"
	ErrDeckForbidden     DeckServiceError = "bu deste üzerinde yetkiniz yok"
	ErrDeckNameRequired  DeckServiceError = "deste adı zorunludur"
	ErrCardBanned        DeckServiceError = "bu kart yasaklı, desteye eklenemez"
	ErrMainDeckFull      DeckServiceError = "main deck dolu (en fazla 60 kart)"
	ErrExtraDeckFull     DeckServiceError = "extra deck dolu (en fazla 15 kart)"
	ErrCopyLimitExceeded DeckServiceError = "bu karttan daha fazla kopya eklenemez"
	ErrCardNotInDeck     DeckServiceError = "kart bu destede yok"
	ErrDeckOpFailed      DeckServiceError = "deste işlemi tamamlanamadı"
)

// IDeckService deste CRUD'u ve deste kompozisyon motoru.
// Tüm operasyonlar çağıran kullanıcının kimliğini açık parametre olarak alır;
// oturumdan kullanıcı çözme işi route katmanında biter.
type IDeckService interface {
	CreateDeck(ctx context.Context, userID uint, name, description string) (*models.Deck, error)
	GetDeckForUser(ctx context.Context, userID, deckID uint) (*models.Deck, error)
	ListDecksForUser(ctx context.Context, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateDeck(ctx context.Context, userID, deckID uint, name, description string) error
	DeleteDeck(ctx context.Context, userID, deckID uint) error

	AddCard(ctx context.Context, userID, deckID uint, catalogID int64) (string, error)
	RemoveCard(ctx context.Context, userID, deckID, cardID uint) (string, error)
	SetCoverCard(ctx context.Context, userID, deckID, cardID uint) error
	ClearDeck(ctx context.Context, userID, deckID uint) error
}

// DeckService IDeckService arayüzünü uygular.
type DeckService struct {
	deckRepo     repositories.IDeckRepository
	deckCardRepo repositories.IDeckCardRepository
	cardService  ICardService
	db           *gorm.DB
}

// NewDeckService yeni bir DeckService örneği oluşturur.
func NewDeckService() IDeckService {
	return &DeckService{
		deckRepo:     repositories.NewDeckRepository(),
		deckCardRepo: repositories.NewDeckCardRepository(),
		cardService:  NewCardService(),
		db:           configsdatabase.GetDB(),
	}
}

// NewDeckServiceWith bağımlılık enjeksiyonlu constructor (testler için).
func NewDeckServiceWith(db *gorm.DB, cardService ICardService) IDeckService {
	return &DeckService{
		deckRepo:     repositories.NewDeckRepositoryTx(db),
		deckCardRepo: repositories.NewDeckCardRepositoryTx(db),
		cardService:  cardService,
		db:           db,
	}
}

// --- Deste CRUD ---

// CreateDeck kullanıcı için yeni bir deste oluşturur.
func (s *DeckService) CreateDeck(ctx context.Context, userID uint, name, description string) (*models.Deck, error) {
	if name == "" {
		return nil, ErrDeckNameRequired
	}
	deck := models.Deck{
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	if err := s.deckRepo.Create(ctx, &deck); err != nil {
		configslog.Log.Error("Deste oluşturulamadı", zap.Uint("userID", userID), zap.Error(err))
		return nil, ErrDeckOpFailed
	}
	configslog.SLog.Infof("Deste oluşturuldu: %s (ID %d, kullanıcı %d)", deck.Name, deck.ID, userID)
	return &deck, nil
}

// GetDeckForUser desteyi kartlarıyla birlikte getirir; sahiplik kontrolü yapar.
func (s *DeckService) GetDeckForUser(ctx context.Context, userID, deckID uint) (*models.Deck, error) {
	deck, err := s.deckRepo.FindByIDWithCards(ctx, deckID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDeckNotFound
		}
		return nil, err
	}
	if deck.UserID != userID {
		configslog.Log.Warn("Yetkisiz deste erişim denemesi",
			zap.Uint("deckID", deckID), zap.Uint("userID", userID), zap.Uint("ownerID", deck.UserID))
		return nil, ErrDeckForbidden
	}
	return deck, nil
}

// ListDecksForUser kullanıcının destelerini sayfalayarak listeler.
func (s *DeckService) ListDecksForUser(ctx context.Context, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	decks, totalCount, err := s.deckRepo.FindAllByUserIDPaginated(ctx, userID, params)
	if err != nil {
		configslog.Log.Error("Desteler listelenemedi", zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: decks,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// UpdateDeck deste adını ve açıklamasını günceller.
func (s *DeckService) UpdateDeck(ctx context.Context, userID, deckID uint, name, description string) error {
	if name == "" {
		return ErrDeckNameRequired
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		deck, err := s.lockDeck(ctx, tx, userID, deckID)
		if err != nil {
			return err
		}
		updates := map[string]interface{}{"name": name, "description": description}
		if err := repositories.NewDeckRepositoryTx(tx).Update(ctx, deck.ID, updates); err != nil {
			configslog.Log.Error("Deste güncellenemedi", zap.Uint("deckID", deckID), zap.Error(err))
			return ErrDeckOpFailed
		}
		return nil
	})
}

// DeleteDeck desteyi ve tüm deck_cards satırlarını tek transaction içinde siler.
func (s *DeckService) DeleteDeck(ctx context.Context, userID, deckID uint) error {
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		deck, err := s.lockDeck(ctx, tx, userID, deckID)
		if err != nil {
			return err
		}
		deckCardRepoTx := repositories.NewDeckCardRepositoryTx(tx)
		if err := deckCardRepoTx.DeleteAllForDeck(ctx, deck.ID); err != nil {
			return err
		}
		return repositories.NewDeckRepositoryTx(tx).Delete(ctx, deck.ID)
	})
	if txErr != nil {
		if isDeckServiceError(txErr) {
			return txErr
		}
		configslog.Log.Error("Deste silinemedi", zap.Uint("deckID", deckID), zap.Error(txErr))
		return ErrDeckOpFailed
	}
	configslog.SLog.Infof("Deste silindi: ID %d", deckID)
	return nil
}

// --- Kompozisyon motoru ---

// AddCard kartı desteye ekler. Kart yerelde yoksa katalogdan alınır
// (iki adımlı akış: önce çöz, sonra ekle). Kontrol sırası sabittir:
// yasak kontrolü, deste kapasitesi, kopya limiti. Bu sıra eski sistemle
// hata raporlama uyumluluğu için korunur.
func (s *DeckService) AddCard(ctx context.Context, userID, deckID uint, catalogID int64) (string, error) {
	card, err := s.cardService.ResolveOrFetchCard(ctx, catalogID)
	if err != nil {
		return "", err
	}

	var message string
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		deck, err := s.lockDeck(ctx, tx, userID, deckID)
		if err != nil {
			return err
		}
		deckCardRepoTx := repositories.NewDeckCardRepositoryTx(tx)

		// 1. Yasak kontrolü
		if card.CopyLimit == 0 {
			return ErrCardBanned
		}

		// 2. Deste kapasitesi (main/extra ayrımıyla)
		total, err := deckCardRepoTx.SumQuantities(ctx, deck.ID, card.IsExtraDeck)
		if err != nil {
			return err
		}
		if !card.IsExtraDeck && total >= models.MaxMainDeckSize {
			return ErrMainDeckFull
		}
		if card.IsExtraDeck && total >= models.MaxExtraDeckSize {
			return ErrExtraDeckFull
		}

		// 3. Kopya limiti; satır kilitlenerek okunur (lost update önlemi)
		deckCard, err := deckCardRepoTx.FindForUpdate(ctx, deck.ID, card.ID)
		switch {
		case err == nil:
			if deckCard.Quantity >= card.EffectiveCopyLimit() {
				return ErrCopyLimitExceeded
			}
			deckCard.Quantity++
			if err := deckCardRepoTx.Save(ctx, deckCard); err != nil {
				return err
			}
		case errors.Is(err, repositories.ErrNotFound):
			newDeckCard := models.DeckCard{DeckID: deck.ID, CardID: card.ID, Quantity: 1}
			if err := deckCardRepoTx.Create(ctx, &newDeckCard); err != nil {
				return err
			}
		default:
			return err
		}

		message = fmt.Sprintf("%s kartı %s destesine eklendi.", card.Name, deck.Name)
		return nil
	})

	if txErr != nil {
		return "", s.mapEngineError(txErr, "AddCard", deckID, card.ID)
	}
	return message, nil
}

// RemoveCard karttan bir kopya çıkarır; son kopya çıkınca satır silinir.
// Silinen kart kapak kartıysa kapak da temizlenir (kapak kartı her zaman
// destede bulunan bir kart olmalıdır).
func (s *DeckService) RemoveCard(ctx context.Context, userID, deckID, cardID uint) (string, error) {
	var message string
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		deck, err := s.lockDeck(ctx, tx, userID, deckID)
		if err != nil {
			return err
		}
		deckCardRepoTx := repositories.NewDeckCardRepositoryTx(tx)

		deckCard, err := deckCardRepoTx.FindForUpdate(ctx, deck.ID, cardID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardNotInDeck
			}
			return err
		}

		card, err := repositories.NewCardRepositoryTx(tx).FindByID(ctx, cardID)
		if err != nil {
			return err
		}

		deckCard.Quantity--
		if deckCard.Quantity <= 0 {
			// Sıfır adet saklanmaz, satır silinir.
			if err := deckCardRepoTx.Delete(ctx, deck.ID, cardID); err != nil {
				return err
			}
			if deck.CoverCardID != nil && *deck.CoverCardID == cardID {
				updates := map[string]interface{}{"cover_card_id": nil}
				if err := repositories.NewDeckRepositoryTx(tx).Update(ctx, deck.ID, updates); err != nil {
					return err
				}
			}
		} else {
			if err := deckCardRepoTx.Save(ctx, deckCard); err != nil {
				return err
			}
		}

		message = fmt.Sprintf("%s kartı %s destesinden çıkarıldı.", card.Name, deck.Name)
		return nil
	})

	if txErr != nil {
		return "", s.mapEngineError(txErr, "RemoveCard", deckID, cardID)
	}
	return message, nil
}

// SetCoverCard destenin kapak kartını belirler. Kart destede değilse reddedilir;
// aynı kartla tekrar çağrılması no-op'tur.
func (s *DeckService) SetCoverCard(ctx context.Context, userID, deckID, cardID uint) error {
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		deck, err := s.lockDeck(ctx, tx, userID, deckID)
		if err != nil {
			return err
		}
		// Persist öncesi invariant: kapak kartı destede olmalı.
		if _, err := repositories.NewDeckCardRepositoryTx(tx).Find(ctx, deck.ID, cardID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardNotInDeck
			}
			return err
		}
		if deck.CoverCardID != nil && *deck.CoverCardID == cardID {
			return nil
		}
		updates := map[string]interface{}{"cover_card_id": cardID}
		return repositories.NewDeckRepositoryTx(tx).Update(ctx, deck.ID, updates)
	})

	if txErr != nil {
		return s.mapEngineError(txErr, "SetCoverCard", deckID, cardID)
	}
	return nil
}

// ClearDeck destedeki tüm kartları tek işlemle siler; boş destede no-op.
func (s *DeckService) ClearDeck(ctx context.Context, userID, deckID uint) error {
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		deck, err := s.lockDeck(ctx, tx, userID, deckID)
		if err != nil {
			return err
		}
		deckCardRepoTx := repositories.NewDeckCardRepositoryTx(tx)
		if err := deckCardRepoTx.DeleteAllForDeck(ctx, deck.ID); err != nil {
			return err
		}
		if deck.CoverCardID != nil {
			updates := map[string]interface{}{"cover_card_id": nil}
			return repositories.NewDeckRepositoryTx(tx).Update(ctx, deck.ID, updates)
		}
		return nil
	})

	if txErr != nil {
		return s.mapEngineError(txErr, "ClearDeck", deckID, 0)
	}
	return nil
}

// --- Yardımcılar ---

// lockDeck desteyi FOR UPDATE ile kilitleyip sahiplik kontrolü yapar.
// Aynı desteye eşzamanlı mutasyonlar bu kilitte sıralanır.
func (s *DeckService) lockDeck(ctx context.Context, tx *gorm.DB, userID, deckID uint) (*models.Deck, error) {
	var deck models.Deck
	err := repositories.WithRowLock(tx.WithContext(ctx)).First(&deck, deckID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeckNotFound
		}
		return nil, err
	}
	if deck.UserID != userID {
		configslog.Log.Warn("Yetkisiz deste mutasyon denemesi",
			zap.Uint("deckID", deckID), zap.Uint("userID", userID), zap.Uint("ownerID", deck.UserID))
		return nil, ErrDeckForbidden
	}
	return &deck, nil
}

// mapEngineError beklenen servis hatalarını olduğu gibi geçirir,
// kalanını loglayıp generic hataya çevirir.
func (s *DeckService) mapEngineError(err error, op string, deckID, cardID uint) error {
	if isDeckServiceError(err) || errors.Is(err, models.ErrInvariantViolation) {
		return err
	}
	configslog.Log.Error("Deste motoru hatası",
		zap.String("op", op), zap.Uint("deckID", deckID), zap.Uint("cardID", cardID), zap.Error(err))
	return ErrDeckOpFailed
}

func isDeckServiceError(err error) bool {
	var dse DeckServiceError
	return errors.As(err, &dse)
}

var _ IDeckService = (*DeckService)(nil)
