package repositories

import (
	"context"
	"errors"

	"ygodeck.link/configs/configsdatabase"
	"ygodeck.link/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IDeckCardRepository deste-kart ilişki satırları için arayüz.
// Okuma-kontrol-yazma dizileri transaction içinde FindForUpdate ile
// kilitlenmelidir; aksi halde eşzamanlı eklemeler limitleri aşabilir.
type IDeckCardRepository interface {
	Find(ctx context.Context, deckID, cardID uint) (*models.DeckCard, error)
	FindForUpdate(ctx context.Context, deckID, cardID uint) (*models.DeckCard, error)
	FindAllByDeckID(ctx context.Context, deckID uint) ([]models.DeckCard, error)
	Create(ctx context.Context, deckCard *models.DeckCard) error
	Save(ctx context.Context, deckCard *models.DeckCard) error
	Delete(ctx context.Context, deckID, cardID uint) error
	DeleteAllForDeck(ctx context.Context, deckID uint) error
	SumQuantities(ctx context.Context, deckID uint, extraDeck bool) (int, error)
}

// DeckCardRepository IDeckCardRepository'nin GORM implementasyonu.
type DeckCardRepository struct {
	db *gorm.DB
}

// NewDeckCardRepository global bağlantı ile repository oluşturur.
func NewDeckCardRepository() IDeckCardRepository {
	return NewDeckCardRepositoryTx(configsdatabase.GetDB())
}

// NewDeckCardRepositoryTx verilen transaction ile repository oluşturur.
func NewDeckCardRepositoryTx(tx *gorm.DB) IDeckCardRepository {
	return &DeckCardRepository{db: tx}
}

func (r *DeckCardRepository) Find(ctx context.Context, deckID, cardID uint) (*models.DeckCard, error) {
	return r.find(ctx, deckID, cardID, false)
}

// FindForUpdate satırı SELECT ... FOR UPDATE ile kilitleyerek getirir.
func (r *DeckCardRepository) FindForUpdate(ctx context.Context, deckID, cardID uint) (*models.DeckCard, error) {
	return r.find(ctx, deckID, cardID, true)
}

func (r *DeckCardRepository) find(ctx context.Context, deckID, cardID uint, lock bool) (*models.DeckCard, error) {
	var deckCard models.DeckCard
	query := r.db.WithContext(ctx)
	if lock {
		query = WithRowLock(query)
	}
	err := query.Where("deck_id = ? AND card_id = ?", deckID, cardID).First(&deckCard).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deckCard, nil
}

func (r *DeckCardRepository) FindAllByDeckID(ctx context.Context, deckID uint) ([]models.DeckCard, error) {
	var deckCards []models.DeckCard
	err := r.db.WithContext(ctx).
		Preload("Card").
		Where("deck_id = ?", deckID).
		Find(&deckCards).Error
	return deckCards, err
}

// Create yeni satır ekler. İlişkili Deck/Card kayıtlarına dokunulmaz.
func (r *DeckCardRepository) Create(ctx context.Context, deckCard *models.DeckCard) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(deckCard).Error
}

// Save mevcut satırın quantity'sini günceller (BeforeSave hook'u çalışır).
func (r *DeckCardRepository) Save(ctx context.Context, deckCard *models.DeckCard) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(deckCard).Error
}

func (r *DeckCardRepository) Delete(ctx context.Context, deckID, cardID uint) error {
	result := r.db.WithContext(ctx).
		Where("deck_id = ? AND card_id = ?", deckID, cardID).
		Delete(&models.DeckCard{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllForDeck destenin tüm satırlarını tek sorguda siler; boş destede no-op.
func (r *DeckCardRepository) DeleteAllForDeck(ctx context.Context, deckID uint) error {
	return r.db.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Delete(&models.DeckCard{}).Error
}

// SumQuantities destedeki main (extraDeck=false) veya extra (true) kopyaların
// toplamını döndürür.
func (r *DeckCardRepository) SumQuantities(ctx context.Context, deckID uint, extraDeck bool) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.DeckCard{}).
		Joins("JOIN cards ON cards.id = deck_cards.card_id").
		Where("deck_cards.deck_id = ? AND cards.is_extra_deck = ?", deckID, extraDeck).
		Select("COALESCE(SUM(deck_cards.quantity), 0)").
		Scan(&total).Error
	return int(total), err
}

var _ IDeckCardRepository = (*DeckCardRepository)(nil)
