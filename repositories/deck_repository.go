package repositories

import (
	"context"
	"errors"

	"ygodeck.link/configs/configsdatabase"
	"ygodeck.link/models"
	"ygodeck.link/pkg/queryparams"

	"gorm.io/gorm"
)

// IDeckRepository deste veritabanı işlemleri için arayüz.
type IDeckRepository interface {
	Create(ctx context.Context, deck *models.Deck) error
	FindByID(ctx context.Context, id uint) (*models.Deck, error)
	FindByIDWithCards(ctx context.Context, id uint) (*models.Deck, error)
	FindAllByUserIDPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Deck, int64, error)
	FindAllByUserID(ctx context.Context, userID uint) ([]models.Deck, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}

// DeckRepository IDeckRepository'nin GORM implementasyonu.
type DeckRepository struct {
	base IBaseRepository[models.Deck]
	db   *gorm.DB
}

// NewDeckRepository global bağlantı ile repository oluşturur.
func NewDeckRepository() IDeckRepository {
	return NewDeckRepositoryTx(configsdatabase.GetDB())
}

// NewDeckRepositoryTx verilen transaction/bağlantı ile repository oluşturur.
func NewDeckRepositoryTx(tx *gorm.DB) IDeckRepository {
	base := NewBaseRepository[models.Deck](tx)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name"})
	return &DeckRepository{base: base, db: tx}
}

func (r *DeckRepository) Create(ctx context.Context, deck *models.Deck) error {
	return r.base.Create(ctx, deck)
}

func (r *DeckRepository) FindByID(ctx context.Context, id uint) (*models.Deck, error) {
	return r.base.FindByID(ctx, id)
}

// FindByIDWithCards desteyi kartları ve kapak kartıyla birlikte getirir.
func (r *DeckRepository) FindByIDWithCards(ctx context.Context, id uint) (*models.Deck, error) {
	var deck models.Deck
	err := r.db.WithContext(ctx).
		Preload("DeckCards.Card").
		Preload("CoverCard").
		First(&deck, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deck, nil
}

// FindAllByUserIDPaginated kullanıcının destelerini sayfalayarak listeler.
func (r *DeckRepository) FindAllByUserIDPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Deck, int64, error) {
	var decks []models.Deck
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Deck{}).Where("user_id = ?", userID)
	if params.Name != "" {
		pattern := "%" + params.Name + "%"
		// ILIKE Postgres'e özgüdür; diğer dialektlerde LOWER ile eşlenir.
		if r.db.Dialector.Name() == "postgres" {
			query = query.Where("name ILIKE ?", pattern)
		} else {
			query = query.Where("LOWER(name) LIKE LOWER(?)", pattern)
		}
	}
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return decks, 0, nil
	}

	allowedSortColumns := map[string]bool{"id": true, "created_at": true, "name": true}
	sortBy := params.SortBy
	if !allowedSortColumns[sortBy] {
		sortBy = "created_at"
	}
	err := query.
		Preload("CoverCard").
		Order(sortBy + " " + params.OrderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&decks).Error
	return decks, totalCount, err
}

// FindAllByUserID kullanıcının tüm destelerini getirir (cascade silme için).
func (r *DeckRepository) FindAllByUserID(ctx context.Context, userID uint) ([]models.Deck, error) {
	var decks []models.Deck
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&decks).Error
	return decks, err
}

func (r *DeckRepository) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	return r.base.Update(ctx, id, data)
}

func (r *DeckRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}

func (r *DeckRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Deck{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

var _ IDeckRepository = (*DeckRepository)(nil)
