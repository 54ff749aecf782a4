package repositories

import (
	"context"
	"errors"

	"ygodeck.link/configs/configsdatabase"
	"ygodeck.link/models"

	"gorm.io/gorm"
)

// ICardRepository yerel kart projeksiyonu için veritabanı işlemleri.
type ICardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	FindByID(ctx context.Context, id uint) (*models.Card, error)
	FindByCatalogID(ctx context.Context, catalogID int64) (*models.Card, error)
	FindByName(ctx context.Context, name string) (*models.Card, error)
	GetCount(ctx context.Context) (int64, error)
}

// CardRepository ICardRepository'nin GORM implementasyonu.
type CardRepository struct {
	base IBaseRepository[models.Card]
	db   *gorm.DB
}

// NewCardRepository global bağlantı ile repository oluşturur.
func NewCardRepository() ICardRepository {
	return NewCardRepositoryTx(configsdatabase.GetDB())
}

// NewCardRepositoryTx verilen transaction/bağlantı ile repository oluşturur.
func NewCardRepositoryTx(tx *gorm.DB) ICardRepository {
	base := NewBaseRepository[models.Card](tx)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name"})
	return &CardRepository{base: base, db: tx}
}

func (r *CardRepository) Create(ctx context.Context, card *models.Card) error {
	return r.base.Create(ctx, card)
}

func (r *CardRepository) FindByID(ctx context.Context, id uint) (*models.Card, error) {
	return r.base.FindByID(ctx, id)
}

// FindByCatalogID kartı katalog kimliğiyle bulur; yoksa ErrNotFound.
func (r *CardRepository) FindByCatalogID(ctx context.Context, catalogID int64) (*models.Card, error) {
	var card models.Card
	err := r.db.WithContext(ctx).Where("catalog_id = ?", catalogID).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// FindByName kartı adıyla bulur; katalog kimliği tutmayan kayıtlar için
// yedek arama yoludur.
func (r *CardRepository) FindByName(ctx context.Context, name string) (*models.Card, error) {
	var card models.Card
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) GetCount(ctx context.Context) (int64, error) {
	return r.base.GetCount(ctx)
}

var _ ICardRepository = (*CardRepository)(nil)
