package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrInvariantViolation veri katmanı invariant kontrolünün hatasıdır.
// Normalde servis katmanı bu duruma hiç düşürmez; bu kontrol motorun
// atlandığı durumlara karşı son savunma hattıdır.
var ErrInvariantViolation = errors.New("veri katmanı invariant ihlali")

// DeckCard bir (deste, kart) çiftinin destedeki kopya sayısıdır.
// Quantity 0 olan satır saklanmaz, silinir.
type DeckCard struct {
	DeckID   uint `gorm:"primaryKey;autoIncrement:false"`
	CardID   uint `gorm:"primaryKey;autoIncrement:false"`
	Quantity int  `gorm:"not null"`

	Deck Deck `gorm:"foreignKey:DeckID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Card Card `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// BeforeSave quantity'nin [0, min(kart limiti, 3)] aralığında olduğunu
// hangi kod yolundan gelirse gelsin garanti eder.
func (dc *DeckCard) BeforeSave(tx *gorm.DB) error {
	var card Card
	if dc.Card.ID == dc.CardID && dc.CardID != 0 {
		card = dc.Card
	} else {
		if err := tx.First(&card, dc.CardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: kart bulunamadı (card_id=%d)", ErrInvariantViolation, dc.CardID)
			}
			return err
		}
	}

	max := card.EffectiveCopyLimit()
	if dc.Quantity < 0 || dc.Quantity > max {
		return fmt.Errorf("%w: %s için geçersiz adet %d (izin verilen 0-%d)",
			ErrInvariantViolation, card.Name, dc.Quantity, max)
	}
	return nil
}
