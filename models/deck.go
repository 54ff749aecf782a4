package models

// Deste boyutu sınırları.
const (
	MaxMainDeckSize  = 60 // extra deck dışı kartların toplam kopya sınırı
	MaxExtraDeckSize = 15 // extra deck kartlarının toplam kopya sınırı
)

// Deck bir kullanıcıya ait destedir. CoverCardID, set edildiyse destede
// bulunan bir karta işaret etmek zorundadır; bu kural servis katmanında
// persist öncesi kontrol edilir.
type Deck struct {
	BaseModel
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"type:varchar(50);not null"`
	Description string `gorm:"type:text"`
	CoverCardID *uint  `gorm:"index"`

	User      User       `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CoverCard *Card      `gorm:"foreignKey:CoverCardID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	DeckCards []DeckCard `gorm:"foreignKey:DeckID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// MainDeckCount destedeki extra deck dışı kopyaların toplamını döndürür.
// DeckCards yüklenmiş olmalıdır.
func (d *Deck) MainDeckCount() int {
	total := 0
	for _, dc := range d.DeckCards {
		if !dc.Card.IsExtraDeck {
			total += dc.Quantity
		}
	}
	return total
}

// ExtraDeckCount destedeki extra deck kopyalarının toplamını döndürür.
func (d *Deck) ExtraDeckCount() int {
	total := 0
	for _, dc := range d.DeckCards {
		if dc.Card.IsExtraDeck {
			total += dc.Quantity
		}
	}
	return total
}
