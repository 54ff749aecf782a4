package models

// Ban listesi durumları (katalogdaki banlist_info.ban_tcg alanı).
const (
	BanStatusBanned      = "Banned"
	BanStatusLimited     = "Limited"
	BanStatusSemiLimited = "Semi-Limited"
)

// MaxCopiesPerCard bir kartın destede bulunabileceği azami kopya sayısı.
const MaxCopiesPerCard = 3

// extraDeckTypes extra deck'e giden kart türleri. Diğer tüm türler
// (Spell/Trap/Normal/Effect varyantları, Token dahil) main deck'e gider.
var extraDeckTypes = map[string]bool{
	"Fusion Monster":                  true,
	"Synchro Monster":                 true,
	"Synchro Tuner Monster":           true,
	"Synchro Pendulum Effect Monster": true,
	"XYZ Monster":                     true,
	"XYZ Pendulum Effect Monster":     true,
	"Link Monster":                    true,
	"Pendulum Effect Fusion Monster":  true,
}

// Card katalogdan alınan bir kartın yerel kopyasıdır. Bir destede ilk kez
// kullanıldığında oluşturulur, katalog kimliği (CatalogID) ile tekilleştirilir.
// Kart hiçbir deste işleminin yan etkisi olarak silinmez.
type Card struct {
	BaseModel
	CatalogID   int64  `gorm:"uniqueIndex;not null"`
	Name        string `gorm:"type:varchar(150);not null;index"`
	Type        string `gorm:"type:varchar(50);not null"`
	Attribute   string `gorm:"type:varchar(50)"`
	Race        string `gorm:"type:varchar(50)"`
	Level       *int
	Attack      *int
	Defense     *int
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"type:varchar(500);not null"`
	CopyLimit   int    `gorm:"column:copy_limit;not null"`
	IsExtraDeck bool   `gorm:"not null;default:false"`
}

// CopyLimitForBanStatus ban listesi durumundan kopya limitini türetir.
// Bilinmeyen veya boş durumlar 3 sayılır.
func CopyLimitForBanStatus(status string) int {
	switch status {
	case BanStatusBanned:
		return 0
	case BanStatusLimited:
		return 1
	case BanStatusSemiLimited:
		return 2
	default:
		return MaxCopiesPerCard
	}
}

// IsExtraDeckType kart türünün extra deck'e ait olup olmadığını döndürür.
func IsExtraDeckType(cardType string) bool {
	return extraDeckTypes[cardType]
}

// EffectiveCopyLimit kartın destede tutulabilecek azami kopya sayısı
// (kopya limiti ile global 3 sınırının küçüğü).
func (c *Card) EffectiveCopyLimit() int {
	if c.CopyLimit < MaxCopiesPerCard {
		return c.CopyLimit
	}
	return MaxCopiesPerCard
}
