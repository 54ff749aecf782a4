package models

// DefaultAvatarURL yeni kullanıcılar için varsayılan profil görseli.
const DefaultAvatarURL = "/static/images/default_avatar.svg"

// User bir kullanıcı hesabıdır. Desteler kullanıcıya aittir;
// kullanıcı silinince desteleri de silinir (servis katmanında transaction ile).
type User struct {
	BaseModel
	Username     string `gorm:"type:varchar(20);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:text;not null"`
	Email        string `gorm:"type:varchar(50);uniqueIndex;not null"`
	AvatarURL    string `gorm:"type:varchar(500);not null;default:'/static/images/default_avatar.svg'"`

	Decks []Deck `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
