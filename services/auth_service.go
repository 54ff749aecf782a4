package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ygodeck.link/configs/configsdatabase"
	"ygodeck.link/configs/configslog"
	"ygodeck.link/models"
	"ygodeck.link/repositories"
	"ygodeck.link/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthServiceError hesap işlemlerine özel servis hataları.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrUsernameTaken         AuthServiceError = "bu kullanıcı adı zaten alınmış"
	ErrEmailTaken            AuthServiceError = "bu e-posta adresi zaten kayıtlı"
	ErrInvalidCredentials    AuthServiceError = "kullanıcı adı veya parola hatalı"
	ErrUserNotFound          AuthServiceError = "kullanıcı bulunamadı"
	ErrAuthInvalidInput      AuthServiceError = "geçersiz girdi verisi"
	ErrRegistrationFailed    AuthServiceError = "kayıt oluşturulamadı"
	ErrProfileUpdateFailed   AuthServiceError = "profil güncellenemedi"
	ErrAccountDeletionFailed AuthServiceError = "hesap silinemedi"
)

// Kayıt validasyon sınırları (orijinal form kurallarıyla aynı).
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MinPasswordLength = 6
)

// IAuthService hesap yönetimi işlemleri için arayüz.
type IAuthService interface {
	Register(ctx context.Context, username, password, email string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetUserByID(ctx context.Context, userID uint) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, newUsername, newEmail, newAvatarURL, confirmPassword string) (*models.User, error)
	DeleteUser(ctx context.Context, userID uint) error
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	userRepo repositories.IUserRepository
	db       *gorm.DB
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
		db:       configsdatabase.GetDB(),
	}
}

// NewAuthServiceWithDB test ortamı için bağımlılık enjeksiyonlu constructor.
func NewAuthServiceWithDB(db *gorm.DB) IAuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepositoryTx(db),
		db:       db,
	}
}

// validateRegistration temel alan kontrollerini yapar.
func validateRegistration(username, password, email string) error {
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return fmt.Errorf("%w: kullanıcı adı %d-%d karakter olmalı", ErrAuthInvalidInput, MinUsernameLength, MaxUsernameLength)
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: parola en az %d karakter olmalı", ErrAuthInvalidInput, MinPasswordLength)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: geçersiz e-posta adresi", ErrAuthInvalidInput)
	}
	return nil
}

// Register yeni bir kullanıcı hesabı oluşturur. Parola bcrypt ile
// hash'lenir, düz metin asla saklanmaz.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	if err := validateRegistration(username, password, email); err != nil {
		return nil, err
	}

	// Insert öncesi kontrol; unique index son sözü söyler.
	if taken, err := s.userRepo.IsUsernameTaken(ctx, username, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}
	if taken, err := s.userRepo.IsEmailTaken(ctx, email, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		configslog.Log.Error("Parola hash'lenemedi", zap.Error(err))
		return nil, ErrRegistrationFailed
	}

	user := models.User{
		Username:     username,
		PasswordHash: hashed,
		Email:        email,
		AvatarURL:    models.DefaultAvatarURL,
	}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Kontrol ile insert arasında yarış; unique index yakaladı.
			return nil, ErrUsernameTaken
		}
		configslog.Log.Error("Kullanıcı oluşturulamadı", zap.String("username", username), zap.Error(err))
		return nil, ErrRegistrationFailed
	}

	configslog.SLog.Infof("Yeni kullanıcı kaydedildi: %s (ID %d)", user.Username, user.ID)
	return &user, nil
}

// Authenticate kullanıcı adı ve parola ile giriş doğrulaması yapar.
// Kullanıcının var olup olmadığı hata mesajından anlaşılamaz.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		configslog.Log.Error("Authenticate: kullanıcı sorgusu hatası", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUserByID kullanıcıyı ID ile getirir.
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile profil alanlarını günceller. Her değişiklik öncesi
// confirmPassword ile yeniden doğrulama yapılır.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, newUsername, newEmail, newAvatarURL, confirmPassword string) (*models.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(confirmPassword, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if newUsername == "" {
		newUsername = user.Username
	}
	if newEmail == "" {
		newEmail = user.Email
	}
	if newAvatarURL == "" {
		newAvatarURL = user.AvatarURL
	}
	if len(newUsername) < MinUsernameLength || len(newUsername) > MaxUsernameLength {
		return nil, fmt.Errorf("%w: kullanıcı adı %d-%d karakter olmalı", ErrAuthInvalidInput, MinUsernameLength, MaxUsernameLength)
	}

	// Başka bir kullanıcıyla çakışma kontrolü (kendisi hariç).
	if taken, err := s.userRepo.IsUsernameTaken(ctx, newUsername, userID); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}
	if taken, err := s.userRepo.IsEmailTaken(ctx, newEmail, userID); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	updates := map[string]interface{}{
		"username":   newUsername,
		"email":      newEmail,
		"avatar_url": newAvatarURL,
	}
	if err := s.userRepo.Update(ctx, userID, updates); err != nil {
		configslog.Log.Error("Profil güncellenemedi", zap.Uint("userID", userID), zap.Error(err))
		return nil, ErrProfileUpdateFailed
	}

	user.Username = newUsername
	user.Email = newEmail
	user.AvatarURL = newAvatarURL
	return user, nil
}

// DeleteUser hesabı ve sahip olduğu her şeyi tek transaction içinde siler:
// önce destelerin deck_cards satırları, sonra desteler, sonra kullanıcı.
func (s *AuthService) DeleteUser(ctx context.Context, userID uint) error {
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		deckRepoTx := repositories.NewDeckRepositoryTx(tx)
		deckCardRepoTx := repositories.NewDeckCardRepositoryTx(tx)
		userRepoTx := repositories.NewUserRepositoryTx(tx)

		decks, err := deckRepoTx.FindAllByUserID(ctx, userID)
		if err != nil {
			return err
		}
		for _, deck := range decks {
			if err := deckCardRepoTx.DeleteAllForDeck(ctx, deck.ID); err != nil {
				return err
			}
			if err := deckRepoTx.Delete(ctx, deck.ID); err != nil {
				return err
			}
		}

		if err := userRepoTx.Delete(ctx, userID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, ErrUserNotFound) {
			return txErr
		}
		configslog.Log.Error("Hesap silinemedi", zap.Uint("userID", userID), zap.Error(txErr))
		return ErrAccountDeletionFailed
	}

	configslog.SLog.Infof("Kullanıcı ve desteleri silindi: ID %d", userID)
	return nil
}

var _ IAuthService = (*AuthService)(nil)
