package repositories

import (
	"context"
	"errors"

	"ygodeck.link/configs/configsdatabase"
	"ygodeck.link/models"

	"gorm.io/gorm"
)

// IUserRepository kullanıcı veritabanı işlemleri için arayüz.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	IsUsernameTaken(ctx context.Context, username string, excludeUserID uint) (bool, error)
	IsEmailTaken(ctx context.Context, email string, excludeUserID uint) (bool, error)
}

// UserRepository IUserRepository'nin GORM implementasyonu.
type UserRepository struct {
	base IBaseRepository[models.User]
	db   *gorm.DB
}

// NewUserRepository global bağlantı ile repository oluşturur.
func NewUserRepository() IUserRepository {
	return NewUserRepositoryTx(configsdatabase.GetDB())
}

// NewUserRepositoryTx verilen transaction/bağlantı ile repository oluşturur.
func NewUserRepositoryTx(tx *gorm.DB) IUserRepository {
	base := NewBaseRepository[models.User](tx)
	base.SetAllowedSortColumns([]string{"id", "created_at", "username", "email"})
	return &UserRepository{base: base, db: tx}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.base.Create(ctx, user)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return r.base.FindByID(ctx, id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	return r.base.Update(ctx, id, data)
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}

// IsUsernameTaken kullanıcı adının başka bir kullanıcıda olup olmadığını kontrol eder.
// excludeUserID sıfırdan büyükse o kullanıcı kontrol dışı bırakılır (profil güncelleme).
func (r *UserRepository) IsUsernameTaken(ctx context.Context, username string, excludeUserID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username)
	if excludeUserID > 0 {
		query = query.Where("id <> ?", excludeUserID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) IsEmailTaken(ctx context.Context, email string, excludeUserID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email)
	if excludeUserID > 0 {
		query = query.Where("id <> ?", excludeUserID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

var _ IUserRepository = (*UserRepository)(nil)
