package seeders

import (
	"errors"
	"os"

	"ygodeck.link/configs/configslog"
	"ygodeck.link/models"
	"ygodeck.link/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedSystemUser ortam değişkenleriyle tanımlanan sistem kullanıcısını
// oluşturur veya parolasını günceller. Değişkenler verilmezse atlanır.
func SeedSystemUser(db *gorm.DB) error {
	username := os.Getenv("SYSTEM_USER_NAME")
	email := os.Getenv("SYSTEM_USER_EMAIL")
	password := os.Getenv("SYSTEM_USER_PASSWORD")

	if username == "" || email == "" || password == "" {
		configslog.SLog.Info("Sistem kullanıcısı ortam değişkenleri tanımlı değil, seed adımı atlanıyor.")
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		configslog.Log.Error("Sistem kullanıcısı parolası hashlenemedi", zap.Error(err))
		return err
	}

	var existing models.User
	result := db.Where("username = ?", username).First(&existing)
	if result.Error == nil {
		configslog.SLog.Infof("Sistem kullanıcısı '%s' mevcut, parola güncelleniyor.", username)
		return db.Model(&existing).Updates(map[string]interface{}{
			"password_hash": hash,
			"email":         email,
		}).Error
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Sistem kullanıcısı kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		AvatarURL:    models.DefaultAvatarURL,
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Sistem kullanıcısı oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Sistem kullanıcısı '%s' başarıyla oluşturuldu (ID: %d).", username, user.ID)
	return nil
}
