package handlers

import (
	"errors"
	"fmt"

	"ygodeck.link/configs/configslog"
	"ygodeck.link/pkg/flashmessages"
	"ygodeck.link/pkg/renderer"
	"ygodeck.link/services"
	"ygodeck.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler kayıt/giriş/profil işlemleri için handler.
type AuthHandler struct {
	service services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{service: services.NewAuthService()}
}

// ShowLogin giriş formunu gösterir.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return renderer.Render(c, "auth/login", "layouts/main_layout", fiber.Map{
		"Title": "Giriş Yap",
	})
}

// Login kullanıcı girişini doğrular ve oturum açar.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := h.service.Authenticate(c.UserContext(), username, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			configslog.Log.Error("Login error", zap.String("username", username), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kullanıcı adı veya parola hatalı.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: session başlatılamadı", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	if err := utils.SetUserSession(sess, user.ID, user.Username); err != nil {
		configslog.Log.Error("Login: session kaydedilemedi", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, fmt.Sprintf("Tekrar hoş geldin %s!", user.Username))
	return c.Redirect("/panel/decks", fiber.StatusFound)
}

// ShowRegister kayıt formunu gösterir.
func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	return renderer.Render(c, "auth/register", "layouts/main_layout", fiber.Map{
		"Title": "Kayıt Ol",
	})
}

// Register yeni kullanıcı oluşturur ve oturum açar.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	passwordConfirm := c.FormValue("password_confirm")
	email := c.FormValue("email")

	if password != passwordConfirm {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Parolalar eşleşmiyor.")
		return c.Redirect("/auth/register", fiber.StatusSeeOther)
	}

	user, err := h.service.Register(c.UserContext(), username, password, email)
	if err != nil {
		var authErr services.AuthServiceError
		if !errors.As(err, &authErr) {
			configslog.Log.Error("Register error", zap.String("username", username), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/auth/register", fiber.StatusSeeOther)
	}

	sess, sessErr := utils.SessionStart(c)
	if sessErr == nil {
		_ = utils.SetUserSession(sess, user.ID, user.Username)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, fmt.Sprintf("Hoş geldin %s!", user.Username))
	return c.Redirect("/panel/decks", fiber.StatusFound)
}

// Logout oturumu sonlandırır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess, err := utils.SessionStart(c); err == nil {
		_ = utils.DestroySession(sess)
	}
	return c.Redirect("/auth/login", fiber.StatusFound)
}

// Profile profil sayfasını gösterir.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	user, err := h.service.GetUserByID(c.UserContext(), userID)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Profil bilgileri alınamadı.")
		return c.Redirect("/panel/decks", fiber.StatusSeeOther)
	}
	return renderer.Render(c, "auth/profile", "layouts/main_layout", fiber.Map{
		"Title": "Profilim",
		"User":  user,
	})
}

// DeleteAccount hesabı ve tüm desteleri kalıcı olarak siler.
// Silme öncesi mevcut parola ile doğrulama yapılır.
func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	confirmPassword := c.FormValue("confirm_password")

	user, err := h.service.GetUserByID(c.UserContext(), userID)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Hesap bilgileri alınamadı.")
		return c.Redirect("/auth/profile", fiber.StatusSeeOther)
	}
	if _, err := h.service.Authenticate(c.UserContext(), user.Username, confirmPassword); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Parola doğrulanamadı, hesap silinmedi.")
		return c.Redirect("/auth/profile", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteUser(c.UserContext(), userID); err != nil {
		configslog.Log.Error("DeleteAccount error", zap.Uint("userID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/auth/profile", fiber.StatusSeeOther)
	}

	if sess, sessErr := utils.SessionStart(c); sessErr == nil {
		_ = utils.DestroySession(sess)
	}
	return c.Redirect("/auth/login", fiber.StatusFound)
}

// UpdateProfile profil alanlarını günceller; değişiklik için mevcut parola
// ile yeniden doğrulama zorunludur.
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	newUsername := c.FormValue("username")
	newEmail := c.FormValue("email")
	newAvatarURL := c.FormValue("avatar_url")
	confirmPassword := c.FormValue("confirm_password")

	user, err := h.service.UpdateProfile(c.UserContext(), userID, newUsername, newEmail, newAvatarURL, confirmPassword)
	if err != nil {
		var authErr services.AuthServiceError
		if !errors.As(err, &authErr) {
			configslog.Log.Error("UpdateProfile error", zap.Uint("userID", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/auth/profile", fiber.StatusSeeOther)
	}

	// Kullanıcı adı değişmiş olabilir; oturumu tazele.
	if sess, sessErr := utils.SessionStart(c); sessErr == nil {
		_ = utils.SetUserSession(sess, user.ID, user.Username)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Profil güncellendi.")
	return c.Redirect("/auth/profile", fiber.StatusFound)
}
