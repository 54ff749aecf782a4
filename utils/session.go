package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session anahtarları.
const (
	SessionKeyUserID   = "user_id"
	SessionKeyUserName = "user_name"
)

// ErrSessionStore session store'un context'te bulunamaması.
var ErrSessionStore = errors.New("session store bulunamadı")

// SessionStart istekteki session'ı açar. Store, router middleware'i
// tarafından c.Locals("session_store") içine konur.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStore
	}
	return store.Get(c)
}

// GetUserIDFromSession oturumdaki kullanıcı ID'sini döndürür.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	userID, ok := sess.Get(SessionKeyUserID).(uint)
	if !ok || userID == 0 {
		return 0, errors.New("oturumda kullanıcı yok")
	}
	return userID, nil
}

// SetUserSession giriş sonrası oturum bilgilerini yazar.
func SetUserSession(sess *session.Session, userID uint, userName string) error {
	sess.Set(SessionKeyUserID, userID)
	sess.Set(SessionKeyUserName, userName)
	return sess.Save()
}

// DestroySession oturumu tamamen sonlandırır (logout).
func DestroySession(sess *session.Session) error {
	return sess.Destroy()
}
