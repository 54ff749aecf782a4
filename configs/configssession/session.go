package configssession

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

var store *session.Store

// SetupSession session store'u oluşturur (in-memory storage).
// Cookie tabanlı oturum; 24 saat sonra düşer.
func SetupSession() *session.Store {
	if store != nil {
		return store
	}
	store = session.New(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     24 * time.Hour,
	})
	return store
}

// GetStore mevcut store'u döndürür; yoksa oluşturur.
func GetStore() *session.Store {
	return SetupSession()
}
