package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"ygodeck.link/pkg/flashmessages"
)

// AuthMiddleware giriş yapılmış bir oturum gerektirir.
// Router middleware'i userID'yi session'dan çözüp locals'a koyar;
// burada sadece varlığı kontrol edilir.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Bu sayfa için giriş yapmalısınız.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// GuestMiddleware sadece oturumu olmayan kullanıcılara izin verir
// (login/register sayfaları).
func GuestMiddleware(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		return c.Redirect("/panel/decks", fiber.StatusSeeOther)
	}
	return c.Next()
}

// APIAuthMiddleware JSON uçları için oturum zorunluluğu; redirect yerine 401 döner.
func APIAuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum gerekli"})
	}
	return c.Next()
}
