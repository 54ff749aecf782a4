package renderer

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"ygodeck.link/pkg/flashmessages"
)

// View'lara geçilen flash mesaj anahtarları.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// Render template'i layout ile render eder; session'daki flash mesajları
// ve oturum bilgilerini view verisine ekler.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data[FlashSuccessKeyView]; !ok {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashSuccessKey); msg != "" {
			data[FlashSuccessKeyView] = msg
		}
	}
	if _, ok := data[FlashErrorKeyView]; !ok {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashErrorKey); msg != "" {
			data[FlashErrorKeyView] = msg
		}
	}
	if userID, ok := c.Locals("userID").(uint); ok {
		data["CurrentUserID"] = userID
	}
	if userName, ok := c.Locals("userName").(string); ok {
		data["CurrentUserName"] = userName
	}

	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).Render(view, data, layout)
}
