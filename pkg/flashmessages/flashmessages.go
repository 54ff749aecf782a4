package flashmessages

import (
	"github.com/gofiber/fiber/v2"

	"ygodeck.link/utils"
)

// Flash mesaj session anahtarları.
const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
)

// SetFlashMessage bir sonraki istekte gösterilmek üzere mesaj kaydeder.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessage mesajı okur ve session'dan siler (tek kullanımlık).
func GetFlashMessage(c *fiber.Ctx, key string) string {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return ""
	}
	msg, ok := sess.Get(key).(string)
	if !ok || msg == "" {
		return ""
	}
	sess.Delete(key)
	_ = sess.Save()
	return msg
}
