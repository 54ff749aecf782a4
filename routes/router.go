package routes

import (
	"ygodeck.link/configs/configssession"
	"ygodeck.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSessionAndLocals())

	app.Static("/static", "./static")

	registerAuthRoutes(app)
	registerPanelRoutes(app)
	registerAPIRoutes(app)

	app.Get("/", rootRedirector)

	// Eşleşmeyen tüm rotalar en sonda yakalanır.
	app.Use(notFoundHandler)
}

// initializeSessionAndLocals session store'u ve oturum bilgilerini
// her istekte locals'a koyar. Servis katmanı kullanıcıyı açık parametre
// olarak alır; session çözümleme sadece burada yapılır.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configssession.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, idErr := utils.GetUserIDFromSession(sess); idErr == nil {
			c.Locals("userID", userID)
		}
		if userName, ok := sess.Get(utils.SessionKeyUserName).(string); ok {
			c.Locals("userName", userName)
		}
		return c.Next()
	}
}

func rootRedirector(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		return c.Redirect("/panel/decks", fiber.StatusFound)
	}
	return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	if accepts == "application/json" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "kaynak bulunamadı"})
	}
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"}, "layouts/error_layout")
}
