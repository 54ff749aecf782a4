package main

import (
	"os"

	"ygodeck.link/configs/configsdatabase"
	"ygodeck.link/configs/configslog"
	"ygodeck.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env opsiyoneldir; ortam değişkenleri dışarıdan da verilebilir.
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main_layout",
	})

	routes.SetupRoutes(app)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	configslog.SLog.Infof("Uygulama %s portunda başlatılıyor...", port)
	if err := app.Listen(":" + port); err != nil {
		configslog.Log.Fatal("Uygulama başlatılamadı", zap.Error(err))
	}
}
