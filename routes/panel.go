package routes

import (
	panel_handlers "ygodeck.link/handlers/panel"
	"ygodeck.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /panel altındaki rotaları tanımlar.
// Tümü giriş yapılmış oturum gerektirir.
func registerPanelRoutes(app *fiber.App) {
	deckHandler := panel_handlers.NewPanelDeckHandler()
	searchHandler := panel_handlers.NewPanelSearchHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(middlewares.AuthMiddleware)

	// --- Desteler ---
	panelGroup.Get("/decks", deckHandler.ListDecks)                // GET  /panel/decks
	panelGroup.Get("/decks/create", deckHandler.ShowCreateDeck)    // GET  /panel/decks/create
	panelGroup.Post("/decks/create", deckHandler.CreateDeck)       // POST /panel/decks/create
	panelGroup.Get("/decks/:id", deckHandler.ShowDeck)             // GET  /panel/decks/{id}
	panelGroup.Post("/decks/update/:id", deckHandler.UpdateDeck)   // POST /panel/decks/update/{id}
	panelGroup.Post("/decks/delete/:id", deckHandler.DeleteDeck)   // POST /panel/decks/delete/{id}
	panelGroup.Delete("/decks/delete/:id", deckHandler.DeleteDeck) // DELETE (JS için)

	// --- Deste kart işlemleri ---
	panelGroup.Post("/decks/:id/cards/add", deckHandler.AddCard)       // POST /panel/decks/{id}/cards/add
	panelGroup.Post("/decks/:id/cards/remove", deckHandler.RemoveCard) // POST /panel/decks/{id}/cards/remove
	panelGroup.Post("/decks/:id/cover", deckHandler.SetCoverCard)      // POST /panel/decks/{id}/cover
	panelGroup.Post("/decks/:id/clear", deckHandler.ClearDeck)         // POST /panel/decks/{id}/clear

	// --- Katalog araması ---
	panelGroup.Get("/cards/search", searchHandler.SearchCards) // GET /panel/cards/search
}
