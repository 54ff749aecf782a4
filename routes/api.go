package routes

import (
	api_handlers "ygodeck.link/handlers/api"
	"ygodeck.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes JSON API rotalarını tanımlar.
// HTML rotalarının aynı işlemleri yapan JSON varyantlarıdır.
func registerAPIRoutes(app *fiber.App) {
	deckHandler := api_handlers.NewAPIDeckHandler()

	apiGroup := app.Group("/api/v1")
	apiGroup.Use(middlewares.APIAuthMiddleware)

	apiGroup.Get("/cards/search", deckHandler.SearchCards)              // GET    /api/v1/cards/search
	apiGroup.Put("/decks/:id", deckHandler.RenameDeck)                  // PUT    /api/v1/decks/{id}
	apiGroup.Post("/decks/:id/cards", deckHandler.AddCard)              // POST   /api/v1/decks/{id}/cards
	apiGroup.Delete("/decks/:id/cards/:cardId", deckHandler.RemoveCard) // DELETE /api/v1/decks/{id}/cards/{cardId}
	apiGroup.Delete("/decks/:id/cards", deckHandler.ClearDeck)          // DELETE /api/v1/decks/{id}/cards
	apiGroup.Put("/decks/:id/cover", deckHandler.SetCoverCard)          // PUT    /api/v1/decks/{id}/cover
}
