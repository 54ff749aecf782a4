package handlers

import (
	"errors"
	"strconv"

	"ygodeck.link/configs/configslog"
	"ygodeck.link/models"
	"ygodeck.link/pkg/ygoprodeck"
	"ygodeck.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// APIDeckHandler deste işlemlerinin JSON varyantları.
// Yanıt zarfı: {"message": ...} veya {"error": ...}; durum kodları
// servis hata türlerinden eşlenir.
type APIDeckHandler struct {
	deckService services.IDeckService
	cardService services.ICardService
}

// NewAPIDeckHandler yeni bir APIDeckHandler örneği oluşturur.
func NewAPIDeckHandler() *APIDeckHandler {
	return &APIDeckHandler{
		deckService: services.NewDeckService(),
		cardService: services.NewCardService(),
	}
}

// AddCard POST /api/v1/decks/:id/cards  {"catalog_id": N}
func (h *APIDeckHandler) AddCard(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	deckID, err := parseAPIID(c)
	if err != nil {
		return badRequest(c, "geçersiz deste id")
	}

	var body struct {
		CatalogID int64 `json:"catalog_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.CatalogID <= 0 {
		return badRequest(c, "geçersiz istek gövdesi")
	}

	message, err := h.deckService.AddCard(c.UserContext(), userID, deckID, body.CatalogID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}

// RemoveCard DELETE /api/v1/decks/:id/cards/:cardId
func (h *APIDeckHandler) RemoveCard(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	deckID, err := parseAPIID(c)
	if err != nil {
		return badRequest(c, "geçersiz deste id")
	}
	cardID, err := c.ParamsInt("cardId")
	if err != nil || cardID <= 0 {
		return badRequest(c, "geçersiz kart id")
	}

	message, err := h.deckService.RemoveCard(c.UserContext(), userID, deckID, uint(cardID))
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}

// ClearDeck DELETE /api/v1/decks/:id/cards
func (h *APIDeckHandler) ClearDeck(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	deckID, err := parseAPIID(c)
	if err != nil {
		return badRequest(c, "geçersiz deste id")
	}

	if err := h.deckService.ClearDeck(c.UserContext(), userID, deckID); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "deste temizlendi"})
}

// SetCoverCard PUT /api/v1/decks/:id/cover  {"card_id": N}
func (h *APIDeckHandler) SetCoverCard(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	deckID, err := parseAPIID(c)
	if err != nil {
		return badRequest(c, "geçersiz deste id")
	}

	var body struct {
		CardID uint `json:"card_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.CardID == 0 {
		return badRequest(c, "geçersiz istek gövdesi")
	}

	if err := h.deckService.SetCoverCard(c.UserContext(), userID, deckID, body.CardID); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "kapak kartı güncellendi"})
}

// RenameDeck PUT /api/v1/decks/:id  {"name": ..., "description": ...}
func (h *APIDeckHandler) RenameDeck(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	deckID, err := parseAPIID(c)
	if err != nil {
		return badRequest(c, "geçersiz deste id")
	}

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "geçersiz istek gövdesi")
	}

	if err := h.deckService.UpdateDeck(c.UserContext(), userID, deckID, body.Name, body.Description); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "deste güncellendi"})
}

// SearchCards GET /api/v1/cards/search?fname=...&offset=...
func (h *APIDeckHandler) SearchCards(c *fiber.Ctx) error {
	filters := ygoprodeck.SearchFilters{
		Name:      c.Query("fname"),
		Type:      c.Query("type"),
		Attribute: c.Query("attribute"),
		Race:      c.Query("race"),
	}
	if level, err := strconv.Atoi(c.Query("level")); err == nil && level > 0 {
		filters.Level = &level
	}
	if c.Query("atk") != "" {
		if atk, err := strconv.Atoi(c.Query("atk")); err == nil {
			filters.MinAttack = &atk
		}
	}
	if c.Query("def") != "" {
		if def, err := strconv.Atoi(c.Query("def")); err == nil {
			filters.MinDefense = &def
		}
	}

	num, _ := strconv.Atoi(c.Query("num"))
	if num <= 0 || num > 100 {
		num = 20
	}
	offset, _ := strconv.Atoi(c.Query("offset"))
	if offset < 0 {
		offset = 0
	}

	result := h.cardService.SearchCatalog(c.UserContext(), filters, num, offset)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": result.Cards,
		"meta": fiber.Map{"pages_remaining": result.PagesRemaining},
	})
}

// --- Yardımcılar ---

func parseAPIID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("geçersiz id")
	}
	return uint(id), nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// serviceError servis hata türünü HTTP durum koduna eşler.
func serviceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrDeckNotFound),
		errors.Is(err, services.ErrCardNotFound),
		errors.Is(err, services.ErrCardNotInDeck):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrDeckForbidden):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrCardBanned),
		errors.Is(err, services.ErrCopyLimitExceeded),
		errors.Is(err, services.ErrMainDeckFull),
		errors.Is(err, services.ErrExtraDeckFull),
		errors.Is(err, services.ErrDeckNameRequired),
		errors.Is(err, models.ErrInvariantViolation):
		status = fiber.StatusBadRequest
	default:
		configslog.Log.Error("API deste hatası", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
