package handlers

import (
	"strconv"

	"ygodeck.link/pkg/queryparams"
	"ygodeck.link/pkg/renderer"
	"ygodeck.link/pkg/ygoprodeck"
	"ygodeck.link/services"

	"github.com/gofiber/fiber/v2"
)

// SearchPageSize katalog arama sayfası başına kart sayısı.
const SearchPageSize = 20

// PanelSearchHandler katalog kart araması için HTML handler.
type PanelSearchHandler struct {
	cardService services.ICardService
	deckService services.IDeckService
}

// NewPanelSearchHandler yeni bir PanelSearchHandler örneği oluşturur.
func NewPanelSearchHandler() *PanelSearchHandler {
	return &PanelSearchHandler{
		cardService: services.NewCardService(),
		deckService: services.NewDeckService(),
	}
}

// SearchCards katalogda arama yapar ve sonuç sayfasını render eder.
// previous_page/next_page offset'i sayfa boyutu kadar kaydırır.
func (h *PanelSearchHandler) SearchCards(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	filters := ygoprodeck.SearchFilters{
		Name:      c.Query("fname"),
		Type:      c.Query("type"),
		Attribute: c.Query("attribute"),
		Race:      c.Query("race"),
	}
	if level, err := strconv.Atoi(c.Query("level")); err == nil && level > 0 {
		filters.Level = &level
	}
	if atk, err := strconv.Atoi(c.Query("atk")); err == nil && atk >= 0 && c.Query("atk") != "" {
		filters.MinAttack = &atk
	}
	if def, err := strconv.Atoi(c.Query("def")); err == nil && def >= 0 && c.Query("def") != "" {
		filters.MinDefense = &def
	}

	offset, _ := strconv.Atoi(c.Query("offset"))
	if offset < 0 {
		offset = 0
	}
	switch c.Query("nav") {
	case "next_page":
		offset += SearchPageSize
	case "previous_page":
		offset -= SearchPageSize
		if offset < 0 {
			offset = 0
		}
	}

	// Boş sonuç da aynı sayfayı render eder; upstream hataları istemci
	// tarafında "sonuç yok"a çevrilmiştir.
	result := h.cardService.SearchCatalog(c.UserContext(), filters, SearchPageSize, offset)

	// Ekle butonları için kullanıcının desteleri.
	decks, _ := h.deckService.ListDecksForUser(c.UserContext(), userID, deckListParams())

	return renderer.Render(c, "panel/cards/search", "layouts/panel_layout", fiber.Map{
		"Title":          "Kart Ara",
		"Result":         result,
		"Filters":        filters,
		"Offset":         offset,
		"PageSize":       SearchPageSize,
		"HasPrevious":    offset > 0,
		"HasNext":        result.PagesRemaining > 0,
		"Decks":          decks,
		"QueryFname":     c.Query("fname"),
		"QueryType":      c.Query("type"),
		"QueryAttribute": c.Query("attribute"),
		"QueryRace":      c.Query("race"),
		"QueryLevel":     c.Query("level"),
		"QueryAtk":       c.Query("atk"),
		"QueryDef":       c.Query("def"),
	})
}

// deckListParams arama sayfasındaki deste seçim listesi için parametreler.
func deckListParams() queryparams.ListParams {
	params := queryparams.DefaultListParams("name")
	params.PerPage = queryparams.MaxPerPage
	params.OrderBy = "asc"
	return params
}
