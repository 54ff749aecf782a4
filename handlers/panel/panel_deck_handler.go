package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"ygodeck.link/configs/configslog"
	"ygodeck.link/pkg/flashmessages"
	"ygodeck.link/pkg/queryparams"
	"ygodeck.link/pkg/renderer"
	"ygodeck.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelDeckHandler kullanıcının kendi desteleri için HTML handler.
type PanelDeckHandler struct {
	service services.IDeckService
}

// NewPanelDeckHandler yeni bir PanelDeckHandler örneği oluşturur.
func NewPanelDeckHandler() *PanelDeckHandler {
	return &PanelDeckHandler{service: services.NewDeckService()}
}

// ListDecks kullanıcının destelerini listeler.
func (h *PanelDeckHandler) ListDecks(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.ListDecksForUser(c.UserContext(), userID, params)
	renderData := fiber.Map{
		"Title":  "Destelerim",
		"Result": result,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Desteler listelenirken bir hata oluştu."
		configslog.Log.Error("Panel - ListDecks Error", zap.Uint("userID", userID), zap.Error(err))
	}
	return renderer.Render(c, "panel/decks/list", "layouts/panel_layout", renderData)
}

// ShowCreateDeck yeni deste formunu gösterir.
func (h *PanelDeckHandler) ShowCreateDeck(c *fiber.Ctx) error {
	return renderer.Render(c, "panel/decks/create", "layouts/panel_layout", fiber.Map{
		"Title": "Yeni Deste",
	})
}

// CreateDeck yeni deste oluşturur.
func (h *PanelDeckHandler) CreateDeck(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	name := c.FormValue("name")
	description := c.FormValue("description")

	deck, err := h.service.CreateDeck(c.UserContext(), userID, name, description)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/decks/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, fmt.Sprintf("%s destesi oluşturuldu.", deck.Name))
	return c.Redirect(fmt.Sprintf("/panel/decks/%d", deck.ID), fiber.StatusFound)
}

// ShowDeck desteyi kartlarıyla birlikte gösterir.
func (h *PanelDeckHandler) ShowDeck(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	deckID, err := parseIDParam(c)
	if err != nil {
		return redirectWithError(c, "/panel/decks", "Geçersiz deste ID.")
	}

	deck, err := h.service.GetDeckForUser(c.UserContext(), userID, deckID)
	if err != nil {
		errMsg := "Deste bulunamadı veya görüntüleme yetkiniz yok."
		if !errors.Is(err, services.ErrDeckNotFound) && !errors.Is(err, services.ErrDeckForbidden) {
			errMsg = "Deste bilgileri alınamadı."
			configslog.Log.Error("Panel - ShowDeck Error", zap.Uint("deckID", deckID), zap.Error(err))
		}
		return redirectWithError(c, "/panel/decks", errMsg)
	}

	return renderer.Render(c, "panel/decks/show", "layouts/panel_layout", fiber.Map{
		"Title":          deck.Name,
		"Deck":           deck,
		"MainDeckCount":  deck.MainDeckCount(),
		"ExtraDeckCount": deck.ExtraDeckCount(),
	})
}

// UpdateDeck deste adını/açıklamasını günceller.
func (h *PanelDeckHandler) UpdateDeck(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	deckID, err := parseIDParam(c)
	if err != nil {
		return redirectWithError(c, "/panel/decks", "Geçersiz deste ID.")
	}

	name := c.FormValue("name")
	description := c.FormValue("description")
	if err := h.service.UpdateDeck(c.UserContext(), userID, deckID, name, description); err != nil {
		return redirectWithError(c, fmt.Sprintf("/panel/decks/%d", deckID), err.Error())
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Deste güncellendi.")
	return c.Redirect(fmt.Sprintf("/panel/decks/%d", deckID), fiber.StatusFound)
}

// DeleteDeck desteyi siler.
func (h *PanelDeckHandler) DeleteDeck(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	deckID, err := parseIDParam(c)
	if err != nil {
		return redirectWithError(c, "/panel/decks", "Geçersiz deste ID.")
	}

	if err := h.service.DeleteDeck(c.UserContext(), userID, deckID); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Deste silindi.")
	}
	return c.Redirect("/panel/decks", fiber.StatusSeeOther)
}

// AddCard arama sonucundan desteye kart ekler (form POST).
func (h *PanelDeckHandler) AddCard(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	deckID, err := parseIDParam(c)
	if err != nil {
		return redirectWithError(c, "/panel/decks", "Geçersiz deste ID.")
	}
	catalogID, err := strconv.ParseInt(c.FormValue("catalog_id"), 10, 64)
	if err != nil || catalogID <= 0 {
		return redirectWithError(c, fmt.Sprintf("/panel/decks/%d", deckID), "Geçersiz kart.")
	}

	message, err := h.service.AddCard(c.UserContext(), userID, deckID, catalogID)
	if err != nil {
		return redirectWithError(c, fmt.Sprintf("/panel/decks/%d", deckID), err.Error())
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, message)
	return c.Redirect(fmt.Sprintf("/panel/decks/%d", deckID), fiber.StatusFound)
}

// RemoveCard desteden bir kopya çıkarır (form POST).
func (h *PanelDeckHandler) RemoveCard(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	deckID, err := parseIDParam(c)
	if err != nil {
		return redirectWithError(c, "/panel/decks", "Geçersiz deste ID.")
	}
	cardID, err := strconv.ParseUint(c.FormValue("card_id"), 10, 32)
	if err != nil || cardID == 0 {
		return redirectWithError(c, fmt.Sprintf("/panel/decks/%d", deckID), "Geçersiz kart.")
	}

	message, err := h.service.RemoveCard(c.UserContext(), userID, deckID, uint(cardID))
	if err != nil {
		return redirectWithError(c, fmt.Sprintf("/panel/decks/%d", deckID), err.Error())
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, message)
	return c.Redirect(fmt.Sprintf("/panel/decks/%d", deckID), fiber.StatusFound)
}

// SetCoverCard destenin kapak kartını belirler (form POST).
func (h *PanelDeckHandler) SetCoverCard(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	deckID, err := parseIDParam(c)
	if err != nil {
		return redirectWithError(c, "/panel/decks", "Geçersiz deste ID.")
	}
	cardID, err := strconv.ParseUint(c.FormValue("card_id"), 10, 32)
	if err != nil || cardID == 0 {
		return redirectWithError(c, fmt.Sprintf("/panel/decks/%d", deckID), "Geçersiz kart.")
	}

	if err := h.service.SetCoverCard(c.UserContext(), userID, deckID, uint(cardID)); err != nil {
		return redirectWithError(c, fmt.Sprintf("/panel/decks/%d", deckID), err.Error())
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kapak kartı güncellendi.")
	return c.Redirect(fmt.Sprintf("/panel/decks/%d", deckID), fiber.StatusFound)
}

// ClearDeck destedeki tüm kartları temizler (form POST).
func (h *PanelDeckHandler) ClearDeck(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	deckID, err := parseIDParam(c)
	if err != nil {
		return redirectWithError(c, "/panel/decks", "Geçersiz deste ID.")
	}

	if err := h.service.ClearDeck(c.UserContext(), userID, deckID); err != nil {
		return redirectWithError(c, fmt.Sprintf("/panel/decks/%d", deckID), err.Error())
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Deste temizlendi.")
	return c.Redirect(fmt.Sprintf("/panel/decks/%d", deckID), fiber.StatusFound)
}

// parseIDParam :id parametresini uint'e çevirir.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("geçersiz id")
	}
	return uint(id), nil
}

func redirectWithError(c *fiber.Ctx, path, message string) error {
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, message)
	return c.Redirect(path, fiber.StatusSeeOther)
}
