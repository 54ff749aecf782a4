package ygoprodeck

// apiResponse kataloğun üst seviye JSON yanıtı.
type apiResponse struct {
	Data []CardRecord `json:"data"`
	Meta responseMeta `json:"meta"`
}

type responseMeta struct {
	CurrentRows    int `json:"current_rows"`
	TotalRows      int `json:"total_rows"`
	PagesRemaining int `json:"pages_remaining"`
}

// CardRecord katalogdan gelen ham kart kaydı.
type CardRecord struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Description string       `json:"desc"`
	Attribute   string       `json:"attribute"`
	Race        string       `json:"race"`
	Level       *int         `json:"level"`
	Attack      *int         `json:"atk"`
	Defense     *int         `json:"def"`
	CardImages  []CardImage  `json:"card_images"`
	BanlistInfo *BanlistInfo `json:"banlist_info"`
}

type CardImage struct {
	ImageURL      string `json:"image_url"`
	ImageURLSmall string `json:"image_url_small"`
}

type BanlistInfo struct {
	BanTCG string `json:"ban_tcg"`
	BanOCG string `json:"ban_ocg"`
}

// PrimaryImageURL kartın birincil görsel adresini döndürür.
func (r *CardRecord) PrimaryImageURL() string {
	if len(r.CardImages) == 0 {
		return ""
	}
	return r.CardImages[0].ImageURL
}

// BanStatusTCG TCG ban listesi durumunu döndürür; bilgi yoksa boş string.
func (r *CardRecord) BanStatusTCG() string {
	if r.BanlistInfo == nil {
		return ""
	}
	return r.BanlistInfo.BanTCG
}
