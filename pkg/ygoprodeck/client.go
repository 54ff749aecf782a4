package ygoprodeck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"ygodeck.link/configs/configslog"

	"go.uber.org/zap"
)

// DefaultBaseURL YGOPRODeck kart bilgisi endpoint'i.
const DefaultBaseURL = "https://db.ygoprodeck.com/api/v7/cardinfo.php"

// ErrCardMissing katalogda eşleşen kart bulunamadığında döner.
var ErrCardMissing = errors.New("katalogda kart bulunamadı")

// Client harici kart kataloğu için HTTP istemcisi.
// Katalog bizim sahip olmadığımız, salt okunur bir kaynaktır; başarısız veya
// boş yanıtlar çağıranı düşürmez, "sonuç yok" olarak raporlanır.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient varsayılan ayarlarla bir katalog istemcisi oluşturur.
// YGO_API_BASE_URL ortam değişkeni base URL'i override eder.
func NewClient() *Client {
	baseURL := os.Getenv("YGO_API_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: 15 * time.Second})
}

// NewClientWithHTTP base URL ve http.Client enjeksiyonu ile istemci oluşturur.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// SearchFilters katalog aramasının opsiyonel filtreleri.
// MinAttack/MinDefense "en az" anlamındadır ve API'ye gte önekiyle iletilir.
type SearchFilters struct {
	Name       string
	Type       string
	Attribute  string
	Race       string
	Level      *int
	MinAttack  *int
	MinDefense *int
}

// SearchResult bir sayfalık katalog sonucu.
type SearchResult struct {
	Cards          []CardRecord
	PagesRemaining int
}

// Empty sonuç kümesinin boş olup olmadığını döndürür.
func (r *SearchResult) Empty() bool {
	return r == nil || len(r.Cards) == 0
}

// Search filtrelerle katalogda arama yapar ve bir sayfa döndürür.
// Upstream hatası, 200 dışı yanıt veya boş data "sonuç yok" demektir;
// yeniden deneme yapılmaz (orijinal davranış korunur).
func (c *Client) Search(ctx context.Context, filters SearchFilters, num, offset int) *SearchResult {
	params := url.Values{}
	params.Set("fname", filters.Name)
	if filters.Type != "" {
		params.Set("type", filters.Type)
	}
	if filters.Attribute != "" {
		params.Set("attribute", filters.Attribute)
	}
	if filters.Race != "" {
		params.Set("race", filters.Race)
	}
	if filters.Level != nil {
		params.Set("level", strconv.Itoa(*filters.Level))
	}
	if filters.MinAttack != nil {
		params.Set("atk", fmt.Sprintf("gte%d", *filters.MinAttack))
	}
	if filters.MinDefense != nil {
		params.Set("def", fmt.Sprintf("gte%d", *filters.MinDefense))
	}
	if num > 0 {
		params.Set("num", strconv.Itoa(num))
		params.Set("offset", strconv.Itoa(offset))
	}

	payload, err := c.get(ctx, params)
	if err != nil {
		configslog.Log.Warn("Katalog araması başarısız, sonuç yok sayılıyor",
			zap.String("fname", filters.Name), zap.Error(err))
		return &SearchResult{}
	}
	return &SearchResult{
		Cards:          payload.Data,
		PagesRemaining: payload.Meta.PagesRemaining,
	}
}

// FetchByID tek bir kartı katalog kimliğiyle getirir.
func (c *Client) FetchByID(ctx context.Context, catalogID int64) (*CardRecord, error) {
	params := url.Values{}
	params.Set("id", strconv.FormatInt(catalogID, 10))

	payload, err := c.get(ctx, params)
	if err != nil {
		// Katalog 400 ile "no card matching" döndürür; ayırt etmeden
		// bulunamadı olarak raporlamak orijinal davranıştır.
		configslog.Log.Warn("Katalogdan kart getirilemedi",
			zap.Int64("catalog_id", catalogID), zap.Error(err))
		return nil, ErrCardMissing
	}
	if len(payload.Data) == 0 {
		return nil, ErrCardMissing
	}
	return &payload.Data[0], nil
}

// get isteği yapar ve gövdeyi çözer. 200 dışı durumlar hata sayılır.
func (c *Client) get(ctx context.Context, params url.Values) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("katalog isteği oluşturulamadı: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("katalog isteği başarısız: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("katalog %d durum kodu döndürdü", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("katalog yanıtı çözülemedi: %w", err)
	}
	return &payload, nil
}
