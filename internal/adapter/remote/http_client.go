package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/shop-sync/internal/core/domain"
	"github.com/rl1809/shop-sync/internal/port"
)

const defaultTimeout = 10 * time.Second

// HTTPClient implements the RemoteStore port over the JSON resource model:
// GET /inventory, GET/POST /cart, PUT/DELETE /cart/{id}, DELETE /cart.
// Every request carries an X-Request-ID for server-side correlation.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient builds a client for the remote at baseURL. A nil httpClient
// gets a default with a transport-level timeout; the core itself defines no
// timeouts.
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

func (c *HTTPClient) FetchInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	if err := c.do(ctx, http.MethodGet, "/inventory", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) FetchCart(ctx context.Context) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) CreateCartEntry(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	var created domain.CartItem
	if err := c.do(ctx, http.MethodPost, "/cart", item, &created); err != nil {
		return domain.CartItem{}, err
	}
	return created, nil
}

func (c *HTTPClient) UpdateCartEntry(ctx context.Context, id int, patch domain.CartPatch) (domain.CartItem, error) {
	var updated domain.CartItem
	if err := c.do(ctx, http.MethodPut, "/cart/"+strconv.Itoa(id), patch, &updated); err != nil {
		return domain.CartItem{}, err
	}
	return updated, nil
}

func (c *HTTPClient) DeleteCartEntry(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/cart/"+strconv.Itoa(id), nil, nil)
}

func (c *HTTPClient) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart", nil, nil)
}

// do issues one request and decodes the response into out when out is
// non-nil. Non-2xx responses and transport failures both surface as
// *domain.RemoteError; a failed call never yields a default value.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.client.Do(req)
	if err != nil {
		return &domain.RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &domain.RemoteError{
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(msg)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.RemoteError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("decode response: %v", err),
		}
	}
	return nil
}

var _ port.RemoteStore = (*HTTPClient)(nil)
