// Package catalog is the order service's client for the catalog service.
// It is the sole seam between the two services: every transport failure is
// translated here into something the coordination logic can act on.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound means the catalog reported the book absent (remote 404).
	ErrNotFound = errors.New("book not found in catalog")

	// ErrTimeout means the remote call exceeded the client's time bound.
	ErrTimeout = errors.New("Catalog service is unavailable (timeout)")
)

// BookSnapshot is the order service's typed view of a remote book. It is
// deliberately decoupled from the catalog service's own record type.
type BookSnapshot struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Description *string         `json:"description"`
}

// AvailabilityResult is the single uniform decision point for order creation.
// When Available is false, Reason carries a human-readable cause suitable for
// returning to the caller verbatim.
type AvailabilityResult struct {
	Available bool
	Book      *BookSnapshot
	Reason    string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a catalog client bound to baseURL with a fixed timeout
// applied to every remote call.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetBook fetches the current snapshot of a book. A remote 404 is reported as
// ErrNotFound; a timeout as ErrTimeout; any other transport or protocol fault
// as a distinct error carrying the cause.
func (c *Client) GetBook(ctx context.Context, bookID int64) (*BookSnapshot, error) {
	url := fmt.Sprintf("%s/books/%d", c.baseURL, bookID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("failed to communicate with catalog service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to communicate with catalog service: unexpected status code %d", resp.StatusCode)
	}

	var snapshot BookSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return &snapshot, nil
}

// CheckAvailability verifies the book exists and has at least required units
// in stock. It never returns an error: every failure path is folded into an
// unavailable result with a reason.
func (c *Client) CheckAvailability(ctx context.Context, bookID int64, required int) AvailabilityResult {
	book, err := c.GetBook(ctx, bookID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AvailabilityResult{Reason: fmt.Sprintf("Book with ID %d not found", bookID)}
		}
		return AvailabilityResult{Reason: err.Error()}
	}

	if book.Quantity < required {
		return AvailabilityResult{
			Book:   book,
			Reason: fmt.Sprintf("Insufficient stock. Available: %d, Required: %d", book.Quantity, required),
		}
	}

	return AvailabilityResult{Available: true, Book: book}
}

// UpdateQuantity is a best-effort remote quantity update for inventory sync.
// Transport errors are swallowed; there is no retry.
func (c *Client) UpdateQuantity(ctx context.Context, bookID int64, quantity int) bool {
	payload := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}

	body, err := json.Marshal(payload)
	if err != nil {
		return false
	}

	url := fmt.Sprintf("%s/books/%d", c.baseURL, bookID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
