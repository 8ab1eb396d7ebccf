package pms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"stayhub/database/repository"
	"stayhub/models"
)

var (
	// ErrUpstream marks a failed call to the property-management system.
	ErrUpstream = errors.New("property-management system error")
	// ErrNoCredential means no API key is stored for the property.
	ErrNoCredential = errors.New("no API key for property")
)

// CredentialLookup resolves the per-property API key injected into
// every PMS call. Backed by the credential repository in production.
// A property with no stored key is reported with repository.ErrNotFound;
// any other error means the store itself failed.
type CredentialLookup interface {
	GetAPIKey(ctx context.Context, propertyID string) (string, error)
}

// Client is a read-only client for the property-management system.
type Client struct {
	baseURL     string
	credentials CredentialLookup
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewClient creates a PMS client rooted at baseURL.
func NewClient(baseURL string, credentials CredentialLookup, logger *zap.Logger) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		credentials: credentials,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		logger:      logger,
	}
}

// FetchHotelDetails returns the property profile.
func (c *Client) FetchHotelDetails(ctx context.Context, propertyID string) (*models.HotelDetails, error) {
	body, err := c.get(ctx, propertyID, fmt.Sprintf("/properties/%s", url.PathEscape(propertyID)), nil)
	if err != nil {
		return nil, err
	}
	details, err := normalizeHotelDetails(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if details.PropertyID == "" {
		details.PropertyID = propertyID
	}
	return details, nil
}

// FetchRoomTypes returns the property's bookable room categories.
func (c *Client) FetchRoomTypes(ctx context.Context, propertyID string) ([]models.RoomType, error) {
	body, err := c.get(ctx, propertyID, fmt.Sprintf("/properties/%s/room-types", url.PathEscape(propertyID)), nil)
	if err != nil {
		return nil, err
	}
	roomTypes, err := normalizeRoomTypes(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return roomTypes, nil
}

// FetchRatePlans returns nightly rates for [start, end).
func (c *Client) FetchRatePlans(ctx context.Context, propertyID, start, end string) ([]models.RatePlan, error) {
	query := url.Values{}
	query.Set("start", start)
	query.Set("end", end)
	body, err := c.get(ctx, propertyID, fmt.Sprintf("/properties/%s/rate-plans", url.PathEscape(propertyID)), query)
	if err != nil {
		return nil, err
	}
	plans, err := normalizeRatePlans(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return plans, nil
}

func (c *Client) get(ctx context.Context, propertyID, path string, query url.Values) ([]byte, error) {
	apiKey, err := c.credentials.GetAPIKey(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNoCredential, propertyID)
		}
		// A failing credential store is an internal fault, not a
		// missing property.
		return nil, fmt.Errorf("credential lookup for %s: %w", propertyID, err)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build PMS request: %w", err)
	}
	req.Header.Set("X-API-Key", apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("PMS request failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	return body, nil
}
