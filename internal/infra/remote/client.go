// Package remote talks to a real booking backend over HTTP. Its routes are
// the ones this service exposes itself.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/listing"
	"fieldbook/internal/domain/promotion"
	"fieldbook/internal/infra"
	"fieldbook/internal/pkg/config"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/shared"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

var _ shared.Backend = (*Client)(nil)

func NewClient(cfg config.BackendConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		token:   cfg.Token,
		http:    httpClient,
		logger:  logger,
	}
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// do sends one request and decodes a 2xx JSON answer into out. A 404 maps
// to notFound when given.
func (c *Client) do(ctx context.Context, method, path string, body, out any, notFound error) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(infra.WrapRepoErr(method+" "+path, err, infra.KindRemoteFailure), errs.ErrBackendUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return c.statusError(resp, method, path, notFound)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapRepoErr("failed to decode "+path, err, infra.KindDecodeFailure)
	}
	return nil
}

func (c *Client) statusError(resp *http.Response, method, path string, notFound error) error {
	var eb errorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&eb)
	msg := eb.Error.Message
	if msg == "" {
		msg = resp.Status
	}

	switch {
	case resp.StatusCode == http.StatusNotFound && notFound != nil:
		return notFound
	case resp.StatusCode == http.StatusLocked:
		return errs.ErrVerificationLocked
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return errs.Mark(errs.New(msg), errs.ErrDomainValidation)
	}

	c.logger.Warn("remote backend error", "method", method, "path", path, "status", resp.StatusCode, "message", msg)
	err := infra.WrapRepoErr(fmt.Sprintf("%s %s: %d %s", method, path, resp.StatusCode, msg), nil, infra.KindRemoteFailure)
	return errs.Mark(err, errs.ErrBackendUnavailable)
}

func ownerPath(ownerID string, rest ...string) string {
	parts := []string{"/api/owner", url.PathEscape(ownerID)}
	for _, r := range rest {
		parts = append(parts, url.PathEscape(r))
	}
	return strings.Join(parts, "/")
}

func (c *Client) ListListings(ctx context.Context) ([]listing.Listing, error) {
	var out []listing.Listing
	err := c.do(ctx, http.MethodGet, "/api/fields", nil, &out, nil)
	return out, err
}

func (c *Client) GetListing(ctx context.Context, id string) (listing.Listing, error) {
	var out listing.Listing
	err := c.do(ctx, http.MethodGet, "/api/fields/"+url.PathEscape(id), nil, &out, errs.ErrListingNotFound)
	return out, err
}

func (c *Client) SearchListings(ctx context.Context, query string) ([]listing.Listing, error) {
	var out []listing.Listing
	err := c.do(ctx, http.MethodGet, "/api/fields/search?q="+url.QueryEscape(query), nil, &out, nil)
	return out, err
}

func (c *Client) ListAdPackages(ctx context.Context) ([]promotion.AdPackage, error) {
	var out []promotion.AdPackage
	err := c.do(ctx, http.MethodGet, "/api/ad-packages", nil, &out, nil)
	return out, err
}

func (c *Client) ListTimeSlots(ctx context.Context) ([]string, error) {
	var out []string
	err := c.do(ctx, http.MethodGet, "/api/time-slots", nil, &out, nil)
	return out, err
}

func (c *Client) CreateBooking(ctx context.Context, params shared.CreateBookingParams) (booking.Booking, error) {
	var out booking.Booking
	err := c.do(ctx, http.MethodPost, "/api/bookings", params, &out, errs.ErrListingNotFound)
	return out, err
}

func (c *Client) GetBookingsForUser(ctx context.Context, userID string) ([]booking.Booking, error) {
	var out []booking.Booking
	err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID)+"/bookings", nil, &out, nil)
	return out, err
}

func (c *Client) GetOwnerFields(ctx context.Context, ownerID string) ([]listing.Listing, error) {
	var out []listing.Listing
	err := c.do(ctx, http.MethodGet, ownerPath(ownerID, "fields"), nil, &out, nil)
	return out, err
}

func (c *Client) CreateOwnerField(ctx context.Context, ownerID string, p listing.Patch) (listing.Listing, error) {
	var out listing.Listing
	err := c.do(ctx, http.MethodPost, ownerPath(ownerID, "fields"), p, &out, nil)
	return out, err
}

func (c *Client) UpdateOwnerField(ctx context.Context, ownerID, fieldID string, p listing.Patch) (listing.Listing, error) {
	var out listing.Listing
	err := c.do(ctx, http.MethodPut, ownerPath(ownerID, "fields", fieldID), p, &out, errs.ErrListingNotFound)
	return out, err
}

func (c *Client) DeleteOwnerField(ctx context.Context, ownerID, fieldID string) error {
	return c.do(ctx, http.MethodDelete, ownerPath(ownerID, "fields", fieldID), nil, nil, errs.ErrListingNotFound)
}

func (c *Client) GetOwnerBookings(ctx context.Context, ownerID string, filter shared.OwnerBookingFilter) ([]booking.Booking, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", filter.Status.String())
	}
	if filter.Sort != "" {
		q.Set("sort", string(filter.Sort))
	}
	path := ownerPath(ownerID, "bookings")
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []booking.Booking
	err := c.do(ctx, http.MethodGet, path, nil, &out, nil)
	return out, err
}

func (c *Client) VerifyBooking(ctx context.Context, ownerID, bookingID, code string) (shared.VerifyResult, error) {
	var out shared.VerifyResult
	body := map[string]string{"verificationCode": code}
	err := c.do(ctx, http.MethodPost, ownerPath(ownerID, "bookings", bookingID, "verify"), body, &out, errs.ErrBookingNotFound)
	return out, err
}

func (c *Client) GetOwnerStats(ctx context.Context, ownerID string) (shared.OwnerStats, error) {
	var out shared.OwnerStats
	err := c.do(ctx, http.MethodGet, ownerPath(ownerID, "stats"), nil, &out, nil)
	return out, err
}

func (c *Client) PromoteField(ctx context.Context, ownerID, fieldID string, req promotion.Request) (listing.Listing, error) {
	var out shared.PromoteResult
	err := c.do(ctx, http.MethodPost, ownerPath(ownerID, "fields", fieldID, "promote"), req, &out, errs.ErrListingNotFound)
	return out.Field, err
}
