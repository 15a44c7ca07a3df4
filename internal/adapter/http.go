package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-gpu-missions/internal/config"
	"github.com/MKhiriev/go-gpu-missions/internal/logger"
	"github.com/MKhiriev/go-gpu-missions/internal/utils"
	"github.com/MKhiriev/go-gpu-missions/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathLogin          = "/v1/login"
	pathCheapestPrices = "/v1/prices/cheapest"
	pathMissionsBatch  = "/v1/user/missions/batch"
	pathMissions       = "/v1/user/missions"
	pathMissionsClose  = "/v1/user/missions/close/batch"

	headerRequestID = "X-Request-ID"
)

type httpMissionAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPMissionAdapter constructs the resty implementation of [MissionAPI].
// It normalises adapterCfg.HTTPAddress and applies the request timeout.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPMissionAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (MissionAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpMissionAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [MissionAPI].
func (h *httpMissionAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Credential, error) {
	r := h.request(ctx).SetBody(req)

	data, err := execute[models.LoginResponse](h, r, http.MethodPost, pathLogin)
	if err != nil {
		return models.Credential{}, fmt.Errorf("login: %w", err)
	}

	return models.NewCredential(data.Token), nil
}

// CheapestPrices implements [MissionAPI]. A null data field yields no offers.
func (h *httpMissionAdapter) CheapestPrices(ctx context.Context, q models.PriceQuery) ([]models.Offer, error) {
	r := h.request(ctx).SetQueryParams(map[string]string{
		"mission_billing_type": q.BillingType,
		"mission_category":     q.Category,
	})

	offers, err := execute[[]models.Offer](h, r, http.MethodGet, pathCheapestPrices)
	if err != nil {
		return nil, fmt.Errorf("cheapest prices: %w", err)
	}

	return offers, nil
}

// CreateMissions implements [MissionAPI].
func (h *httpMissionAdapter) CreateMissions(ctx context.Context, cred models.Credential, req models.CreateMissionsRequest) error {
	r := h.authedRequest(ctx, cred).SetBody(req)

	if _, err := execute[json.RawMessage](h, r, http.MethodPost, pathMissionsBatch); err != nil {
		return fmt.Errorf("create missions: %w", err)
	}

	return nil
}

// ListMissions implements [MissionAPI]. Every state in req.FrontStates is
// sent as a separate front_state parameter.
func (h *httpMissionAdapter) ListMissions(ctx context.Context, cred models.Credential, req models.ListMissionsRequest) (models.MissionPage, error) {
	query := url.Values{}
	query.Set("page_index", strconv.Itoa(req.PageIndex))
	query.Set("page_size", strconv.Itoa(req.PageSize))
	for _, state := range req.FrontStates {
		query.Add("front_state", state.String())
	}

	r := h.authedRequest(ctx, cred).SetQueryParamsFromValues(query)

	page, err := execute[models.MissionPage](h, r, http.MethodGet, pathMissions)
	if err != nil {
		return models.MissionPage{}, fmt.Errorf("list missions: %w", err)
	}

	return page, nil
}

// CloseMissions implements [MissionAPI].
func (h *httpMissionAdapter) CloseMissions(ctx context.Context, cred models.Credential, req models.CloseMissionsRequest) error {
	r := h.authedRequest(ctx, cred).SetBody(req)

	if _, err := execute[json.RawMessage](h, r, http.MethodPut, pathMissionsClose); err != nil {
		return fmt.Errorf("close missions: %w", err)
	}

	return nil
}

// request starts a request tagged with the request id carried by ctx, or a
// new one.
func (h *httpMissionAdapter) request(ctx context.Context) *resty.Request {
	ctx, requestID := utils.EnsureRequestID(ctx)
	return h.client.R().
		SetContext(ctx).
		SetHeader(headerRequestID, requestID)
}

func (h *httpMissionAdapter) authedRequest(ctx context.Context, cred models.Credential) *resty.Request {
	req := h.request(ctx)
	if !cred.Empty() {
		req.SetHeader("Authorization", cred.BearerHeader())
	}
	return req
}

// execute sends r and unwraps the response envelope. The HTTP status is
// checked before the body code.
func execute[T any](h *httpMissionAdapter, r *resty.Request, method, path string) (T, error) {
	var zero T
	requestID, _ := utils.GetRequestIDFromContext(r.Context())
	start := time.Now()

	resp, err := r.Execute(method, path)
	if err != nil {
		h.logger.Debug().
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Err(err).
			Msg("request failed")
		return zero, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("request_id", requestID).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	var envelope models.Envelope[T]
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return zero, fmt.Errorf("%w: decode %s response: %w", ErrTransport, path, err)
	}
	if !envelope.OK() {
		return zero, &APIError{Code: envelope.Code, Msg: envelope.Msg}
	}

	return envelope.Data, nil
}
