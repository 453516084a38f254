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

	"github.com/MKhiriev/go-content-mirror/internal/config"
	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/internal/utils"
	"github.com/MKhiriev/go-content-mirror/internal/validators"
	"github.com/MKhiriev/go-content-mirror/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	// headerRateLimitReset carries the number of seconds until the rate
	// limit window resets.
	headerRateLimitReset = "X-RateLimit-Reset"

	retryWaitTime    = 500 * time.Millisecond
	retryMaxWaitTime = 10 * time.Second
)

type httpTransport struct {
	client   *utils.HTTPClient
	syncPath string
	token    string
	limiter  *rate.Limiter

	validator validators.Validator
	logger    *logger.Logger
}

// NewHTTPTransport creates a [Transport] that requests
// {base}/spaces/{space}/environments/{environment}/sync with a bearer token.
//
// A positive adapterCfg.RateLimit throttles outgoing requests to that many
// per second. Responses with status 429 are retried up to
// adapterCfg.MaxRetries times, honouring the rate limit reset header.
func NewHTTPTransport(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (Transport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	environment := appCfg.Environment
	if environment == "" {
		environment = "master"
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	if adapterCfg.MaxRetries > 0 {
		client.
			SetRetryCount(adapterCfg.MaxRetries).
			SetRetryWaitTime(retryWaitTime).
			SetRetryMaxWaitTime(retryMaxWaitTime).
			SetRetryAfter(retryAfter).
			AddRetryCondition(func(resp *resty.Response, err error) bool {
				return err == nil && resp != nil && resp.StatusCode() == http.StatusTooManyRequests
			})
	}

	var limiter *rate.Limiter
	if adapterCfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(adapterCfg.RateLimit), 1)
	}

	syncPath := "/spaces/" + url.PathEscape(appCfg.SpaceID) +
		"/environments/" + url.PathEscape(environment) + "/sync"

	return &httpTransport{
		client:    client,
		syncPath:  syncPath,
		token:     strings.TrimSpace(appCfg.AccessToken),
		limiter:   limiter,
		validator: validators.NewResourceValidator(),
		logger:    log,
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

func (h *httpTransport) FetchPage(ctx context.Context, params map[string]string) (models.SyncPage, error) {
	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			return models.SyncPage{}, fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	req := h.client.R().
		SetContext(ctx).
		SetQueryParams(params)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}

	resp, err := req.Get(h.syncPath)
	if err != nil {
		return models.SyncPage{}, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Int("status", resp.StatusCode()).
			Err(err).
			Msg("sync request rejected")
		return models.SyncPage{}, err
	}

	var page models.SyncPage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.SyncPage{}, fmt.Errorf("%w: %w", ErrDecodePage, err)
	}
	if err = h.validator.Validate(ctx, page); err != nil {
		return models.SyncPage{}, fmt.Errorf("%w: %w", ErrDecodePage, err)
	}
	page.Raw = resp.Body()

	return page, nil
}

// retryAfter reads the reset header of a 429 response. A zero duration lets
// resty fall back to its exponential backoff.
func retryAfter(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	if resp == nil {
		return 0, nil
	}
	seconds, err := strconv.Atoi(resp.Header().Get(headerRateLimitReset))
	if err != nil || seconds <= 0 {
		return 0, nil
	}
	return time.Duration(seconds) * time.Second, nil
}
