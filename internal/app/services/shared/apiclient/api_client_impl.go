package apiclient

import (
	"bytes"
	"carelink-agent/internal/app/services/session"
	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/dto/responses"
	"carelink-agent/internal/pkg/exceptions"
	"carelink-agent/internal/pkg/utils"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type apiClient struct {
	baseUrl      string
	httpClient   *http.Client
	limiter      *rate.Limiter
	sessionStore session.SessionStore
	coordinator  *session.LogoutCoordinator
	log          *zap.Logger
}

func NewApiClient(
	baseUrl string,
	requestTimeout time.Duration,
	ratePerSecond, burst int,
	sessionStore session.SessionStore,
	coordinator *session.LogoutCoordinator,
	logger *zap.Logger,
) Client {
	return &apiClient{
		baseUrl:      strings.TrimRight(baseUrl, "/"),
		httpClient:   &http.Client{Timeout: requestTimeout},
		limiter:      rate.NewLimiter(rate.Limit(ratePerSecond), burst),
		sessionStore: sessionStore,
		coordinator:  coordinator,
		log:          logger,
	}
}

func (c *apiClient) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, constvars.MethodGet, path, nil, out)
}

func (c *apiClient) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, constvars.MethodPost, path, body, out)
}

func (c *apiClient) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, constvars.MethodPut, path, body, out)
}

func (c *apiClient) Delete(ctx context.Context, path string) error {
	return c.do(ctx, constvars.MethodDelete, path, nil, nil)
}

func (c *apiClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	requestID := utils.GenerateRequestID()

	if err := c.limiter.Wait(ctx); err != nil {
		return exceptions.ErrOutboundRateLimited(err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+path, reader)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderRequestID, requestID)
	c.attachCredential(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failure: never an authentication failure, never a
		// logout trigger.
		c.log.Error("apiClient.do transport failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return exceptions.ErrNetworkUnavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return exceptions.ErrCannotParseJSON(err)
		}
		return nil
	}

	return c.classifyFailure(ctx, requestID, path, resp)
}

// attachCredential resolves the bearer token and sets the header. A
// stored value that already carries the scheme prefix is attached as-is,
// never double-prefixed. Absent credential means the request proceeds
// bare and the server rejects as needed.
func (c *apiClient) attachCredential(ctx context.Context, req *http.Request) {
	credential, found := c.sessionStore.ResolveCredential(ctx)
	if !found {
		return
	}
	trimmed := strings.TrimSpace(credential)
	if trimmed == "" {
		return
	}
	if strings.HasPrefix(trimmed, constvars.BearerSchemePrefix) {
		req.Header.Set(constvars.HeaderAuthorization, trimmed)
		return
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerSchemePrefix+trimmed)
}

func (c *apiClient) classifyFailure(ctx context.Context, requestID, path string, resp *http.Response) error {
	bodyBytes, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		bodyBytes = nil
	}

	c.log.Warn("apiClient.do request failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.ByteString(constvars.LoggingResponseKey, bodyBytes),
	)

	isCredentialEndpoint := path == constvars.EndpointAuthLogin || path == constvars.EndpointAuthRegister

	var serverErr error
	var serverBody responses.ServerError
	if json.Unmarshal(bodyBytes, &serverBody) == nil && serverBody.Error != "" {
		serverErr = errors.New(serverBody.Error)
	}

	switch {
	case resp.StatusCode == constvars.StatusUnauthorized && isCredentialEndpoint:
		// Bad credentials on login/register: session untouched.
		return exceptions.ErrAuthRejected(serverErr)
	case resp.StatusCode == constvars.StatusBadRequest && isCredentialEndpoint:
		return exceptions.ErrAuthRejected(serverErr)
	case resp.StatusCode == constvars.StatusUnauthorized:
		snapshot := c.sessionStore.Snapshot()
		if snapshot.Credential != "" || snapshot.Identity != nil {
			c.coordinator.TriggerSessionExpiry(ctx)
			return exceptions.ErrSessionExpired(serverErr)
		}
		return exceptions.ErrAuthRejected(serverErr)
	case resp.StatusCode >= 500:
		return exceptions.ErrServerError(serverErr, resp.StatusCode)
	default:
		return exceptions.ErrUnexpectedStatusCode(resp.StatusCode)
	}
}
