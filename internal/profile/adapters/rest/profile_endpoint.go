// Package rest содержит HTTP клиент удаленного сервиса профилей.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"profilefetch/internal/profile/domain/entities"
	"profilefetch/internal/profile/ports/endpoint"
	"profilefetch/internal/profile/ports/services"
	"profilefetch/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodFetchProfile = "rest.FetchProfile"

	HeaderRequestID = logger.HeaderRequestID

	getProfileRoute = "/api/v1/users/{userID}/profile"
	opGetProfile    = "GET " + getProfileRoute

	msgProfileResponse = "profile endpoint responded"

	ErrorFailedToIssueToken = "failed to issue service token"
	ErrorFailedToDecode     = "failed to decode profile response"
	ErrorTransport          = "profile endpoint transport failure"
)

// ProfileOut - тело успешного ответа сервиса профилей.
type ProfileOut struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	ImageURL string `json:"image_url"`
}

// Client реализует endpoint.ProfileEndpoint поверх REST API.
type Client struct {
	client *resty.Client
	tokens services.TokenService
}

// NewProfileEndpoint создает REST клиент сервиса профилей.
// timeout ограничивает один HTTP запрос; 0 означает отсутствие ограничения.
func NewProfileEndpoint(baseURL string, timeout time.Duration, tokens services.TokenService) endpoint.ProfileEndpoint {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{client: client, tokens: tokens}
}

// FetchProfile запрашивает профиль и переводит HTTP статус в entities.EndpointStatus.
func (c *Client) FetchProfile(ctx context.Context, userID string) (entities.EndpointResult, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodFetchProfile), zap.String("userID", userID))

	token, err := c.tokens.ServiceToken(ctx)
	if err != nil {
		log.Error(ctx, ErrorFailedToIssueToken, zap.Error(err))
		return entities.EndpointResult{}, fmt.Errorf("%s: %w", ErrorFailedToIssueToken, err)
	}

	req := c.client.R().
		SetContext(ctx).
		SetPathParam("userID", userID).
		SetAuthToken(token)
	if requestID, ok := logger.GetRequestID(ctx); ok {
		req.SetHeader(HeaderRequestID, requestID)
	}

	resp, err := req.Get(getProfileRoute)
	if err != nil {
		log.Warn(ctx, ErrorTransport, zap.Error(err))
		return entities.EndpointResult{}, entities.NewNetworkError(opGetProfile, err)
	}

	status := StatusFromHTTP(resp.StatusCode())
	log.Debug(ctx, msgProfileResponse,
		zap.Int("status_code", resp.StatusCode()),
		zap.Stringer("endpoint_status", status),
		zap.Duration("latency", resp.Time()))

	if status != entities.StatusSuccess {
		return entities.EndpointResult{Status: status}, nil
	}

	var body ProfileOut
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		log.Error(ctx, ErrorFailedToDecode, zap.Error(err))
		return entities.EndpointResult{Status: entities.StatusGeneralError}, nil
	}

	return entities.EndpointResult{
		Status:  entities.StatusSuccess,
		Profile: entities.UserProfile(body),
	}, nil
}

// StatusFromHTTP переводит код ответа HTTP в статус сервиса профилей.
func StatusFromHTTP(code int) entities.EndpointStatus {
	switch {
	case code == http.StatusOK:
		return entities.StatusSuccess
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return entities.StatusAuthError
	case code >= http.StatusInternalServerError:
		return entities.StatusServerError
	default:
		return entities.StatusGeneralError
	}
}
