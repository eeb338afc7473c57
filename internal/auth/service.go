package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mvola/internal/config"
	"mvola/internal/events"
	"mvola/kit/gateway"
	"mvola/kit/observability"
)

// Scope required by the provider's client-credentials grant.
const tokenScope = "EXT_INT_MVOLA_SCOPE"

type Token struct {
	AccessToken string `json:"access_token"`
	Scope       string `json:"scope"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Service exchanges the configured consumer credentials for a bearer token.
// Tokens live for the duration of one inbound request and are never cached.
type Service struct {
	cfg    config.Config
	gw     GatewayContract
	bus    PublisherContract
	logger *observability.Logger
}

func NewService(cfg config.Config, gw GatewayContract, bus PublisherContract, logger *observability.Logger) *Service {
	return &Service{cfg: cfg, gw: gw, bus: bus, logger: logger}
}

// Authenticate performs the client-credentials exchange. Every failure mode
// (transport error, non-2xx status, unparseable body) collapses into
// gateway.ErrAuthFailed; the detail is only logged.
func (s *Service) Authenticate(ctx context.Context) (*Token, error) {
	cred := base64.StdEncoding.EncodeToString([]byte(s.cfg.ConsumerKey + ":" + s.cfg.ConsumerSecret))

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", tokenScope)

	headers := http.Header{}
	headers.Set("Authorization", "Basic "+cred)
	headers.Set("Content-Type", "application/x-www-form-urlencoded")
	headers.Set("Cache-Control", "no-cache")

	resp, err := s.gw.Do(ctx, http.MethodPost, s.cfg.BaseURL+s.cfg.TokenPath, headers, strings.NewReader(form.Encode()))
	if err != nil {
		s.fail(ctx, 0, "", err)
		return nil, gateway.ErrAuthFailed
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		s.fail(ctx, resp.StatusCode, "", err)
		return nil, gateway.ErrAuthFailed
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		s.fail(ctx, resp.StatusCode, string(raw), nil)
		return nil, gateway.ErrAuthFailed
	}

	var tok Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		s.fail(ctx, resp.StatusCode, string(raw), err)
		return nil, gateway.ErrAuthFailed
	}

	if s.bus != nil {
		s.bus.Publish(ctx, events.AuthSucceeded{ExpiresIn: tok.ExpiresIn, At: time.Now().UTC()})
	}
	return &tok, nil
}

func (s *Service) fail(ctx context.Context, status int, body string, err error) {
	if s.logger != nil {
		kv := []any{"layer", "service", "component", "auth", "method", "Authenticate", "status", status, "body", body}
		if err != nil {
			kv = append(kv, "error", err.Error())
		}
		s.logger.Error("token request failed", kv...)
	}
	if s.bus != nil {
		s.bus.Publish(ctx, events.AuthFailed{Status: status, At: time.Now().UTC()})
	}
}
