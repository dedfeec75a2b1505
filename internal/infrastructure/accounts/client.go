// Package accounts is the HTTP client for the InNoHassle Accounts identity
// gateway: bearer-token verification and user-profile lookup by id or email.
package accounts

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"clubs.backend/internal/config"
)

// TokenClaims is the identity resolved from a verified bearer token
type TokenClaims struct {
	InnohassleID string
	Email        string
}

// UserInfo is the gateway's user profile
type UserInfo struct {
	ID           string        `json:"id"`
	InnopolisSSO *InnopolisSSO `json:"innopolis_sso"`
	Telegram     *Telegram     `json:"telegram"`
}

// InnopolisSSO holds the university SSO part of a gateway profile
type InnopolisSSO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Telegram holds the telegram part of a gateway profile
type Telegram struct {
	Username string `json:"username"`
}

// Client talks to the identity gateway
type Client struct {
	baseURL      string
	serviceToken string
	publicKey    *rsa.PublicKey
	httpClient   *http.Client
}

// NewClient creates a gateway client. The token verification key comes from
// config when provided, otherwise it is fetched from the gateway once.
func NewClient(cfg config.AccountsConfig) (*Client, error) {
	c := &Client{
		baseURL:      cfg.BaseURL,
		serviceToken: cfg.ServiceToken,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}

	pem := cfg.PublicKeyPEM
	if pem == "" {
		fetched, err := c.fetchPublicKey()
		if err != nil {
			return nil, fmt.Errorf("fetch gateway public key: %w", err)
		}
		pem = fetched
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
	if err != nil {
		return nil, fmt.Errorf("parse gateway public key: %w", err)
	}
	c.publicKey = key
	return c, nil
}

func (c *Client) fetchPublicKey() (string, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/tokens/public-key.pem")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// VerifyToken checks the bearer token signature and expiry against the
// gateway's key and extracts the identity. The local role is never taken
// from the token.
func (c *Client) VerifyToken(tokenString string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.publicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	if err != nil {
		return nil, err
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	email, _ := claims["email"].(string)
	return &TokenClaims{InnohassleID: sub, Email: email}, nil
}

// GetUserByID looks up a gateway profile by innohassle id. A missing user
// is (nil, nil), not an error.
func (c *Client) GetUserByID(ctx context.Context, innohassleID string) (*UserInfo, error) {
	return c.getUser(ctx, "/users/by-id/"+url.PathEscape(innohassleID))
}

// GetUserByEmail looks up a gateway profile by email. A missing user is
// (nil, nil), not an error.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*UserInfo, error) {
	return c.getUser(ctx, "/users/by-email/"+url.PathEscape(email))
}

func (c *Client) getUser(ctx context.Context, path string) (*UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if c.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var info UserInfo
		if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
			return nil, err
		}
		return &info, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}
}
