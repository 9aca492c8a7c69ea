package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"nxorax_backend/internal/config"
)

// Sentinel errors for the identity collaborator contract. Callers map these
// onto field-level credential messages; none of them is fatal.
var (
	ErrEmailInUse   = errors.New("identity: email already registered")
	ErrWeakPassword = errors.New("identity: password too weak")
	ErrWrongSecret  = errors.New("identity: wrong password")
	ErrNotFound     = errors.New("identity: no account for this email")
)

// Credentials is the token pair issued by the identity collaborator on a
// successful sign-in or sign-up.
type Credentials struct {
	UID          string    `json:"uid"`
	IDToken      string    `json:"idToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// IdentityClient talks to the Identity Toolkit REST endpoints. The Admin SDK
// can verify ID tokens and manage accounts but cannot check a password; the
// REST API is the supported server-side path for email/password credentials.
type IdentityClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

const identityBaseURL = "https://identitytoolkit.googleapis.com/v1"

// NewIdentityClient builds the REST client from the configured Web API key.
func NewIdentityClient(cfg *config.Config, logger *zap.Logger) *IdentityClient {
	return &IdentityClient{
		apiKey:     cfg.FirebaseWebAPIKey,
		baseURL:    identityBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

// CreateAccount registers a new email/password account and returns its
// session tokens. Fails with ErrEmailInUse or ErrWeakPassword.
func (c *IdentityClient) CreateAccount(ctx context.Context, email, password string) (*Credentials, error) {
	return c.call(ctx, "accounts:signUp", email, password)
}

// Authenticate verifies an email/password pair and returns session tokens.
// Fails with ErrWrongSecret or ErrNotFound.
func (c *IdentityClient) Authenticate(ctx context.Context, email, password string) (*Credentials, error) {
	return c.call(ctx, "accounts:signInWithPassword", email, password)
}

type identityRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type identityResponse struct {
	LocalID      string `json:"localId"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *IdentityClient) call(ctx context.Context, endpoint, email, password string) (*Credentials, error) {
	body, err := json.Marshal(identityRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, fmt.Errorf("identity: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("identity: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity: %s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	var out identityResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("identity: decoding %s response: %w", endpoint, err)
	}

	if out.Error != nil {
		return nil, c.mapError(out.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity: %s returned status %d", endpoint, resp.StatusCode)
	}

	creds := &Credentials{
		UID:          out.LocalID,
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
	}
	if d, err := time.ParseDuration(out.ExpiresIn + "s"); err == nil {
		creds.ExpiresAt = time.Now().Add(d)
	}
	return creds, nil
}

// mapError translates Identity Toolkit error codes into the contract's
// sentinel errors. Unknown codes surface verbatim for logging.
func (c *IdentityClient) mapError(code string) error {
	switch {
	case strings.HasPrefix(code, "EMAIL_EXISTS"):
		return ErrEmailInUse
	case strings.HasPrefix(code, "WEAK_PASSWORD"):
		return ErrWeakPassword
	case strings.HasPrefix(code, "INVALID_PASSWORD"),
		strings.HasPrefix(code, "INVALID_LOGIN_CREDENTIALS"):
		return ErrWrongSecret
	case strings.HasPrefix(code, "EMAIL_NOT_FOUND"):
		return ErrNotFound
	}
	c.logger.Warn("Unmapped identity error code", zap.String("code", code))
	return fmt.Errorf("identity: %s", code)
}
