package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/client/models"
	"github.com/krishavya/ufresher/internal/moderation"
)

var _ Client = (*HTTPClient)(nil)

// HTTPClient talks to the backend's JSON API. A single instance is meant
// to be owned by one client process; the bearer token is set after a
// successful sign-in and attached to every subsequent request.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewHTTPClient builds a client for the given base URL. The timeout
// bounds every request; a backend that never answers surfaces as
// ErrUnavailable instead of hanging.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) Token() string {
	return c.token
}

// apiError is the backend's error envelope.
type apiError struct {
	Error string `json:"error"`
}

// authResponse couples an account with its bearer token.
type authResponse struct {
	Account models.Account `json:"account"`
	Token   string         `json:"token"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return c.mapStatus(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) mapStatus(resp *http.Response) error {
	var e apiError
	_ = json.NewDecoder(resp.Body).Decode(&e)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if e.Error == "invalid credentials" {
			return ErrInvalidCredentials
		}
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrEmailTaken
	case http.StatusNotFound:
		return ErrNotFound
	default:
		if resp.StatusCode >= 500 {
			return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, e.Error)
		}
		return fmt.Errorf("backend error: status %d: %s", resp.StatusCode, e.Error)
	}
}

func (c *HTTPClient) SignUp(ctx context.Context, req SignUpRequest) (*models.Account, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/signup", req, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out.Account, nil
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (*models.Account, error) {
	body := map[string]string{"email": email, "password": password}
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/signin", body, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out.Account, nil
}

func (c *HTTPClient) GoogleConsentURL(ctx context.Context) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/auth/google/consent", nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *HTTPClient) ExchangeGoogleCode(ctx context.Context, code string) (*models.Account, error) {
	body := map[string]string{"code": code}
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/google/exchange", body, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out.Account, nil
}

func (c *HTTPClient) SignOut(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/v1/auth/signout", nil, nil)
	c.token = ""
	return err
}

func (c *HTTPClient) CurrentAccount(ctx context.Context) (*models.Account, error) {
	var out models.Account
	if err := c.do(ctx, http.MethodGet, "/v1/auth/user", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Communities(ctx context.Context) ([]models.Community, error) {
	var out []models.Community
	if err := c.do(ctx, http.MethodGet, "/v1/communities", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Clubs(ctx context.Context) ([]models.Club, error) {
	var out []models.Club
	if err := c.do(ctx, http.MethodGet, "/v1/clubs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ChatRooms(ctx context.Context) ([]models.ChatRoom, error) {
	var out []models.ChatRoom
	if err := c.do(ctx, http.MethodGet, "/v1/rooms", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Messages(ctx context.Context, roomID uuid.UUID) ([]models.Message, error) {
	var out []models.Message
	if err := c.do(ctx, http.MethodGet, "/v1/rooms/"+roomID.String()+"/messages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, roomID uuid.UUID, content string, flagged bool) (*models.Message, error) {
	body := map[string]any{"content": content, "flagged": flagged}
	var out models.Message
	if err := c.do(ctx, http.MethodPost, "/v1/rooms/"+roomID.String()+"/messages", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Posts(ctx context.Context, communityID, clubID *uuid.UUID) ([]models.Post, error) {
	q := url.Values{}
	if communityID != nil {
		q.Set("community_id", communityID.String())
	}
	if clubID != nil {
		q.Set("club_id", clubID.String())
	}
	path := "/v1/posts"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []models.Post
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, http.MethodPost, "/v1/posts", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SetFlagged(ctx context.Context, kind ContentKind, id uuid.UUID, flagged bool) error {
	body := map[string]bool{"flagged": flagged}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/v1/moderation/%s/%s", kind, id), body, nil)
}

func (c *HTTPClient) Classify(ctx context.Context, content string) (moderation.Verdict, error) {
	body := map[string]string{"content": content}
	var out moderation.Verdict
	err := c.do(ctx, http.MethodPost, "/v1/moderation/classify", body, &out)
	if err != nil {
		// Any failure of the classification service degrades to the
		// caller's fallback policy; it is never surfaced to the user.
		return moderation.Verdict{}, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}
	return out, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/v1/health", nil, nil)
}
