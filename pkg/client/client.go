// Package client is a typed Go client for the blognest API. Store wraps
// Client with the pending/succeeded/failed state machine UIs render from.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/andriwibowo/blognest/internal/domain/entity"
)

// APIError is a non-2xx response from the server, message verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Session is the minimal user record plus token persisted locally,
// mirroring what register/login return.
type Session struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// BlogRequest carries blog fields for create and update calls. On
// update, empty fields keep their stored values.
type BlogRequest struct {
	Title      string `json:"title,omitempty"`
	Caption    string `json:"caption,omitempty"`
	Desc       string `json:"desc,omitempty"`
	Pic        string `json:"pic,omitempty"`
	Category   string `json:"category,omitempty"`
	AuthorName string `json:"authorName,omitempty"`
}

// ProfileRequest carries profile fields for create and update calls.
type ProfileRequest struct {
	Name      string `json:"name,omitempty"`
	Career    string `json:"career,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Work      string `json:"work,omitempty"`
	Education string `json:"education,omitempty"`
	Skill     string `json:"skill,omitempty"`
	ProfPic   string `json:"prof_pic,omitempty"`
}

// Client performs the raw HTTP calls. It holds no state beyond the
// base URL and transport.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: httpClient}
}

type envelope[T any] struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func do[T any](ctx context.Context, c *Client, method, path, token string, body any) (T, error) {
	var zero T

	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return zero, err
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return zero, err
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope[T]
	if derr := json.NewDecoder(resp.Body).Decode(&env); derr != nil {
		if resp.StatusCode >= 400 {
			return zero, &APIError{Status: resp.StatusCode, Message: resp.Status}
		}
		return zero, derr
	}
	if resp.StatusCode >= 400 || !env.Success {
		return zero, &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	return env.Data, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (Session, error) {
	return do[Session](ctx, c, http.MethodPost, "/api/users/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
}

func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	return do[Session](ctx, c, http.MethodPost, "/api/users/login", "", map[string]string{
		"email": email, "password": password,
	})
}

func (c *Client) ListBlogs(ctx context.Context, token string) ([]entity.Blog, error) {
	return do[[]entity.Blog](ctx, c, http.MethodGet, "/api/blogs", token, nil)
}

func (c *Client) ListGlobal(ctx context.Context) ([]entity.Blog, error) {
	return do[[]entity.Blog](ctx, c, http.MethodGet, "/api/blogs/global", "", nil)
}

func (c *Client) GetBlog(ctx context.Context, token, id string) (entity.Blog, error) {
	return do[entity.Blog](ctx, c, http.MethodGet, "/api/blogs/"+id, token, nil)
}

func (c *Client) CreateBlog(ctx context.Context, token string, in BlogRequest) (entity.Blog, error) {
	return do[entity.Blog](ctx, c, http.MethodPost, "/api/blogs/create", token, in)
}

func (c *Client) UpdateBlog(ctx context.Context, token, id string, in BlogRequest) (entity.Blog, error) {
	return do[entity.Blog](ctx, c, http.MethodPut, "/api/blogs/"+id, token, in)
}

func (c *Client) DeleteBlog(ctx context.Context, token, id string) error {
	_, err := do[map[string]any](ctx, c, http.MethodDelete, "/api/blogs/"+id, token, nil)
	return err
}

func (c *Client) GetProfile(ctx context.Context, userID string) (entity.Profile, error) {
	return do[entity.Profile](ctx, c, http.MethodGet, "/api/profile/"+userID, "", nil)
}

func (c *Client) CreateProfile(ctx context.Context, token string, in ProfileRequest) (entity.Profile, error) {
	return do[entity.Profile](ctx, c, http.MethodPost, "/api/profile/create", token, in)
}

func (c *Client) UpdateProfile(ctx context.Context, token string, in ProfileRequest) (entity.Profile, error) {
	return do[entity.Profile](ctx, c, http.MethodPut, "/api/profile/edit", token, in)
}

func (c *Client) DeleteProfile(ctx context.Context, token string) error {
	_, err := do[map[string]any](ctx, c, http.MethodDelete, "/api/profile/delete", token, nil)
	return err
}
