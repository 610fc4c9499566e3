// Package directory contains the client for the remote user directory, the
// service owning canonical account identity.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"authd/config"
	"authd/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultDirectoryTimeout = 10 * time.Second

// httpClient implements service.DirectoryService over the directory's
// internal HTTP API.
type httpClient struct {
	baseURL    string
	httpClient *http.Client
}

// createUserRequest is the directory's account creation payload.
type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewHTTPClient creates the user directory client.
func NewHTTPClient(cfg *config.Config) service.DirectoryService {
	timeout := cfg.UserDirectory.Timeout
	if timeout <= 0 {
		timeout = defaultDirectoryTimeout
	}

	return &httpClient{
		baseURL: cfg.UserDirectory.URL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreateUser registers the identity with the directory and returns the
// record it created.
func (c *httpClient) CreateUser(ctx context.Context, username, email string) (*service.DirectoryUser, error) {
	payload, err := json.Marshal(createUserRequest{
		Username: username,
		Email:    email,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reach user directory")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusConflict:
		return nil, service.ErrDirectoryConflict
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errors.Errorf("user directory returned non-success status: %d", resp.StatusCode)
	}

	var user service.DirectoryUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, errors.Wrap(err, "failed to decode directory user")
	}

	return &user, nil
}

// FindByEmail resolves a directory account by email.
func (c *httpClient) FindByEmail(ctx context.Context, email string) (*service.DirectoryUser, error) {
	endpoint := fmt.Sprintf("%s/users?email=%s", c.baseURL, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reach user directory")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, service.ErrDirectoryUserNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errors.Errorf("user directory returned non-success status: %d", resp.StatusCode)
	}

	var user service.DirectoryUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, errors.Wrap(err, "failed to decode directory user")
	}

	return &user, nil
}
