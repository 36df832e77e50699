// ABOUTME: HTTP client for the classroom authentication API
// ABOUTME: Wraps the /api/auth endpoints and normalizes failures into APIError

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const basePath = "/api/auth"

// genericFailure is used when a non-2xx response carries no message body.
const genericFailure = "Request failed"

// APIError is the single failure type surfaced by the gateway. A non-2xx
// response carries the backend's message and status; a transport failure
// (the request never reached the backend) carries the transport error's
// message and a zero status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// AuthResponse is the success payload of every authentication endpoint. The
// backend also sends a token field; the session keeps only userId and role,
// so it is left undecoded.
type AuthResponse struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// SignupRequest is the body for POST /api/auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// ForgotPasswordResponse carries the reset confirmation and the reset link.
type ForgotPasswordResponse struct {
	Message string `json:"message"`
	Data    string `json:"data"`
}

// MessageResponse is a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Client is the API client for the classroom backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL. No request timeout is
// set; callers that need one can bound the context they pass in.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Login calls POST /api/auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.post(ctx, "/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup calls POST /api/auth/signup.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GoogleLogin calls POST /api/auth/google-login with an OAuth credential.
func (c *Client) GoogleLogin(ctx context.Context, token string) (*AuthResponse, error) {
	body := map[string]string{"token": token}
	var resp AuthResponse
	if err := c.post(ctx, "/google-login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GoogleSignup calls POST /api/auth/google-signup with a credential and the
// role chosen for the new account.
func (c *Client) GoogleSignup(ctx context.Context, token, role string) (*AuthResponse, error) {
	body := map[string]string{"token": token, "role": role}
	var resp AuthResponse
	if err := c.post(ctx, "/google-signup", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword calls POST /api/auth/forgot-password.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*ForgotPasswordResponse, error) {
	body := map[string]string{"email": email}
	var resp ForgotPasswordResponse
	if err := c.post(ctx, "/forgot-password", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword calls POST /api/auth/reset-password with the token from the
// emailed reset link.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (*MessageResponse, error) {
	body := map[string]string{"token": token, "newPassword": newPassword}
	var resp MessageResponse
	if err := c.post(ctx, "/reset-password", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// post issues a single JSON request. There are no retries; a failed attempt
// is surfaced immediately and resubmission is up to the user.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &APIError{Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+basePath+path, bytes.NewReader(payload))
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failures share the error type of backend failures so
		// callers have a single failure path.
		return &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Message == "" {
			return &APIError{StatusCode: resp.StatusCode, Message: genericFailure}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "Invalid response from server"}
	}
	return nil
}
