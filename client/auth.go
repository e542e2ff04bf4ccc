package client

import (
	"encoding/json"
	"errors"

	"igsaa-nomination/models"
)

// LoginResult is the token and profile returned on a successful login.
type LoginResult struct {
	Token string           `json:"token"`
	User  models.AdminUser `json:"user"`
}

// Login authenticates against the portal and returns the bearer token plus
// the user profile. Callers persist both via the session package.
func (c *Client) Login(email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	env, err := c.doJSON("POST", "/auth/login", body)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message == "" {
			apiErr.Message = "Login failed. Please check your credentials."
		}
		return nil, err
	}

	var result LoginResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
