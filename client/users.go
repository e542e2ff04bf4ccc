package client

import (
	"encoding/json"

	"igsaa-nomination/models"
)

// ListUsers fetches all admin-console accounts.
func (c *Client) ListUsers() ([]models.AdminUser, error) {
	env, err := c.doJSON("GET", "/admin/users", nil)
	if err != nil {
		return nil, err
	}
	var users []models.AdminUser
	if err := json.Unmarshal(env.Data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser adds an admin-console account. The password travels only on
// this request.
func (c *Client) CreateUser(user *models.AdminUser) (*models.AdminUser, error) {
	env, err := c.doJSON("POST", "/admin/users", user)
	if err != nil {
		return nil, err
	}
	var created models.AdminUser
	if err := json.Unmarshal(env.Data, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser modifies an account. An empty password leaves it unchanged.
func (c *Client) UpdateUser(id string, user *models.AdminUser) (*models.AdminUser, error) {
	env, err := c.doJSON("PUT", "/admin/users/"+id, user)
	if err != nil {
		return nil, err
	}
	var updated models.AdminUser
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(id string) error {
	_, err := c.doJSON("DELETE", "/admin/users/"+id, nil)
	return err
}
