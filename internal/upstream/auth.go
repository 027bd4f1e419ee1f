package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	upstreamerrors "leavedesk/internal/upstream/errors"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	data, err := c.send(ctx, http.MethodPost, "/auth/login", "", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return LoginResult{}, err
	}

	var res LoginResult
	if err := json.Unmarshal(data, &res); err != nil {
		return LoginResult{}, upstreamerrors.ErrBadPayload
	}
	return res, nil
}

func (c *Client) MyProfile(ctx context.Context, token string) (Profile, error) {
	data, err := c.get(ctx, "/employees/profile", token)
	if err != nil {
		return Profile{}, err
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, upstreamerrors.ErrBadPayload
	}
	return p, nil
}
