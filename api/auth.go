package api

import (
	"context"
	"errors"
	"fleet-dashboard-service/session"
	"fmt"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"net/http"
	"strings"
)

// Role id the backend assigns to self-registered customers.
const customerRoleID = 4

type SignInResult struct {
	Token   string
	Profile session.Profile
	Role    string
}

// SignIn exchanges credentials for a token, then resolves the profile and the
// role with that token. A 401 comes back as ErrUnauthorized.
func (c *Client) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	body, err := c.DoRequest(ctx, http.MethodPost, "/users/signin/", map[string]string{
		"user_email":    strings.ToLower(strings.TrimSpace(email)),
		"user_password": password,
	})
	if err != nil {
		return nil, err
	}

	signIn, err := decode[struct {
		Token string `json:"token"`
	}](body)
	if err != nil {
		return nil, err
	}
	if signIn.Token == "" {
		return nil, errors.New("sign-in response carried no token")
	}

	profileBody, err := c.withAccessToken(ctx, signIn.Token, "/users/user/token")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile: %w", err)
	}
	var profile session.Profile
	if err := json.Unmarshal(profileBody, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	roleBody, err := c.withAccessToken(ctx, signIn.Token, "/users/users/role/"+profile.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}
	role, err := decode[struct {
		Role string `json:"role"`
	}](roleBody)
	if err != nil {
		return nil, err
	}

	return &SignInResult{Token: signIn.Token, Profile: profile, Role: role.Role}, nil
}

func (c *Client) withAccessToken(ctx context.Context, token, path string) ([]byte, error) {
	header := http.Header{}
	header.Set("x-access-token", token)
	return c.send(ctx, http.MethodGet, path, nil, header)
}

type SignUpRequest struct {
	FirstName string `json:"user_firstname"`
	LastName  string `json:"user_lastname"`
	Email     string `json:"user_email"`
	Password  string `json:"user_password"`
	Phone     string `json:"user_phonenumber"`
	UniqueID  string `json:"user_unique_id"`
	RoleID    int    `json:"role_id"`
}

// SignUp registers a customer account. UniqueID is generated when empty.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) error {
	if req.UniqueID == "" {
		req.UniqueID = uuid.NewString()
	}
	if req.RoleID == 0 {
		req.RoleID = customerRoleID
	}
	_, err := c.DoRequest(ctx, http.MethodPost, "/users/signup/", req)
	return err
}
