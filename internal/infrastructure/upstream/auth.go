package upstream

import (
	"context"
	"net/http"

	"github.com/localspot/directory-gateway/internal/core/domain"
	"github.com/localspot/directory-gateway/internal/core/ports"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// authEnvelope covers both response shapes the API is known to produce:
// {user, token} at the top level or nested under a data wrapper.
type authEnvelope struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
	Data  *struct {
		User  *domain.User `json:"user"`
		Token string       `json:"token"`
	} `json:"data"`
}

// credentials probes the known shapes in a fixed order: top-level first,
// then data-wrapped. Nil when neither yields a complete pair.
func (e *authEnvelope) credentials() *domain.Credentials {
	if creds := (&domain.Credentials{Token: e.Token, User: e.User}); creds.Complete() {
		return creds
	}
	if e.Data != nil {
		if creds := (&domain.Credentials{Token: e.Data.Token, User: e.Data.User}); creds.Complete() {
			return creds
		}
	}
	return nil
}

// Login exchanges credentials for a token/user pair. The confirmation of the
// pair's shape happens here: a success status that yields no complete pair is
// a malformed response, not a rejection.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Credentials, error) {
	var envelope authEnvelope
	err := c.do(ctx, "login", http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &envelope)
	if err != nil {
		return nil, err
	}

	creds := envelope.credentials()
	if creds == nil {
		return nil, domain.ErrMalformedResponse
	}
	return creds, nil
}

// Register creates an account. The remote API logs the new account in as part
// of registration and answers with the same envelope as login.
func (c *Client) Register(ctx context.Context, input ports.RegisterInput) (*domain.Credentials, error) {
	var envelope authEnvelope
	req := registerRequest{
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if err := c.do(ctx, "register", http.MethodPost, "/auth/register", nil, req, &envelope); err != nil {
		return nil, err
	}

	creds := envelope.credentials()
	if creds == nil {
		return nil, domain.ErrMalformedResponse
	}
	return creds, nil
}
