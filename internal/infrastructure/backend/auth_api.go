package backend

import (
	"context"
	"errors"
	"net/http"

	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/domain/repository"
)

var ErrMissingToken = errors.New("login response carried no access token")

type authAPI struct {
	client *Client
}

func NewAuthRepository(client *Client) repository.AuthRepository {
	return &authAPI{client: client}
}

type loginWire struct {
	User   entity.User `json:"user"`
	Token  string      `json:"token"`
	Access string      `json:"access"`
	Tokens struct {
		Access string `json:"access"`
	} `json:"tokens"`
}

func (r *authAPI) Login(ctx context.Context, username, password string) (*repository.LoginResult, error) {
	body := map[string]string{"username": username, "password": password}

	var resp loginWire
	if err := r.client.do(ctx, "auth.login", http.MethodPost, "/auth/login/", "", body, &resp); err != nil {
		return nil, err
	}

	token := resp.Tokens.Access
	if token == "" {
		token = resp.Access
	}
	if token == "" {
		token = resp.Token
	}
	if token == "" {
		return nil, ErrMissingToken
	}

	return &repository.LoginResult{User: resp.User, Token: token}, nil
}

func (r *authAPI) Register(ctx context.Context, form map[string]interface{}) (map[string]interface{}, error) {
	var created map[string]interface{}
	if err := r.client.do(ctx, "auth.register", http.MethodPost, "/auth/register/", "", form, &created); err != nil {
		return nil, err
	}
	return created, nil
}
