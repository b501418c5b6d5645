package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register crea un admin y devuelve el mensaje de confirmación.
func (c *Client) Register(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.DoJSON(ctx, http.MethodPost, "/api/auth/register", "", credentials{username, password}, &out)
	return out.Message, err
}

// Login devuelve el Bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.DoJSON(ctx, http.MethodPost, "/api/auth/login", "", credentials{username, password}, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// ApplicationSummary es la vista mínima que muestra el CLI.
type ApplicationSummary struct {
	ID        string
	PetName   string
	Name      string
	Email     string
	CreatedAt time.Time
}

// Applications lista las solicitudes (requiere token).
func (c *Client) Applications(ctx context.Context, token string) ([]ApplicationSummary, error) {
	var raw json.RawMessage
	if err := c.DoJSON(ctx, http.MethodGet, "/api/applications", token, nil, &raw); err != nil {
		return nil, err
	}

	items := gjson.ParseBytes(raw).Array()
	out := make([]ApplicationSummary, 0, len(items))
	for _, it := range items {
		created, _ := time.Parse(time.RFC3339Nano, it.Get("createdAt").String())
		out = append(out, ApplicationSummary{
			ID:        it.Get("_id").String(),
			PetName:   it.Get("petName").String(),
			Name:      it.Get("name").String(),
			Email:     it.Get("email").String(),
			CreatedAt: created,
		})
	}
	return out, nil
}
