// Package client is a thin SDK for the eletrigo admin API. Documents travel
// as loosely typed maps, matching the pass-through nature of the server; the
// store-native "_id" field is normalized to "id" on every returned document.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Document is one record as returned by the API.
type Document map[string]any

type Client struct {
	http  *resty.Client
	token string
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

// Token returns the session token kept from the last successful AdminLogin.
func (c *Client) Token() string {
	return c.token
}

// mapID renames the store identifier field to a uniform "id" key, leaving
// every other field unchanged.
func mapID(doc Document) Document {
	out := make(Document, len(doc))
	var id any
	for k, v := range doc {
		switch k {
		case "_id":
			id = v
		case "id":
			if id == nil {
				id = v
			}
		default:
			out[k] = v
		}
	}
	if id == nil {
		id = ""
	}
	out["id"] = fmt.Sprint(id)
	return out
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		text := strings.TrimSpace(resp.String())
		if text == "" {
			return nil, fmt.Errorf("HTTP %d", resp.StatusCode())
		}
		return nil, errors.New(text)
	}
	return resp.Body(), nil
}

func (c *Client) list(ctx context.Context, path string) ([]Document, error) {
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var docs []Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}
	out := make([]Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, mapID(doc))
	}
	return out, nil
}

func (c *Client) one(ctx context.Context, method, path string, payload Document) (Document, error) {
	raw, err := c.do(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return mapID(doc), nil
}

// Health reports store connectivity as seen by the server.
func (c *Client) Health(ctx context.Context) (Document, error) {
	raw, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

type loginResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
	Error string `json:"error"`
}

// AdminLogin exchanges the admin credentials for a session token and keeps it
// on the client for later calls.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, "/auth/admin/login", Document{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	var body loginResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", err
	}
	if !body.OK {
		if body.Error != "" {
			return "", errors.New(body.Error)
		}
		return "", errors.New("login failed")
	}

	c.token = body.Token
	return body.Token, nil
}

// AdminMe returns the claims of the stored session token.
func (c *Client) AdminMe(ctx context.Context) (Document, error) {
	req := c.http.R().SetContext(ctx).SetAuthToken(c.token)
	resp, err := req.Get("/auth/admin/me")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		text := strings.TrimSpace(resp.String())
		if text == "" {
			return nil, fmt.Errorf("HTTP %d", resp.StatusCode())
		}
		return nil, errors.New(text)
	}
	var doc Document
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Electricians

func (c *Client) GetElectricians(ctx context.Context) ([]Document, error) {
	return c.list(ctx, "/electricians")
}

func (c *Client) CreateElectrician(ctx context.Context, payload Document) (Document, error) {
	return c.one(ctx, http.MethodPost, "/electricians", payload)
}

func (c *Client) UpdateElectrician(ctx context.Context, id string, payload Document) (Document, error) {
	return c.one(ctx, http.MethodPut, "/electricians/"+id, payload)
}

// Clients

func (c *Client) GetClients(ctx context.Context) ([]Document, error) {
	return c.list(ctx, "/clients")
}

func (c *Client) CreateClient(ctx context.Context, payload Document) (Document, error) {
	return c.one(ctx, http.MethodPost, "/clients", payload)
}

func (c *Client) UpdateClient(ctx context.Context, id string, payload Document) (Document, error) {
	return c.one(ctx, http.MethodPut, "/clients/"+id, payload)
}

// Products

func (c *Client) GetProducts(ctx context.Context) ([]Document, error) {
	return c.list(ctx, "/products")
}

func (c *Client) CreateProduct(ctx context.Context, payload Document) (Document, error) {
	return c.one(ctx, http.MethodPost, "/products", payload)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, payload Document) (Document, error) {
	return c.one(ctx, http.MethodPut, "/products/"+id, payload)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/products/"+id, nil)
	return err
}

// Services

func (c *Client) GetServices(ctx context.Context) ([]Document, error) {
	return c.list(ctx, "/services")
}

func (c *Client) CreateService(ctx context.Context, payload Document) (Document, error) {
	return c.one(ctx, http.MethodPost, "/services", payload)
}

func (c *Client) UpdateService(ctx context.Context, id string, payload Document) (Document, error) {
	return c.one(ctx, http.MethodPut, "/services/"+id, payload)
}
