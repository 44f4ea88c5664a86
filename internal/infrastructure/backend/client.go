// Package backend es el adaptador REST hacia el backend externo (auth, salud y acciones gateadas).
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/partner-portal/internal/application/dto"
	"github.com/jhoicas/partner-portal/internal/application/ports"
	"github.com/jhoicas/partner-portal/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa los puertos.
var (
	_ ports.IdentityClient  = (*Client)(nil)
	_ ports.HealthProbe     = (*Client)(nil)
	_ ports.ActionForwarder = (*Client)(nil)
)

const (
	mePath     = "/api/auth/me"
	healthPath = "/api/v1/health"

	maxBodyBytes = 256 * 1024
)

// Client cliente HTTP del backend. Usa net/http de la librería estándar; sin reintentos propios.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. timeout <= 0 usa 10 s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Classify traduce un código HTTP a la taxonomía de errores:
// 2xx → nil, 401 → Unauthenticated, 403 → Forbidden, resto → Transient.
func Classify(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return domain.ErrUnauthenticated
	case status == http.StatusForbidden:
		return domain.ErrForbidden
	default:
		return domain.ErrTransient
	}
}

// Me consulta la identidad de la credencial. Solo 401 es Unauthenticated; cualquier
// otro fallo (incluido 403) es transitorio.
func (c *Client) Me(ctx context.Context, credential string) (*dto.MeResponse, error) {
	status, raw, err := c.do(ctx, http.MethodGet, mePath, credential, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		return nil, fmt.Errorf("backend: %s HTTP %d: %w", mePath, status, domain.ErrUnauthenticated)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("backend: %s HTTP %d: %w", mePath, status, domain.ErrTransient)
	}
	var me dto.MeResponse
	if err := json.Unmarshal(raw, &me); err != nil {
		return nil, fmt.Errorf("backend: deserializar %s: %v: %w", mePath, err, domain.ErrTransient)
	}
	return &me, nil
}

// Ping consulta el endpoint de salud.
func (c *Client) Ping(ctx context.Context) error {
	status, _, err := c.do(ctx, http.MethodGet, healthPath, "", nil)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("backend: health HTTP %d: %w", status, domain.ErrTransient)
	}
	return nil
}

// Forward reenvía una acción con la credencial y clasifica la respuesta.
// Devuelve el status y el cuerpo JSON aun cuando hay error clasificado.
func (c *Client) Forward(ctx context.Context, method, path, credential string, body []byte) (int, json.RawMessage, error) {
	status, raw, err := c.do(ctx, method, path, credential, body)
	if err != nil {
		return 0, nil, err
	}
	if cerr := Classify(status); cerr != nil {
		return status, jsonOrNil(raw), fmt.Errorf("backend: %s %s HTTP %d: %w", method, path, status, cerr)
	}
	return status, jsonOrNil(raw), nil
}

func (c *Client) do(ctx context.Context, method, path, credential string, body []byte) (int, []byte, error) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return 0, nil, fmt.Errorf("backend: crear request: %v: %w", err, domain.ErrTransient)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, nil, fmt.Errorf("backend: timeout o cancelación: %v: %w", ctx.Err(), domain.ErrTransient)
		}
		return 0, nil, fmt.Errorf("backend: llamada HTTP fallida: %v: %w", err, domain.ErrTransient)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("backend: leer respuesta: %v: %w", err, domain.ErrTransient)
	}
	return resp.StatusCode, raw, nil
}

func jsonOrNil(raw []byte) json.RawMessage {
	if len(bytes.TrimSpace(raw)) == 0 || !json.Valid(raw) {
		return nil
	}
	return json.RawMessage(raw)
}
