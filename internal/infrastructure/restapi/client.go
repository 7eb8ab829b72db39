// Package restapi implementa los puertos de gateway sobre el colaborador
// HTTP/JSON remoto. Cada petición lleva el token portador del proveedor de
// credenciales inyectado y un id de correlación propio; los fallos se mapean
// a la taxonomía de errores del dominio.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ludwigkubler/WOLF-APP/internal/domain"
)

// CredentialProvider entrega el token portador vigente. Un token vacío se
// interpreta como "sin sesión" y la petición sale sin cabecera Authorization;
// el servidor responderá 401 y el error llegará con su detail.
type CredentialProvider interface {
	Token() (string, error)
}

// Client es el cliente HTTP base compartido por todos los gateways.
type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialProvider
	log     zerolog.Logger
}

// NewClient construye el cliente. El timeout es el único límite aplicado:
// no hay reintentos automáticos, todo fallo sube inmediatamente al operador.
func NewClient(baseURL string, timeout time.Duration, creds CredentialProvider, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log.With().Str("componente", "restapi").Logger(),
	}
}

// errorBody es el cuerpo de error del colaborador: {"detail": "..."}.
type errorBody struct {
	Detail string `json:"detail"`
}

// apiError es el fallo crudo de una petición, antes de clasificarlo como
// FetchError o PersistError según el tipo de operación.
type apiError struct {
	status int
	detail string
	err    error
}

func (e *apiError) Error() string {
	if e.detail != "" {
		return fmt.Sprintf("api (%d): %s", e.status, e.detail)
	}
	if e.err != nil {
		return "api: " + e.err.Error()
	}
	return fmt.Sprintf("api (%d)", e.status)
}

// get ejecuta un GET y decodifica la respuesta en out. Fallos → *domain.FetchError.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.do(ctx, http.MethodGet, path, query, nil, out); err != nil {
		ae := err.(*apiError)
		return &domain.FetchError{Status: ae.status, Detail: ae.detail, Err: ae.err}
	}
	return nil
}

// send ejecuta una mutación (POST/PUT/DELETE). Fallos → *domain.PersistError.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	if err := c.do(ctx, method, path, nil, body, out); err != nil {
		ae := err.(*apiError)
		return &domain.PersistError{Status: ae.status, Detail: ae.detail, Err: ae.err}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &apiError{err: fmt.Errorf("serializar cuerpo: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &apiError{err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	token, err := c.creds.Token()
	if err != nil {
		return &apiError{err: fmt.Errorf("credenciales: %w", err)}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Str("request_id", requestID).Str("method", method).
			Str("path", path).Err(err).Msg("petición fallida")
		return &apiError{err: err}
	}
	defer resp.Body.Close()

	c.log.Debug().Str("request_id", requestID).Str("method", method).
		Str("path", path).Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).Msg("petición")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		_ = json.Unmarshal(raw, &eb)
		return &apiError{status: resp.StatusCode, detail: eb.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apiError{status: resp.StatusCode, err: fmt.Errorf("decodificar respuesta: %w", err)}
	}
	return nil
}
