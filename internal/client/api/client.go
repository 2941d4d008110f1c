package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/iudanet/puapi/internal/crypto"
	"github.com/iudanet/puapi/pkg/api"
)

// Адреса по умолчанию
const (
	DefaultSessionsURL = "https://sar.simulogics.games/api/sessions/"
	DefaultUsersURL    = "https://sar.simulogics.games/api/pu/users/"
	DefaultEdgeURL     = "https://apex.prosperousuniverse.com/"
	DefaultOrigin      = "https://prosperousuniverse.com"
	DefaultLandingPage = "https://prosperousuniverse.com/"
	DefaultTimeout     = 10 * time.Second

	// IngressCookieName - cookie маршрутизации edge хоста
	IngressCookieName = "INGRESSCOOKIE"

	// maxErrorBody - сколько байт тела ответа включать в StatusError
	maxErrorBody = 512
)

// Config описывает адреса и заголовки клиента
type Config struct {
	// HTTPClient - опциональный транспорт. Если у него нет cookie jar, клиент создаст свой.
	HTTPClient *http.Client

	// Logger - если задан, каждый запрос логируется (без query и тел)
	Logger *slog.Logger

	SessionsURL    string
	UsersURL       string
	EdgeURL        string
	Origin         string
	LandingPage    string
	UserAgent      string
	AcceptLanguage string

	// Timeout ограничивает каждую попытку запроса
	Timeout time.Duration
}

func (c *Config) setDefaults() {
	if c.SessionsURL == "" {
		c.SessionsURL = DefaultSessionsURL
	}
	if c.UsersURL == "" {
		c.UsersURL = DefaultUsersURL
	}
	if c.EdgeURL == "" {
		c.EdgeURL = DefaultEdgeURL
	}
	if c.Origin == "" {
		c.Origin = DefaultOrigin
	}
	if c.LandingPage == "" {
		c.LandingPage = DefaultLandingPage
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.AcceptLanguage == "" {
		c.AcceptLanguage = DefaultAcceptLanguage
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}

// Client представляет HTTP клиент для API авторизации и edge хоста игры.
// Cookie, полученные в ответах, сохраняются в jar и уходят в последующих запросах.
type Client struct {
	httpClient *http.Client
	usersURL   *url.URL
	edgeURL    *url.URL
	cfg        Config
}

// NewClient создает новый API клиент
func NewClient(cfg Config) (*Client, error) {
	cfg.setDefaults()

	if _, err := parseAbsoluteURL(cfg.SessionsURL); err != nil {
		return nil, fmt.Errorf("invalid sessions url: %w", err)
	}
	usersURL, err := parseAbsoluteURL(cfg.UsersURL)
	if err != nil {
		return nil, fmt.Errorf("invalid users url: %w", err)
	}
	edgeURL, err := parseAbsoluteURL(cfg.EdgeURL)
	if err != nil {
		return nil, fmt.Errorf("invalid edge url: %w", err)
	}

	var hc http.Client
	if cfg.HTTPClient != nil {
		hc = *cfg.HTTPClient
	}
	if hc.Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		hc.Jar = jar
	}
	hc.Timeout = cfg.Timeout
	if cfg.Logger != nil {
		hc.Transport = newLoggingTransport(hc.Transport, cfg.Logger)
	}

	return &Client{
		httpClient: &hc,
		usersURL:   usersURL,
		edgeURL:    edgeURL,
		cfg:        cfg,
	}, nil
}

// CreateSession выполняет POST /api/sessions/ с логином и паролем.
// Возвращает разобранный ответ и исходное тело.
func (c *Client) CreateSession(ctx context.Context, email, password string) (*api.SessionResponse, json.RawMessage, error) {
	body := api.SessionRequest{
		Login:      email,
		Password:   password,
		Persistent: true,
		Method:     "password",
		Brand:      "pu",
		Metadata:   api.SessionMetadata{LandingPage: c.cfg.LandingPage},
	}

	headers := c.sharedHeaders()
	headers.Set("Referer", c.originPage("/auth/login"))

	var resp api.SessionResponse
	raw, err := c.doJSON(ctx, http.MethodPost, c.cfg.SessionsURL, headers, body, &resp)
	if err != nil {
		return nil, nil, fmt.Errorf("create session request failed: %w", err)
	}
	if err := resp.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return &resp, raw, nil
}

// GetUser получает профиль игрока по его id, используя bearer token сессии
func (c *Client) GetUser(ctx context.Context, playerID, token string) (*api.UserResponse, json.RawMessage, error) {
	if playerID == "" {
		return nil, nil, fmt.Errorf("%w: empty player id", ErrMalformedResponse)
	}

	headers := c.sharedHeaders()
	headers.Set("Authorization", "Bearer "+token)
	headers.Set("Referer", c.originPage("/account"))

	var resp api.UserResponse
	raw, err := c.doJSON(ctx, http.MethodGet, c.UserURL(playerID), headers, nil, &resp)
	if err != nil {
		return nil, nil, fmt.Errorf("get user request failed: %w", err)
	}
	if err := resp.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return &resp, raw, nil
}

// GetIngressCookie запрашивает главную страницу edge хоста и возвращает значение INGRESSCOOKIE.
// Отсутствие cookie - не ошибка: возвращается пустая строка.
func (c *Client) GetIngressCookie(ctx context.Context) (string, error) {
	resp, _, err := c.do(ctx, http.MethodGet, c.edgeURL.String(), c.sharedHeaders(), nil)
	if err != nil {
		return "", fmt.Errorf("ingress request failed: %w", err)
	}

	for _, ck := range resp.Cookies() {
		if ck.Name == IngressCookieName {
			return ck.Value, nil
		}
	}
	// cookie могла прийти на редиректе - проверяем jar
	for _, ck := range c.httpClient.Jar.Cookies(c.edgeURL) {
		if ck.Name == IngressCookieName {
			return ck.Value, nil
		}
	}
	return "", nil
}

// GetSocketSID выполняет polling handshake socket.io и возвращает sid транспортной сессии
func (c *Client) GetSocketSID(ctx context.Context, now time.Time) (string, error) {
	socketURL := c.edgeURL.ResolveReference(&url.URL{Path: "socket.io/"})
	target, err := EncodeURLParams(socketURL.String(), map[string]string{
		"EIO":       "4",
		"transport": "polling",
		"t":         crypto.TimeSignature(now),
	})
	if err != nil {
		return "", err
	}

	_, body, err := c.do(ctx, http.MethodGet, target, c.socketHeaders(), nil)
	if err != nil {
		return "", fmt.Errorf("socket handshake request failed: %w", err)
	}

	handshake, err := ParseSocketHandshake(body)
	if err != nil {
		return "", err
	}
	return handshake.SID, nil
}

// ParseSocketHandshake разбирает ответ polling handshake.
// Перед JSON идет префикс пакета engine.io, поэтому разбор начинается с первой '{'.
func ParseSocketHandshake(body []byte) (*api.SocketHandshake, error) {
	start := bytes.IndexByte(body, '{')
	if start < 0 {
		return nil, fmt.Errorf("%w: socket handshake has no JSON payload", ErrMalformedResponse)
	}

	var handshake api.SocketHandshake
	if err := json.Unmarshal(body[start:], &handshake); err != nil {
		return nil, fmt.Errorf("%w: failed to decode socket handshake: %w", ErrMalformedResponse, err)
	}
	if handshake.SID == "" {
		return nil, fmt.Errorf("%w: socket handshake without sid", ErrMalformedResponse)
	}
	return &handshake, nil
}

// SetCookies записывает cookie в jar для edge хоста
func (c *Client) SetCookies(cookies []*http.Cookie) {
	c.httpClient.Jar.SetCookies(c.edgeURL, cookies)
}

// Cookies возвращает cookie, которые jar отправит на edge хост
func (c *Client) Cookies() []*http.Cookie {
	return c.httpClient.Jar.Cookies(c.edgeURL)
}

// EdgeHost возвращает имя edge хоста без порта
func (c *Client) EdgeHost() string {
	return c.edgeURL.Hostname()
}

// HTTPClient возвращает транспорт с заполненным cookie jar для последующих запросов
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// UserURL склеивает базовый адрес профилей с id игрока
func (c *Client) UserURL(playerID string) string {
	return c.usersURL.ResolveReference(&url.URL{Path: playerID}).String()
}

// EncodeURLParams заменяет query базового адреса на params
func EncodeURLParams(baseURL string, params map[string]string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse url: %w", err)
	}

	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	u.RawQuery = values.Encode()

	return u.String(), nil
}

// doJSON кодирует body в JSON, выполняет запрос и декодирует ответ в result
func (c *Client) doJSON(ctx context.Context, method, target string, headers http.Header, body, result any) (json.RawMessage, error) {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
		headers.Set("Content-Type", "application/json")
	}

	_, respBody, err := c.do(ctx, method, target, headers, payload)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", ErrMalformedResponse, err)
	}
	return json.RawMessage(respBody), nil
}

// do выполняет HTTP запрос и читает тело ответа целиком
func (c *Client) do(ctx context.Context, method, target string, headers http.Header, payload []byte) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header[k] = v
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to read response body: %w", ErrTransport, err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, &StatusError{
			Method:     method,
			URL:        redactQuery(target),
			StatusCode: resp.StatusCode,
			Body:       truncate(strings.TrimSpace(string(respBody)), maxErrorBody),
		}
	}

	return resp, respBody, nil
}

func parseAbsoluteURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("url %q must be absolute", raw)
	}
	return u, nil
}

func redactQuery(target string) string {
	if i := strings.IndexByte(target, '?'); i >= 0 {
		return target[:i]
	}
	return target
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
