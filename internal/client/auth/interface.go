package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/iudanet/puapi/internal/models"
	"github.com/iudanet/puapi/pkg/api"
)

//go:generate moq -out mock_transport_test.go . Transport

// Provider - способ получить авторизованную сессию игрока.
// Сейчас реализован только ExternalAPIProvider; сюда же встанет провайдер на базе браузера.
type Provider interface {
	// Authenticate выполняет handshake и возвращает заполненную сессию
	Authenticate(ctx context.Context) (*models.UserSession, error)

	// CheckAuth сообщает, что последний handshake завершился успешно и сессия не истекла
	CheckAuth() bool

	// GetUser возвращает сессию последнего handshake (может быть nil)
	GetUser() *models.UserSession
}

// Transport - HTTP вызовы, нужные провайдеру. Реализуется api.Client.
type Transport interface {
	CreateSession(ctx context.Context, email, password string) (*api.SessionResponse, json.RawMessage, error)
	GetUser(ctx context.Context, playerID, token string) (*api.UserResponse, json.RawMessage, error)
	GetIngressCookie(ctx context.Context) (string, error)
	GetSocketSID(ctx context.Context, now time.Time) (string, error)
	SetCookies(cookies []*http.Cookie)

	// Cookies возвращает cookie, которые jar отправит на edge хост
	Cookies() []*http.Cookie
	// EdgeHost - хост edge сервера, для которого выставляются cookie
	EdgeHost() string
}
