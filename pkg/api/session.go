package api

import (
	"encoding/json"
	"errors"
)

// SessionRequest представляет тело запроса POST /api/sessions/
type SessionRequest struct {
	Metadata   SessionMetadata `json:"metadata"`
	Login      string          `json:"login"`
	Password   string          `json:"password"`
	Method     string          `json:"method"` // всегда "password"
	Brand      string          `json:"brand"`  // всегда "pu"
	Persistent bool            `json:"persistent"`
}

// SessionMetadata описывает страницу, с которой пришел пользователь
type SessionMetadata struct {
	LandingPage string `json:"landingPage"`
}

// SessionResponse представляет ответ на создание сессии
// Временные метки приходят в ISO-8601 и могут быть пустыми или null
type SessionResponse struct {
	ID           string  `json:"id"`
	Token        string  `json:"token"` // bearer token для последующих запросов
	Created      string  `json:"created"`
	Expiry       string  `json:"expiry"`
	LastActivity string  `json:"lastActivity"`
	Termination  string  `json:"termination"`
	Account      Account `json:"account"`
}

// Account - аккаунт, которому принадлежит сессия
type Account struct {
	// Deleted иногда приходит не в ISO-8601, поэтому разбирается отдельно
	Deleted            json.RawMessage `json:"deleted,omitempty"`
	UserIDs            AccountUserIDs  `json:"userIds"`
	ID                 string          `json:"id"`
	DisposableID       string          `json:"disposableId"`
	DisplayName        string          `json:"displayName"`
	Email              string          `json:"email"`
	PreferredLanguage  string          `json:"preferredLanguage"`
	Registered         string          `json:"registered"`
	Confirmed          string          `json:"confirmed"`
	ConfirmationSource string          `json:"confirmationSource"`
	DeleteReason       string          `json:"deleteReason"`
	Coupon             string          `json:"coupon"`
	Roles              []string        `json:"roles"`
}

// AccountUserIDs - идентификаторы игрока в продуктах издателя
type AccountUserIDs struct {
	PU string `json:"pu"`
}

// Validate проверяет наличие полей, без которых handshake продолжить нельзя
func (r *SessionResponse) Validate() error {
	switch {
	case r.ID == "":
		return errors.New("session response: missing id")
	case r.Token == "":
		return errors.New("session response: missing token")
	case r.Account.ID == "":
		// без id аккаунта нет и самого объекта account
		return errors.New("session response: missing account.id")
	case r.Account.UserIDs.PU == "":
		return errors.New("session response: missing account.userIds.pu")
	}
	return nil
}

// UserResponse представляет ответ GET /api/pu/users/{id}
type UserResponse struct {
	FirstAccessGameTimeMonthsLeft *int         `json:"firstAccessGameTimeMonthsLeft"`
	Subscription                  Subscription `json:"subscription"`
	ID                            string       `json:"id"`
	DisposableID                  string       `json:"disposableId"`
	AccountID                     string       `json:"accountId"`
	Creation                      string       `json:"creation"`
	HighestTier                   string       `json:"highestTier"`
	Perks                         []string     `json:"perks"`
}

// Subscription описывает текущую подписку игрока
type Subscription struct {
	// Expiry разбирается так же мягко, как Account.Deleted
	Expiry json.RawMessage `json:"expiry,omitempty"`
	Level  string          `json:"level"`
}

// Validate проверяет обязательные поля профиля
func (r *UserResponse) Validate() error {
	switch {
	case r.ID == "":
		return errors.New("user response: missing id")
	case r.AccountID == "":
		return errors.New("user response: missing accountId")
	}
	return nil
}

// SocketHandshake - JSON часть ответа socket.io на polling handshake
type SocketHandshake struct {
	SID          string   `json:"sid"`
	Upgrades     []string `json:"upgrades"`
	PingInterval int      `json:"pingInterval"`
	PingTimeout  int      `json:"pingTimeout"`
	MaxPayload   int      `json:"maxPayload"`
}
