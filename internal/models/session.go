package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/puapi/pkg/api"
)

var (
	// ErrSessionDataRequired - данные профиля применяются раньше данных сессии
	ErrSessionDataRequired = errors.New("session data must be applied before user data")

	// ErrSessionDataApplied - повторное применение этапа к уже собранной сессии
	ErrSessionDataApplied = errors.New("user session already populated, start a fresh handshake")
)

// sessionPhase - сколько этапов сборки уже применено
type sessionPhase int

const (
	phaseEmpty sessionPhase = iota
	phaseSession
	phaseUser
)

// UserSession собирается в два этапа: WithSessionData (ответ /api/sessions/),
// затем WithUserData (ответ /api/pu/users/{id}). Порядок проверяется в runtime.
//
// Если handshake прервался, сессия остается частично заполненной и не должна использоваться.
type UserSession struct {
	// Поля сессии (из /api/sessions/)
	SessionCreated             *time.Time
	SessionExpiry              *time.Time
	SessionLastActivity        *time.Time
	SessionTermination         *time.Time
	SessionID                  string
	SessionToken               string
	SessionAccountDisposableID string

	// Поля аккаунта
	Registered         *time.Time
	Confirmed          *time.Time
	Deleted            LenientTime
	AccountID          string
	DisplayName        string
	Email              string
	PreferredLanguage  string
	ConfirmationSource string
	DeleteReason       string
	Coupon             string
	Roles              []string

	// Поля игрока (из /api/pu/users/{id})
	FirstAccessGameTimeMonthsLeft *int
	SubscriptionExpiry            LenientTime
	PlayerID                      string
	PlayerDisposableID            string
	HighestTier                   string
	SubscriptionLevel             string
	Perks                         []string

	// Исходные ответы для диагностики
	SessionRaw json.RawMessage
	UserRaw    json.RawMessage

	phase sessionPhase
}

// NewUserSession создает пустую сессию
func NewUserSession() *UserSession {
	return &UserSession{}
}

// WithSessionData заполняет поля сессии и аккаунта.
// PlayerID берется из account.userIds.pu и позже перезаписывается WithUserData.
func (s *UserSession) WithSessionData(resp *api.SessionResponse, raw json.RawMessage) (*UserSession, error) {
	if s.phase != phaseEmpty {
		return s, ErrSessionDataApplied
	}
	if resp == nil {
		return s, errors.New("session response is nil")
	}

	var err error
	if s.SessionCreated, err = ParseTimestamp(resp.Created); err != nil {
		return s, fmt.Errorf("created: %w", err)
	}
	if s.SessionExpiry, err = ParseTimestamp(resp.Expiry); err != nil {
		return s, fmt.Errorf("expiry: %w", err)
	}
	if s.SessionLastActivity, err = ParseTimestamp(resp.LastActivity); err != nil {
		return s, fmt.Errorf("lastActivity: %w", err)
	}
	if s.SessionTermination, err = ParseTimestamp(resp.Termination); err != nil {
		return s, fmt.Errorf("termination: %w", err)
	}

	acc := resp.Account
	if s.Registered, err = ParseTimestamp(acc.Registered); err != nil {
		return s, fmt.Errorf("account.registered: %w", err)
	}
	if s.Confirmed, err = ParseTimestamp(acc.Confirmed); err != nil {
		return s, fmt.Errorf("account.confirmed: %w", err)
	}

	s.SessionID = resp.ID
	s.SessionToken = resp.Token
	s.SessionAccountDisposableID = acc.DisposableID

	s.AccountID = acc.ID
	s.DisplayName = acc.DisplayName
	s.Email = acc.Email
	s.PreferredLanguage = acc.PreferredLanguage
	s.ConfirmationSource = acc.ConfirmationSource
	s.Deleted = parseLenient(acc.Deleted)
	s.DeleteReason = acc.DeleteReason
	s.Roles = acc.Roles
	s.Coupon = acc.Coupon

	s.PlayerID = acc.UserIDs.PU

	s.SessionRaw = raw
	s.phase = phaseSession

	return s, nil
}

// WithUserData заполняет поля игрока.
// Ответ профиля главнее: PlayerID, AccountID и Registered перезаписываются.
func (s *UserSession) WithUserData(resp *api.UserResponse, raw json.RawMessage) (*UserSession, error) {
	switch s.phase {
	case phaseEmpty:
		return s, ErrSessionDataRequired
	case phaseUser:
		return s, ErrSessionDataApplied
	}
	if resp == nil {
		return s, errors.New("user response is nil")
	}

	registered, err := ParseTimestamp(resp.Creation)
	if err != nil {
		return s, fmt.Errorf("creation: %w", err)
	}

	s.PlayerID = resp.ID
	s.PlayerDisposableID = resp.DisposableID
	if resp.AccountID != "" {
		s.AccountID = resp.AccountID
	}
	if registered != nil {
		s.Registered = registered
	}
	s.HighestTier = resp.HighestTier
	s.Perks = resp.Perks
	s.SubscriptionLevel = resp.Subscription.Level
	s.SubscriptionExpiry = parseLenient(resp.Subscription.Expiry)
	s.FirstAccessGameTimeMonthsLeft = resp.FirstAccessGameTimeMonthsLeft

	s.UserRaw = raw
	s.phase = phaseUser

	return s, nil
}

// Complete сообщает, что оба этапа применены
func (s *UserSession) Complete() bool {
	return s != nil && s.phase == phaseUser
}

// Expired проверяет срок сессии. Сессия без срока считается действующей.
func (s *UserSession) Expired(now time.Time) bool {
	if s.SessionExpiry == nil {
		return false
	}
	return !now.Before(*s.SessionExpiry)
}

func (s *UserSession) String() string {
	return fmt.Sprintf("UserSession(%s | %s)", s.DisplayName, s.SubscriptionLevel)
}
