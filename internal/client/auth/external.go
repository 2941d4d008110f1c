package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"github.com/iudanet/puapi/internal/client/api"
	"github.com/iudanet/puapi/internal/crypto"
	"github.com/iudanet/puapi/internal/models"
	"github.com/iudanet/puapi/internal/retry"
	"github.com/iudanet/puapi/internal/validation"
	pkgapi "github.com/iudanet/puapi/pkg/api"
)

// Имена и параметры синтезируемых cookie
const (
	CookieConsent = "cookie_consent"
	CookieToken   = "pu-id"
	CookieIngress = api.IngressCookieName

	DefaultCookieDomain     = ".prosperousuniverse.com"
	DefaultEdgeCookieDomain = "apex.prosperousuniverse.com"

	consentTTL = (365+30+5)*24*time.Hour + 12*time.Hour
	tokenTTL   = 12 * time.Hour
	ingressTTL = 365 * 24 * time.Hour
)

// Options - настройки ExternalAPIProvider. Нулевые значения заменяются значениями по умолчанию.
type Options struct {
	Logger *slog.Logger
	Now    func() time.Time

	// CookieDomain и EdgeCookieDomain по умолчанию выводятся из хоста транспорта
	CookieDomain     string
	EdgeCookieDomain string

	// Retries - количество попыток каждого шага
	Retries int
	// RetryDelay - пауза между попытками; отрицательное значение означает "без паузы"
	RetryDelay time.Duration
}

// ExternalAPIProvider авторизует игрока через внутреннее API игры:
// создает сессию, получает профиль и ingress cookie, затем выставляет cookie в jar транспорта.
//
// Один экземпляр рассчитан на один handshake за раз.
type ExternalAPIProvider struct {
	transport Transport
	logger    *slog.Logger
	now       func() time.Time
	creds     models.Credentials
	policy    retry.Policy

	cookieDomain     string
	edgeCookieDomain string

	user    *models.UserSession
	state   HandshakeState
	cookies []models.Cookie
	mu      sync.RWMutex
}

// NewExternalAPIProvider создает провайдер для указанных учетных данных
func NewExternalAPIProvider(transport Transport, creds models.Credentials, opts Options) (*ExternalAPIProvider, error) {
	if transport == nil {
		return nil, fmt.Errorf("transport is required")
	}
	if err := validation.ValidateCredentials(creds.Email, creds.Password); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Retries < 1 {
		opts.Retries = retry.DefaultAttempts
	}
	switch {
	case opts.RetryDelay == 0:
		opts.RetryDelay = retry.DefaultDelay
	case opts.RetryDelay < 0:
		opts.RetryDelay = 0
	}
	cookieDomain, edgeCookieDomain := CookieDomainsFor(transport.EdgeHost())
	if opts.CookieDomain == "" {
		opts.CookieDomain = cookieDomain
	}
	if opts.EdgeCookieDomain == "" {
		opts.EdgeCookieDomain = edgeCookieDomain
	}

	return &ExternalAPIProvider{
		transport: transport,
		logger:    opts.Logger,
		now:       opts.Now,
		creds:     creds,
		policy: retry.Policy{
			Attempts: opts.Retries,
			Delay:    opts.RetryDelay,
			RetryOn:  api.RetryableKinds(),
		},
		cookieDomain:     opts.CookieDomain,
		edgeCookieDomain: opts.EdgeCookieDomain,
		state:            StateIdle,
	}, nil
}

type sessionResult struct {
	resp *pkgapi.SessionResponse
	raw  json.RawMessage
}

type userResult struct {
	resp *pkgapi.UserResponse
	raw  json.RawMessage
}

// Authenticate выполняет handshake: сессия -> профиль -> ingress cookie.
// Каждый шаг повторяется по политике провайдера. При ошибке возвращается *StepError,
// а частично заполненная сессия остается доступной через GetUser только для диагностики.
func (p *ExternalAPIProvider) Authenticate(ctx context.Context) (*models.UserSession, error) {
	logger := p.logger.With(
		"handshake_id", uuid.NewString(),
		"account", crypto.Fingerprint(p.creds.Email),
	)
	user := models.NewUserSession()

	p.mu.Lock()
	p.user = user
	p.mu.Unlock()

	// 1. Создаем сессию
	p.setState(logger, StateSessionRequested)
	session, err := runStep(ctx, p, logger, StepCreateSession, func(ctx context.Context) (sessionResult, error) {
		logger.Debug("creating session")
		resp, raw, err := p.transport.CreateSession(ctx, p.creds.Email, p.creds.Password)
		return sessionResult{resp: resp, raw: raw}, err
	})
	if err != nil {
		return nil, p.fail(logger, err)
	}
	if _, err := user.WithSessionData(session.resp, session.raw); err != nil {
		return nil, p.fail(logger, malformed(StepCreateSession, err))
	}
	p.setState(logger, StateSessionEstablished)

	// 2. Получаем профиль игрока по id из ответа сессии
	p.setState(logger, StateProfileRequested)
	profile, err := runStep(ctx, p, logger, StepFetchUser, func(ctx context.Context) (userResult, error) {
		logger.Debug("fetching user profile", "player_id", user.PlayerID)
		resp, raw, err := p.transport.GetUser(ctx, user.PlayerID, user.SessionToken)
		return userResult{resp: resp, raw: raw}, err
	})
	if err != nil {
		return nil, p.fail(logger, err)
	}
	if _, err := user.WithUserData(profile.resp, profile.raw); err != nil {
		return nil, p.fail(logger, malformed(StepFetchUser, err))
	}
	p.setState(logger, StateProfileEstablished)

	// 3. Получаем ingress cookie; ее отсутствие не ошибка
	p.setState(logger, StateIngressRequested)
	ingress, err := runStep(ctx, p, logger, StepFetchIngress, func(ctx context.Context) (string, error) {
		logger.Debug("fetching ingress cookie")
		return p.transport.GetIngressCookie(ctx)
	})
	if err != nil {
		return nil, p.fail(logger, err)
	}
	if ingress == "" {
		logger.Warn("ingress cookie not present in response, continuing without routing token")
	}

	// 4. Выставляем cookie в jar транспорта и в собственный список
	cookies := p.buildCookies(user.SessionToken, ingress)
	httpCookies := make([]*http.Cookie, 0, len(cookies))
	for _, c := range cookies {
		httpCookies = append(httpCookies, c.HTTPCookie())
	}
	p.transport.SetCookies(httpCookies)
	if !hasCookie(p.transport.Cookies(), CookieToken) {
		logger.Warn("session cookies rejected by transport cookie jar",
			"edge_host", p.transport.EdgeHost(),
			"cookie_domain", p.cookieDomain,
			"edge_cookie_domain", p.edgeCookieDomain,
		)
	}

	p.mu.Lock()
	p.cookies = models.UpsertCookies(p.cookies, cookies)
	p.mu.Unlock()

	p.setState(logger, StateReady)
	logger.Info("authenticated", "player_id", user.PlayerID, "subscription", user.SubscriptionLevel)

	return user, nil
}

// CheckAuth сообщает, что handshake завершен и срок сессии не истек
func (p *ExternalAPIProvider) CheckAuth() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.state != StateReady || !p.user.Complete() {
		return false
	}
	return !p.user.Expired(p.now())
}

// GetUser возвращает сессию последнего handshake
func (p *ExternalAPIProvider) GetUser() *models.UserSession {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.user
}

// Cookies возвращает копию выставленных cookie
func (p *ExternalAPIProvider) Cookies() []models.Cookie {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]models.Cookie, len(p.cookies))
	copy(out, p.cookies)
	return out
}

// State возвращает текущее состояние handshake
func (p *ExternalAPIProvider) State() HandshakeState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// TransportSessionID получает sid для подключения к realtime транспорту.
// Имеет смысл вызывать после Authenticate, чтобы запрос ушел с cookie сессии.
func (p *ExternalAPIProvider) TransportSessionID(ctx context.Context) (string, error) {
	logger := p.logger.With("account", crypto.Fingerprint(p.creds.Email))

	return runStep(ctx, p, logger, StepTransportSession, func(ctx context.Context) (string, error) {
		return p.transport.GetSocketSID(ctx, p.now())
	})
}

// buildCookies синтезирует cookie, которые браузер получил бы после входа на сайт
func (p *ExternalAPIProvider) buildCookies(token, ingress string) []models.Cookie {
	now := p.now().UTC()
	return []models.Cookie{
		{
			Name:    CookieConsent,
			Value:   "accepted",
			Domain:  p.cookieDomain,
			Path:    "/",
			Expires: now.Add(consentTTL),
		},
		{
			Name:    CookieToken,
			Value:   token,
			Domain:  p.cookieDomain,
			Path:    "/",
			Expires: now.Add(tokenTTL),
		},
		{
			Name:    CookieIngress,
			Value:   ingress,
			Domain:  p.edgeCookieDomain,
			Path:    "/",
			Expires: now.Add(ingressTTL),
		},
	}
}

// CookieDomainsFor возвращает домены cookie для edge хоста:
// общий домен регистрации (".example.com") и сам хост.
// Для IP адресов и хостов без публичного суффикса оба домена равны хосту.
func CookieDomainsFor(host string) (cookieDomain, edgeCookieDomain string) {
	if host == "" {
		return DefaultCookieDomain, DefaultEdgeCookieDomain
	}
	if net.ParseIP(host) != nil {
		return host, host
	}

	site, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host, host
	}
	return "." + site, host
}

func hasCookie(cookies []*http.Cookie, name string) bool {
	for _, c := range cookies {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (p *ExternalAPIProvider) setState(logger *slog.Logger, state HandshakeState) {
	p.mu.Lock()
	prev := p.state
	p.state = state
	p.mu.Unlock()

	logger.Debug("handshake state changed", "from", prev, "to", state)
}

func (p *ExternalAPIProvider) fail(logger *slog.Logger, err error) error {
	p.setState(logger, StateFailed)
	return err
}

// runStep выполняет шаг handshake по политике провайдера и оборачивает ошибку в *StepError
func runStep[T any](ctx context.Context, p *ExternalAPIProvider, logger *slog.Logger, step Step, op func(ctx context.Context) (T, error)) (T, error) {
	policy := p.policy
	policy.OnError = func(attempt int, err error) {
		logger.Error("handshake step failed",
			"step", step,
			"attempt", attempt,
			"max_attempts", policy.Attempts,
			"error_kind", api.ErrorKind(err),
			"error", err,
		)
	}

	attempts := 0
	result, err := retry.Do(ctx, policy, func(ctx context.Context) (T, error) {
		attempts++
		return op(ctx)
	})
	if err != nil {
		return result, &StepError{
			Step:      step,
			Attempts:  attempts,
			Exhausted: attempts >= policy.Attempts && policy.IsRetryable(err),
			Err:       err,
		}
	}
	return result, nil
}

// malformed - ответ получен, но собрать из него сессию не удалось
func malformed(step Step, err error) error {
	return &StepError{
		Step: step,
		Err:  fmt.Errorf("%w: %w", api.ErrMalformedResponse, err),
	}
}
