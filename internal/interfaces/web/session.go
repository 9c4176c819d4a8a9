package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/courtdesk/basketref/internal/domain/user"
)

const sessionCookieName = "basketref_session"

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies the signed session token carried in an
// HttpOnly cookie. There is no server-side session store; the token is the
// session.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token carrying the principal's username and role.
func (m *SessionManager) Issue(p user.Principal) (string, error) {
	now := m.now()
	claims := sessionClaims{
		Role: string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Verify parses and validates a session token and rebuilds the principal.
// Tampered, expired, or role-less tokens all fail.
func (m *SessionManager) Verify(token string) (user.Principal, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return user.Principal{}, fmt.Errorf("parse session token: %w", err)
	}
	if !parsed.Valid {
		return user.Principal{}, fmt.Errorf("invalid session token")
	}

	role, ok := user.ParseRole(claims.Role)
	if !ok {
		return user.Principal{}, fmt.Errorf("session token carries unknown role %q", claims.Role)
	}
	if claims.Subject == "" {
		return user.Principal{}, fmt.Errorf("session token has no subject")
	}

	return user.Principal{Username: claims.Subject, Role: role}, nil
}

// FromRequest extracts and verifies the session cookie. A missing or invalid
// cookie is simply an anonymous request.
func (m *SessionManager) FromRequest(r *http.Request) (user.Principal, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return user.Principal{}, false
	}

	principal, err := m.Verify(cookie.Value)
	if err != nil {
		return user.Principal{}, false
	}
	return principal, true
}

func (m *SessionManager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *SessionManager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
