// apps/go-server/internal/httpserver/session.go
//
// Session cookie handling.
// The browser holds an HS256 JWT whose "sid" claim names a store.Session.
// Missing, invalid, expired or unknown tokens silently start a new session,
// so a player never has to log in.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordbuilder/apps/go-server/internal/store"
)

const sessionCookieName = "wordbuilder_session"

// sessionClaims is the JWT payload of the session cookie.
type sessionClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// ctxSessionKey is the context key type for the current *store.Session.
type ctxSessionKey struct{}

// sessionFrom returns the session installed by withSession.
func sessionFrom(ctx context.Context) *store.Session {
	s, _ := ctx.Value(ctxSessionKey{}).(*store.Session)
	return s
}

// withSession loads the caller's session, creating one (and its cookie) if needed.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := s.lookupSession(r)
		if sess == nil {
			sess = store.NewSession()
			if err := s.store.Save(r.Context(), sess); err != nil {
				log.Error().Err(err).Msg("save session")
				writeError(w, http.StatusInternalServerError, "session_failed")
				return
			}
			tok, exp, err := s.signSession(sess.ID)
			if err != nil {
				log.Error().Err(err).Msg("sign session")
				writeError(w, http.StatusInternalServerError, "session_failed")
				return
			}
			s.setSessionCookie(w, tok, exp)
			log.Debug().Str("session", sess.ID).Msg("new session")
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// lookupSession resolves the request token to a stored session, or nil.
func (s *Server) lookupSession(r *http.Request) *store.Session {
	tok := bearerOrCookie(r)
	if tok == "" {
		return nil
	}
	sid, err := s.parseSession(tok)
	if err != nil {
		log.Debug().Err(err).Msg("discarding session token")
		return nil
	}
	sess, err := s.store.Get(r.Context(), sid)
	if err != nil {
		return nil
	}
	return sess
}

// signSession creates an HS256 token for sid that expires after the session TTL.
func (s *Server) signSession(sid string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.opts.SessionTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	ss, err := t.SignedString([]byte(s.opts.SessionSecret))
	return ss, exp, err
}

// parseSession verifies tok and returns its session id.
func (s *Server) parseSession(tok string) (string, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.SessionSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if claims.SID == "" {
		return "", errors.New("token without sid")
	}
	return claims.SID, nil
}

// handleEndSession drops the caller's session and expires the cookie.
func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if err := s.store.Delete(r.Context(), sess.ID); err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("delete session")
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.Secure,
		MaxAge:   -1,
	})
	log.Debug().Str("session", sess.ID).Msg("session ended")
	w.WriteHeader(http.StatusNoContent)
}

// setSessionCookie writes the session cookie with appropriate security attributes.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.opts.Secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from the Authorization header or the session cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(sessionCookieName); err == nil {
		return c.Value
	}
	return ""
}
