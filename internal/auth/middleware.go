package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"landscapehub/internal/apperr"
	"landscapehub/internal/model"
)

// UserLookup loads the user a token refers to.
type UserLookup interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// ErrorWriter renders an error response. The API layer supplies its
// centralized responder.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// FailureRecorder is told why a request was rejected.
type FailureRecorder func(reason string)

// Authenticator verifies bearer tokens and attaches the tenant scope.
type Authenticator struct {
	tokens   *TokenIssuer
	users    UserLookup
	writeErr ErrorWriter
	onFail   FailureRecorder
}

func NewAuthenticator(tokens *TokenIssuer, users UserLookup, writeErr ErrorWriter, onFail FailureRecorder) *Authenticator {
	if onFail == nil {
		onFail = func(string) {}
	}
	return &Authenticator{tokens: tokens, users: users, writeErr: writeErr, onFail: onFail}
}

// VerifyToken checks the token and that its user still exists and is active.
func (a *Authenticator) VerifyToken(ctx context.Context, tokenStr string) (*model.User, error) {
	claims, err := a.tokens.Verify(tokenStr)
	if err != nil {
		return nil, err
	}

	u, err := a.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if apperr.From(err).Kind == apperr.KindNotFound {
			return nil, apperr.ErrUserInactiveOrMissing
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, apperr.ErrUserInactiveOrMissing
	}
	return u, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// caller's Scope in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			a.onFail("missing_token")
			a.writeErr(w, r, apperr.Wrap(apperr.ErrTokenInvalid, "Missing or invalid Authorization header"))
			return
		}

		u, err := a.VerifyToken(r.Context(), strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
		if err != nil {
			a.onFail(apperr.From(err).Code)
			a.writeErr(w, r, err)
			return
		}

		scope, err := ScopeForUser(u)
		if err != nil {
			a.writeErr(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithScope(r.Context(), scope)))
	})
}
