package v1handler

import (
	"brandkit/internal/config"
	"brandkit/pkg/domain"
	"brandkit/pkg/logger"
	"brandkit/pkg/serrors"
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type ctxKey string

// SubjectKey is the context key under which the authenticated token subject
// is stored.
const SubjectKey ctxKey = "subject"

// GetSubjectFromContext returns the subject of the bearer token that
// authenticated the request, or "".
func GetSubjectFromContext(ctx context.Context) string {
	s, _ := ctx.Value(SubjectKey).(string)

	return s
}

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens.
type SecHandler struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || strings.TrimSpace(opts.PublicKey) == "" {
		return nil, errors.New("jwt public key is not configured")
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}, nil
}

// HandleBearerAuth verifies token and returns ctx carrying its subject.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "Invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "Token has no subject")
	}

	ctx = context.WithValue(ctx, SubjectKey, claims.Subject)

	return logger.WithFields(ctx, zap.String("subject", claims.Subject)), nil
}

// Middleware rejects requests without a valid "Authorization: Bearer" header.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			err := serrors.With(serrors.ErrUnauthorized, "Missing bearer token")
			respond(r.Context(), w, http.StatusUnauthorized, domain.Fail[struct{}](err), err)

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
		if err != nil {
			respond(r.Context(), w, http.StatusUnauthorized, domain.Fail[struct{}](err), err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
