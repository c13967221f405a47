package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionScope = "lead_session"

var (
	ErrTokenExpired = errors.New("token de sessão expirado")
	ErrTokenInvalid = errors.New("token de sessão inválido")
)

// SessionTokenService emite e valida o leadtoken (JWT HS256) que o front
// usa para se re-autenticar como "este lead" sem um login completo.
type SessionTokenService struct {
	secret []byte
}

func NewSessionTokenService(secret string) (*SessionTokenService, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET_KEY não configurada")
	}
	return &SessionTokenService{secret: []byte(secret)}, nil
}

// Generate emite o token da sessão. expiresAt nulo gera token sem exp —
// a sessão só deixa de bloquear novo cadastro quando for explicitamente
// expirada.
func (s *SessionTokenService) Generate(leadID string, expiresAt *time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   leadID,
		"iat":   time.Now().Unix(),
		"scope": sessionScope,
	}
	if expiresAt != nil {
		claims["exp"] = expiresAt.Unix()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate verifica assinatura e expiração. Distingue token expirado de
// token inválido porque o guard de sessão trata os dois de forma diferente:
// expirado libera novo cadastro, válido bloqueia.
func (s *SessionTokenService) Validate(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || claims["scope"] != sessionScope {
		return "", ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	return sub, nil
}
