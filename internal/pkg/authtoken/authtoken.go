package authtoken

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
	"kuryecini/internal/entities"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrUnknownRole  = errors.New("unknown role in token")
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier проверяет подпись HS256 и маппит claims в актора.
// Роль system токенами не выдается, ее получает только kafka-воркер.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(token string) (entities.Actor, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return entities.Actor{}, ErrInvalidToken
	}

	if claims.Subject == "" {
		return entities.Actor{}, ErrInvalidToken
	}

	role := entities.ActorRole(claims.Role)
	switch role {
	case entities.RoleCustomer, entities.RoleBusiness, entities.RoleCourier, entities.RoleAdmin:
	default:
		return entities.Actor{}, ErrUnknownRole
	}

	return entities.Actor{ID: claims.Subject, Role: role}, nil
}

// Issue используется в тестах и утилитах для выписывания токенов.
func (v *Verifier) Issue(actor entities.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
