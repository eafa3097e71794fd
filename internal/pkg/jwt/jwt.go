package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s21platform/meeting-service/internal/model"
)

const tokenTTL = 5 * time.Minute

type Generator struct {
	secret  []byte
	service string
}

func New(secret, service string) *Generator {
	return &Generator{
		secret:  []byte(secret),
		service: service,
	}
}

// GenerateServiceToken signs a short-lived HS256 token asking about username.
func (g *Generator) GenerateServiceToken(username string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(tokenTTL)

	claims := model.ServiceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.service,
			Subject:   g.service,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Service:  g.service,
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign service JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}
