package service

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/falacidadao/ocorrencias-api/internal/models"
	appErrors "github.com/falacidadao/ocorrencias-api/pkg/errors"
)

// AuthConfig defines parameters for bearer token validation. Tokens are
// issued by the identity provider; this service only verifies them.
type AuthConfig struct {
	Secret   string
	Issuer   string
	Audience []string
}

// AuthService validates caller credentials.
type AuthService struct {
	config AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(config AuthConfig) *AuthService {
	return &AuthService{config: config}
}

// ValidateToken parses and validates an access token returning the claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	opts := []jwt.ParserOption{}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	}, opts...)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	// the token is accepted when it carries any of the configured audiences
	if len(s.config.Audience) > 0 && !audienceAllowed(claims.Audience, s.config.Audience) {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token audience")
	}
	if claims.UserID == "" {
		// tokens minted by the provider carry the user id in sub
		claims.UserID = claims.Subject
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "token missing subject")
	}

	return claims, nil
}

func audienceAllowed(tokenAud jwt.ClaimStrings, allowed []string) bool {
	for _, aud := range tokenAud {
		for _, want := range allowed {
			if aud == want {
				return true
			}
		}
	}
	return false
}
