package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies access tokens issued by the identity service. This backend
// never issues end-user sessions; it shares the HS256 secret for verification
// only. GenerateAccessToken exists for test fixtures and internal tooling.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	GenerateAccessToken(userID string, role string, expiresIn time.Duration) (string, error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, role string, expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := map[string]interface{}{
		"user_id": userID,
		"role":    role,
		"type":    "access",
		"iat":     now.Unix(),
		"exp":     now.Add(expiresIn).Unix(),
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
