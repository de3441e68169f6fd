package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service wraps the jwtauth verifier used by the HTTP layer. Token issuance
// lives in the identity service; this backend only verifies access tokens and
// reads the acting principal out of their claims.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
}

type tokenService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewTokenService(secretKey string) Service {
	return &tokenService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (s *tokenService) JWTAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}
