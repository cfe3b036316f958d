package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
)

const issuer = "robotcare"

// Claims binds an access token to a server-side session. The session token is
// carried in the JWT ID so revoking the session revokes the token.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTService signs HS256 access tokens.
type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// Issue signs a token for sessionToken that expires with the session.
func (s *JWTService) Issue(sessionToken string, userID uint, expiresAt time.Time) (string, error) {
	now := biztime.NowUTC()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionToken,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry and returns the session token.
func (s *JWTService) Parse(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return "", fmt.Errorf("invalid token")
	}
	return claims.ID, nil
}
