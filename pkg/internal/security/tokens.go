package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

type Claims struct {
	jwt.RegisteredClaims

	UserID uint `json:"uid"`
}

func IssueToken(userID uint) (string, error) {
	duration := viper.GetDuration("security.token_valid_duration")
	if duration == 0 {
		duration = 7 * 24 * time.Hour
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
		},
		UserID: userID,
	})

	return token.SignedString([]byte(viper.GetString("security.token_secret")))
}

func ParseToken(tokenString string) (uint, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(viper.GetString("security.token_secret")), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return 0, fmt.Errorf("unable to parse token: %v", err)
	}
	if !token.Valid {
		return 0, fmt.Errorf("token is no longer valid")
	}

	return claims.UserID, nil
}
