package services

import (
	"hbs/config"
	apperrors "hbs/errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UserID uint   `json:"userid"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func accessSecret() []byte {
	return []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
}

func refreshSecret() []byte {
	return []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))
}

// GenerateToken tạo token JWT chứa userid và role
func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if isAccessToken {
		return token.SignedString(accessSecret())
	}
	return token.SignedString(refreshSecret())
}

// GetUserIDFromToken lấy userID và role từ token, có kiểm tra chữ ký
func GetUserIDFromToken(tokenString string) (uint, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Phương thức ký token không hợp lệ", nil)
		}
		return accessSecret(), nil
	})
	if err != nil {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}

	if !token.Valid {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	if claims.UserInfo.UserID == 0 {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	return claims.UserInfo.UserID, claims.UserInfo.Role, nil
}
