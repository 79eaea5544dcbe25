package utility

import (
	"fmt"

	"github.com/dgrijalva/jwt-go"
)

// JwtToken chứa data được mã hóa trong bearer token của một tài khoản.
type JwtToken struct {
	AccountID    string `json:"accountId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken ký một bearer token HS256 cho tài khoản.
// timeHex và randomNumber làm token khác nhau giữa các lần cấp,
// nhờ đó rotate token sẽ vô hiệu token cũ (middleware tra theo token đã lưu).
func CreateToken(secret string, accountID string, timeHex string, randomNumber string) (map[string]string, error) {
	claims := &JwtToken{
		AccountID:    accountID,
		Time:         timeHex,
		RandomNumber: randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken giải mã và xác thực chữ ký của bearer token.
func ParseToken(secret string, tokenString string) (*JwtToken, error) {
	claims := &JwtToken{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}
