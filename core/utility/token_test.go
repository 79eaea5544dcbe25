// Package utility - Test ký và giải mã bearer token.
package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateToken_VaParseToken(t *testing.T) {
	secret := "test-secret"
	accountID := primitive.NewObjectID().Hex()

	tokenMap, err := CreateToken(secret, accountID, "6961963c", "49")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenMap["token"])

	claims, err := ParseToken(secret, tokenMap["token"])
	assert.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "6961963c", claims.Time)
	assert.Equal(t, "49", claims.RandomNumber)
}

func TestParseToken_SaiSecret(t *testing.T) {
	tokenMap, err := CreateToken("secret-a", primitive.NewObjectID().Hex(), "01", "1")
	assert.NoError(t, err)

	_, err = ParseToken("secret-b", tokenMap["token"])
	assert.Error(t, err, "Token ký bằng secret khác phải bị từ chối")
}

func TestParseToken_ChuoiRac(t *testing.T) {
	_, err := ParseToken("secret", "not.a.token")
	assert.Error(t, err)
}

func TestCreateToken_KhacNhauGiuaCacLanCap(t *testing.T) {
	// timeHex và randomNumber khác nhau cho token khác nhau:
	// rotate cấp token mới làm token cũ không còn khớp với token đã lưu
	secret := "test-secret"
	accountID := primitive.NewObjectID().Hex()

	first, err := CreateToken(secret, accountID, "6961963c", "49")
	assert.NoError(t, err)
	second, err := CreateToken(secret, accountID, "6961963d", "50")
	assert.NoError(t, err)

	assert.NotEqual(t, first["token"], second["token"])
}
