package courier

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const authScheme = "HMAC"

// Signer подписывает исходящие courier callback и проверяет входящие подписи.
// Подпись считается над теми же байтами, что уходят на провод: каноничность
// обеспечивается единственным json.Marshal формирующего payload.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// GenerateAuthHeader возвращает значение заголовка Authorization:
// literal "HMAC <hex sha256 hmac>".
func (s *Signer) GenerateAuthHeader(payload []byte) string {
	return authScheme + " " + s.sign(payload)
}

// ValidateCallbackAuth сверяет заголовок с пересчитанной подписью.
// Сравнение только через hmac.Equal, прямое сравнение строк дает
// timing side-channel.
func (s *Signer) ValidateCallbackAuth(header string, payload []byte) bool {
	scheme, digest, found := strings.Cut(header, " ")
	if !found || scheme != authScheme {
		return false
	}

	expected := s.sign(payload)
	return hmac.Equal([]byte(digest), []byte(expected))
}

func (s *Signer) sign(payload []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
