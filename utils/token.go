package utils

import (
	"math/rand"
	"time"
)

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var tokenRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateRandomToken returns a random alphanumeric string. Used for
// object-key uniqueness, not for secrets.
func GenerateRandomToken(length int) string {
	token := make([]byte, length)
	for i := range token {
		token[i] = tokenCharset[tokenRand.Intn(len(tokenCharset))]
	}
	return string(token)
}
