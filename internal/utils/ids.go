package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateID generates a unique ID with the given prefix, e.g. "usr-a8Xk2mQ90z".
// IDs are assigned once at creation and never reused or mutated.
func GenerateID(prefix string) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 10

	result := make([]byte, length)
	for i := range result {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		result[i] = charset[num.Int64()]
	}

	return fmt.Sprintf("%s-%s", prefix, string(result))
}
