package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

var codePattern = regexp.MustCompile(`^[0-9]{6}$`)

// GenerateVerificationCode produces a uniformly distributed 6-digit decimal
// string ("000000".."999999") from crypto/rand.
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// IsValidCodeFormat reports whether code is exactly six decimal digits.
func IsValidCodeFormat(code string) bool {
	return codePattern.MatchString(code)
}
