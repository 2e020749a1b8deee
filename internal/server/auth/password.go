package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is above the library default; signup latency stays acceptable
// while offline brute force stays expensive.
const bcryptCost = 12

// HashPassword derives a salted bcrypt digest from the plaintext password.
// The plaintext is never stored or logged.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyHash is a valid bcrypt digest of a random string. Login runs a compare
// against it when the identifier is unknown so that the unknown-user and
// wrong-password paths take comparable time.
const DummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"
