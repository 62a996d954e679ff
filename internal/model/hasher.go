package model

// PasswordHasher hashes plaintext passwords and verifies candidates against
// stored hashes. Compare returns false on mismatch and errors only on
// malformed hash input.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) (bool, error)
}
