package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher is the one-way password hashing primitive.
//
// Hash salts every call individually, so hashing the same password twice
// yields different outputs. The returned string embeds the salt and cost
// parameters, which is all Verify needs.
type PasswordHasher interface {
	// Hash returns the encoded salted hash of plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the encoded hash.
	// Comparison is constant time.
	Verify(plaintext, hash string) bool
}
