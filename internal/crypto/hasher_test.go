package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shahparag-spring2021/webapp/internal/config"
)

// lightArgon2Params keeps the tests fast.
var lightArgon2Params = Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 16, SaltLen: 8}

func hashers() map[string]PasswordHasher {
	return map[string]PasswordHasher{
		"bcrypt":   NewBcryptHasher(bcrypt.MinCost),
		"argon2id": NewArgon2idHasher(lightArgon2Params),
	}
}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			hash, err := h.Hash("Abcdef1!")
			require.NoError(t, err)

			assert.NotEqual(t, "Abcdef1!", hash)
			assert.True(t, h.Verify("Abcdef1!", hash))
			assert.False(t, h.Verify("Abcdef1?", hash))
			assert.False(t, h.Verify("", hash))
		})
	}
}

func TestPasswordHasher_UniqueSaltPerCall(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			first, err := h.Hash("Abcdef1!")
			require.NoError(t, err)
			second, err := h.Hash("Abcdef1!")
			require.NoError(t, err)

			assert.NotEqual(t, first, second)
			assert.True(t, h.Verify("Abcdef1!", first))
			assert.True(t, h.Verify("Abcdef1!", second))
		})
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			assert.False(t, h.Verify("Abcdef1!", "not-a-hash"))
			assert.False(t, h.Verify("Abcdef1!", ""))
		})
	}
}

func TestArgon2id_EncodedFormat(t *testing.T) {
	hash, err := NewArgon2idHasher(lightArgon2Params).Hash("Abcdef1!")
	require.NoError(t, err)

	assert.Regexp(t, `^\$argon2id\$v=19\$m=1024,t=1,p=1\$[A-Za-z0-9+/]+\$[A-Za-z0-9+/]+$`, hash)
}

func TestArgon2id_VerifyUsesEmbeddedParams(t *testing.T) {
	hash, err := NewArgon2idHasher(lightArgon2Params).Hash("Abcdef1!")
	require.NoError(t, err)

	other := NewArgon2idHasher(Argon2Params{Time: 2, Memory: 2048, Threads: 2, KeyLen: 32, SaltLen: 16})
	assert.True(t, other.Verify("Abcdef1!", hash))
}

func TestBcrypt_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(100).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

func TestNewPasswordHasher(t *testing.T) {
	h, err := NewPasswordHasher(config.App{PasswordHasher: config.HasherBcrypt, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	assert.IsType(t, &bcryptHasher{}, h)

	h, err = NewPasswordHasher(config.App{PasswordHasher: config.HasherArgon2id})
	require.NoError(t, err)
	assert.IsType(t, &argon2idHasher{}, h)

	_, err = NewPasswordHasher(config.App{PasswordHasher: "md5"})
	assert.Error(t, err)
}
