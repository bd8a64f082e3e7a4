package cryptox

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/dherbrich/oandash/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fast keeps the tests quick; the round count does not change behaviour.
func fast() *Cipher {
	return &Cipher{SaltLen: DefaultSaltLen, KeyLen: DefaultKeyLen, Iterations: 16}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt, DefaultIterations, DefaultKeyLen)
	key2 := DeriveKey(password, salt, DefaultIterations, DefaultKeyLen)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(key1) != DefaultKeyLen {
		t.Errorf("expected %d-byte key, got %d", DefaultKeyLen, len(key1))
	}
}

// RFC 6070 test vector for PBKDF2-HMAC-SHA1.
func TestDeriveKey_KnownVector(t *testing.T) {
	key := DeriveKey([]byte("password"), []byte("salt"), 2, 20)
	assert.Equal(t, "ea6c014dc72d6f8ccd1ed92ace1d41f0d8de8957", hex.EncodeToString(key))
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"), DefaultIterations, DefaultKeyLen)
	key2 := DeriveKey(password, []byte("salt-2"), DefaultIterations, DefaultKeyLen)

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c := fast()

	tests := []struct {
		name      string
		plaintext string
		password  string
	}{
		{name: "api key", plaintext: "secret-api-key", password: "correctpw"},
		{name: "empty plaintext", plaintext: "", password: "pw"},
		{name: "exactly one block", plaintext: "0123456789abcdef", password: "pw"},
		{name: "empty password", plaintext: "abc", password: ""},
		{name: "unicode", plaintext: "clé-secrète", password: "mot de passe"},
		{name: "long", plaintext: strings.Repeat("x", 257), password: "pw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := c.Encrypt([]byte(tt.plaintext), []byte(tt.password))
			require.NoError(t, err)

			got, err := c.Decrypt(blob, []byte(tt.password))
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, string(got))
		})
	}
}

func TestEncrypt_BlobFormat(t *testing.T) {
	blob, err := fast().Encrypt([]byte("secret-api-key"), []byte("pw"))
	require.NoError(t, err)

	require.Equal(t, 2, strings.Count(blob, Separator))

	parsed, err := ParseBlob(blob)
	require.NoError(t, err)
	assert.Len(t, parsed.Salt, DefaultSaltLen)
	assert.Len(t, parsed.IV, 16)
	assert.Len(t, parsed.Ciphertext, 16)
}

func TestEncrypt_FreshSaltAndIV(t *testing.T) {
	c := fast()

	b1, err := c.Encrypt([]byte("same message"), []byte("pw"))
	require.NoError(t, err)
	b2, err := c.Encrypt([]byte("same message"), []byte("pw"))
	require.NoError(t, err)

	assert.NotEqual(t, b1, b2)

	p1, _ := ParseBlob(b1)
	p2, _ := ParseBlob(b2)
	assert.NotEqual(t, p1.Salt, p2.Salt)
	assert.NotEqual(t, p1.IV, p2.IV)
}

func TestDecrypt_WrongPassword(t *testing.T) {
	c := fast()
	blob, err := c.Encrypt([]byte("secret-api-key"), []byte("correctpw"))
	require.NoError(t, err)

	got, err := c.Decrypt(blob, []byte("wrongpw"))
	if err == nil {
		assert.NotEqual(t, "secret-api-key", string(got))
	} else {
		assert.ErrorIs(t, err, common.ErrDecrypt)
	}
}

func TestDecrypt_MalformedBlob(t *testing.T) {
	c := fast()
	valid, err := c.Encrypt([]byte("k"), []byte("pw"))
	require.NoError(t, err)
	parts := strings.Split(valid, Separator)

	tests := []struct {
		name string
		blob string
	}{
		{name: "empty", blob: ""},
		{name: "two components", blob: parts[0] + "$" + parts[1]},
		{name: "four components", blob: valid + "$" + parts[2]},
		{name: "bad base64", blob: parts[0] + "$" + parts[1] + "$***"},
		{name: "short iv", blob: parts[0] + "$AAAA$" + parts[2]},
		{name: "ragged ciphertext", blob: parts[0] + "$" + parts[1] + "$AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.blob, []byte("pw"))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrMalformedBlob)
		})
	}
}

func TestPadUnpad(t *testing.T) {
	for n := 0; n <= 33; n++ {
		in := bytes.Repeat([]byte{'a'}, n)
		padded := Pad(in, 16)

		require.Zero(t, len(padded)%16, "len %d", n)
		require.Greater(t, len(padded), n)

		out, err := Unpad(padded, 16)
		require.NoError(t, err)
		require.Equal(t, in, out)
	}
}

func TestUnpad_Invalid(t *testing.T) {
	tests := map[string][]byte{
		"empty":       {},
		"zero count":  {1, 2, 3, 0},
		"over block":  append(bytes.Repeat([]byte{1}, 16), 17),
		"over length": {4, 4, 4},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Unpad(in, 16)
			assert.ErrorIs(t, err, common.ErrDecrypt)
		})
	}
}
