package cryptox

import (
	"crypto/aes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NIST SP 800-38A, F.3.11 and F.3.12 (CFB8-AES256).
func TestCFB8_KnownVector(t *testing.T) {
	key, _ := hex.DecodeString("603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4")
	iv, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	plaintext, _ := hex.DecodeString("6bc1bee22e409f96e93d7e117393172aae2d")
	want := "dc1f1a8520a64db55fcc8ac554844e889700"

	block, err := aes.NewCipher(key)
	require.NoError(t, err)

	ciphertext := make([]byte, len(plaintext))
	newCFB8Encrypter(block, iv).XORKeyStream(ciphertext, plaintext)
	assert.Equal(t, want, hex.EncodeToString(ciphertext))

	decrypted := make([]byte, len(ciphertext))
	newCFB8Decrypter(block, iv).XORKeyStream(decrypted, ciphertext)
	assert.Equal(t, plaintext, decrypted)
}

func TestCFB8_InPlaceAndChunked(t *testing.T) {
	key, _ := hex.DecodeString("603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4")
	iv, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	plaintext, _ := hex.DecodeString("6bc1bee22e409f96e93d7e117393172aae2d")

	block, err := aes.NewCipher(key)
	require.NoError(t, err)

	buf := append([]byte(nil), plaintext...)
	enc := newCFB8Encrypter(block, iv)
	enc.XORKeyStream(buf[:5], buf[:5])
	enc.XORKeyStream(buf[5:], buf[5:])
	assert.Equal(t, "dc1f1a8520a64db55fcc8ac554844e889700", hex.EncodeToString(buf))

	dec := newCFB8Decrypter(block, iv)
	dec.XORKeyStream(buf, buf)
	assert.Equal(t, plaintext, buf)
}

func TestCFB8_BadIV(t *testing.T) {
	block, err := aes.NewCipher(make([]byte, 32))
	require.NoError(t, err)
	assert.Panics(t, func() { newCFB8Encrypter(block, make([]byte, 8)) })
}

// Blob produced by the existing key store format: salt 00..1f, IV a0..af,
// 8000 PBKDF2 rounds, AES-256 CFB-8 over the PKCS#7 padded plaintext.
const storedBlob = "AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8=$oKGio6SlpqeoqaqrrK2urw==$q6NZjfVVOwS4MklDckCZjw=="

func TestDecrypt_StoredBlob(t *testing.T) {
	got, err := NewCipher().Decrypt(storedBlob, []byte("correctpw"))
	require.NoError(t, err)
	assert.Equal(t, "secret-api-key", string(got))
}

func TestEncrypt_MatchesStoredFormat(t *testing.T) {
	c := NewCipher()
	blob, err := ParseBlob(storedBlob)
	require.NoError(t, err)

	key := DeriveKey([]byte("correctpw"), blob.Salt, c.Iterations, c.KeyLen)
	block, err := aes.NewCipher(key)
	require.NoError(t, err)

	padded := Pad([]byte("secret-api-key"), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	newCFB8Encrypter(block, blob.IV).XORKeyStream(ciphertext, padded)
	assert.Equal(t, blob.Ciphertext, ciphertext)
}
