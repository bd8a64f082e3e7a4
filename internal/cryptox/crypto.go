// Package cryptox implements the password-based encryption used to protect
// API keys at rest.
//
// A secret is encrypted with AES-256 in CFB mode with 8-bit segments. The
// key is derived from the user's password with PBKDF2-HMAC-SHA1 over a fresh
// random salt, and the plaintext is PKCS#7 padded to the AES block size. The
// result is stored as a single text blob:
//
//	base64(salt) "$" base64(iv) "$" base64(ciphertext)
//
// Decrypt does not authenticate the ciphertext: a wrong password usually
// surfaces as ErrDecrypt (bad padding), but may also yield garbage bytes.
// Callers must validate the plaintext themselves.
package cryptox

import (
	"crypto/aes"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dherbrich/oandash/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultSaltLen is the number of random salt bytes per encryption.
	DefaultSaltLen = 32
	// DefaultKeyLen selects AES-256.
	DefaultKeyLen = 32
	// DefaultIterations is the PBKDF2 round count.
	DefaultIterations = 8000

	// Separator joins the three encoded blob components. It is not part of
	// the standard base64 alphabet.
	Separator = "$"
)

// DeriveKey stretches password into a keyLen-byte key with PBKDF2-HMAC-SHA1.
// The same inputs always produce the same key.
func DeriveKey(password, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha1.New)
}

// Cipher holds the KDF parameters. The zero value is not usable; use
// NewCipher.
type Cipher struct {
	SaltLen    int
	KeyLen     int
	Iterations int
}

// NewCipher returns a Cipher with the default parameters.
func NewCipher() *Cipher {
	return &Cipher{
		SaltLen:    DefaultSaltLen,
		KeyLen:     DefaultKeyLen,
		Iterations: DefaultIterations,
	}
}

// Blob is the decoded form of an encrypted secret.
type Blob struct {
	Salt       []byte
	IV         []byte
	Ciphertext []byte
}

// String encodes b into the "$"-delimited storage format.
func (b *Blob) String() string {
	enc := base64.StdEncoding
	return strings.Join([]string{
		enc.EncodeToString(b.Salt),
		enc.EncodeToString(b.IV),
		enc.EncodeToString(b.Ciphertext),
	}, Separator)
}

// ParseBlob splits s into exactly three base64 components.
func ParseBlob(s string) (*Blob, error) {
	parts := strings.Split(s, Separator)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: want 3 components, got %d", common.ErrMalformedBlob, len(parts))
	}

	decoded := make([][]byte, len(parts))
	for i, p := range parts {
		b, err := base64.StdEncoding.DecodeString(p)
		if err != nil {
			return nil, fmt.Errorf("%w: component %d: %v", common.ErrMalformedBlob, i, err)
		}
		decoded[i] = b
	}

	blob := &Blob{Salt: decoded[0], IV: decoded[1], Ciphertext: decoded[2]}
	if len(blob.IV) != aes.BlockSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes, got %d", common.ErrMalformedBlob, aes.BlockSize, len(blob.IV))
	}
	if len(blob.Ciphertext) == 0 || len(blob.Ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d", common.ErrMalformedBlob, len(blob.Ciphertext))
	}
	return blob, nil
}

// Encrypt pads plaintext, encrypts it under a key derived from password and
// returns the storage blob. Every call draws a new salt and IV, so equal
// inputs give different blobs.
func (c *Cipher) Encrypt(plaintext, password []byte) (string, error) {
	salt := common.GenerateRandByteArray(c.SaltLen)
	iv := common.GenerateRandByteArray(aes.BlockSize)

	key := DeriveKey(password, salt, c.Iterations, c.KeyLen)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	padded := Pad(plaintext, aes.BlockSize)
	defer common.WipeByteArray(padded)

	ciphertext := make([]byte, len(padded))
	newCFB8Encrypter(block, iv).XORKeyStream(ciphertext, padded)

	blob := &Blob{Salt: salt, IV: iv, Ciphertext: ciphertext}
	return blob.String(), nil
}

// Decrypt reverses Encrypt. A malformed blob yields ErrMalformedBlob; invalid
// padding after decryption yields ErrDecrypt. The caller owns the returned
// slice and should wipe it.
func (c *Cipher) Decrypt(encoded string, password []byte) ([]byte, error) {
	blob, err := ParseBlob(encoded)
	if err != nil {
		return nil, err
	}

	key := DeriveKey(password, blob.Salt, c.Iterations, c.KeyLen)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(blob.Ciphertext))
	newCFB8Decrypter(block, blob.IV).XORKeyStream(plaintext, blob.Ciphertext)

	out, err := Unpad(plaintext, aes.BlockSize)
	if err != nil {
		common.WipeByteArray(plaintext)
		return nil, err
	}
	return out, nil
}

// Pad appends PKCS#7 padding: n bytes of value n, 1 <= n <= blockSize.
// A full block is added when len(b) is already a multiple of blockSize.
func Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	out := make([]byte, len(b)+n)
	copy(out, b)
	for i := len(b); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// Unpad strips PKCS#7 padding, reading the count from the last byte.
// Only the count is checked, not every padding byte.
func Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", common.ErrDecrypt)
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, fmt.Errorf("%w: bad padding", common.ErrDecrypt)
	}
	return b[:len(b)-n], nil
}
