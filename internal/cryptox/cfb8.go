package cryptox

import "crypto/cipher"

// cfb8 is CFB mode with an 8-bit segment size: one block encryption per byte,
// with the shift register fed back one ciphertext byte at a time.
type cfb8 struct {
	block   cipher.Block
	sr      []byte
	out     []byte
	decrypt bool
}

func newCFB8(block cipher.Block, iv []byte, decrypt bool) cipher.Stream {
	if len(iv) != block.BlockSize() {
		panic("cryptox: IV length must equal block size")
	}
	sr := make([]byte, len(iv))
	copy(sr, iv)
	return &cfb8{
		block:   block,
		sr:      sr,
		out:     make([]byte, len(iv)),
		decrypt: decrypt,
	}
}

func newCFB8Encrypter(block cipher.Block, iv []byte) cipher.Stream {
	return newCFB8(block, iv, false)
}

func newCFB8Decrypter(block cipher.Block, iv []byte) cipher.Stream {
	return newCFB8(block, iv, true)
}

// XORKeyStream allows dst and src to overlap exactly.
func (x *cfb8) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("cryptox: output smaller than input")
	}
	for i := range src {
		x.block.Encrypt(x.out, x.sr)
		in := src[i]
		c := in ^ x.out[0]
		dst[i] = c
		if x.decrypt {
			c = in
		}
		copy(x.sr, x.sr[1:])
		x.sr[len(x.sr)-1] = c
	}
}
