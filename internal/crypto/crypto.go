package crypto

import (
	"crypto/cipher"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"

	"golang.org/x/crypto/blowfish"
)

const defaultSecret = "g4el58wc0zvf9na1"

// BlowfishDecrypter implements the per-track stream cipher: a Blowfish key is
// derived from the track id, and the leading block of each stream chunk is
// decrypted in CBC mode with a fixed IV.
type BlowfishDecrypter struct {
	secret string
}

func NewDecrypter() *BlowfishDecrypter {
	return &BlowfishDecrypter{secret: defaultSecret}
}

// DeriveKey folds the hex MD5 of the track id with the shared secret into a
// 16-byte Blowfish key.
func (d *BlowfishDecrypter) DeriveKey(trackID int64) []byte {
	sum := md5.Sum([]byte(strconv.FormatInt(trackID, 10)))
	digest := hex.EncodeToString(sum[:])

	key := make([]byte, 16)
	for i := 0; i < 16; i++ {
		key[i] = digest[i] ^ digest[i+16] ^ d.secret[i]
	}
	return key
}

func (d *BlowfishDecrypter) DecryptBlock(key, block []byte) ([]byte, error) {
	if len(block)%blowfish.BlockSize != 0 {
		return nil, fmt.Errorf("block length %d is not a multiple of the cipher block size", len(block))
	}

	c, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	iv := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	out := make([]byte, len(block))
	cipher.NewCBCDecrypter(c, iv).CryptBlocks(out, block)

	return out, nil
}
