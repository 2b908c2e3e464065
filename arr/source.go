package arr

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"golang.org/x/crypto/chacha20"
)

// ChaChaSource is a [rand.Source] reading its bits from a ChaCha20 key stream.
// The same seed always produces the same stream, which makes shuffles
// reproducible:
//
//	src, _ := arr.NewChaChaSource(seed)
//	shuffled := arr.ShuffleWith(items, rand.New(src))
//
// A ChaChaSource is not safe for concurrent use.
type ChaChaSource struct {
	cipher *chacha20.Cipher
	zero   [8]byte
	buf    [8]byte
}

// NewChaChaSource creates a source keyed by seed with an all-zero nonce.
func NewChaChaSource(seed [chacha20.KeySize]byte) (*ChaChaSource, error) {
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce)
	if err != nil {
		return nil, fmt.Errorf("arr: failed to create chacha20 source: %w", err)
	}
	return &ChaChaSource{cipher: c}, nil
}

// Uint64 returns the next 64 bits of the key stream.
func (s *ChaChaSource) Uint64() uint64 {
	s.cipher.XORKeyStream(s.buf[:], s.zero[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

var _ rand.Source = (*ChaChaSource)(nil)
