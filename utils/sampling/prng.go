// Package sampling provides the random sources used by the twofloat tests
// and benchmarks: a cryptographically seeded PRNG, a deterministic keyed
// PRNG for reproducible test streams, and helpers drawing floating-point
// values and normalized double-words from either.
package sampling

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG is a PRNG backed by crypto/rand; it is safe for
// concurrent use but not reproducible.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read fills sum with random bytes.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG deterministically expands its key into an unbounded byte
// stream through the blake2b XOF: two instances built from the same key
// produce the same stream, which makes randomized tests reproducible.
// A KeyedPRNG must not be shared between goroutines.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = key
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG. The returned value
// can be passed to NewKeyedPRNG to replay the same stream.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read fills sum with bytes from the keyed stream.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Reset rewinds the stream to its beginning.
func (prng *KeyedPRNG) Reset() {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, prng.key)
	if err != nil {
		panic(err)
	}
	prng.xof = xof
}
