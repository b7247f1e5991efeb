package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mrand "math/rand"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
// It is the only source of randomness consumed by the samplers and the schemes,
// so a cryptographically secure generator can be substituted for a
// deterministic one without changing any scheme logic.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG reads from crypto/rand.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read reads bytes from crypto/rand on sum.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG is a structure storing the parameters used to securely and *deterministically* generate
// sequences of random bytes using the hash function blake2b. Backward sequence
// security (given the digest i, compute the digest i-1) is ensured by default, however forward sequence
// security (given the digest i, compute the digest i+1) is only ensured if the KeyedPRNG is keyed.
// WARNING: KeyedPRNG should NOT be called by multiple threads. It does not make sense to do so as the resulting
// sequence will not be deterministic for a given key. For a PRNG securely seeded with a private key use [ThreadSafePRNG].
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key of at most 64 bytes, else set key=nil which is treated as key=[]byte{}.
// WARNING: A PRNG INITIALISED WITH key=nil IS INSECURE!
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with `NewKeyedPRNG` to instantiate
// a new PRNG that will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}

// MathPRNG is a PRNG backed by math/rand.
// It is NOT cryptographically secure and only exists to reproduce the behavior
// of general purpose pseudorandom sources in teaching material and tests.
type MathPRNG struct {
	mutex sync.Mutex
	r     *mrand.Rand
}

// NewMathPRNG returns a MathPRNG seeded with seed.
func NewMathPRNG(seed int64) *MathPRNG {
	//#nosec G404
	return &MathPRNG{r: mrand.New(mrand.NewSource(seed))}
}

// Read fills sum with pseudorandom bytes. It never returns an error.
func (prng *MathPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.r.Read(sum)
}

// DeriveKey derives a 32-byte KeyedPRNG key from a domain separation label and a seed.
func DeriveKey(label string, seed []byte) []byte {
	hasher := blake3.New()
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(label)))
	hasher.Write(lenBuf[:])
	hasher.Write([]byte(label))
	hasher.Write(seed)
	return hasher.Sum(nil)[:32]
}
