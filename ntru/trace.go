package ntru

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/zeebo/blake3"

	"github.com/a0ngo/PQCS/ring"
)

// EncryptionTrace describes a single encryption.
// R is the ephemeral polynomial of the encryption: anyone holding it can
// recover the plaintext from the ciphertext.
type EncryptionTrace struct {
	// R holds the signed coefficients of the ephemeral ternary polynomial.
	R []int64
	// Lifted holds the center lifted coefficients of the plaintext.
	Lifted []int64
	// Digest is the blake3 hash of the ciphertext.
	Digest [32]byte
}

// String returns a short description of the trace.
func (t EncryptionTrace) String() string {
	return fmt.Sprintf("r=%v lifted=%v ciphertext=%s", t.R, t.Lifted, hex.EncodeToString(t.Digest[:]))
}

// Digest returns the blake3 hash of the modulus and coefficients of pol.
func Digest(pol ring.Poly) [32]byte {
	h := blake3.New()
	writeUint64s(h, []uint64{pol.Modulus})
	writeUint64s(h, pol.Coeffs)
	var d [32]byte
	h.Sum(d[:0])
	return d
}

func writeUint64s(w io.Writer, v []uint64) {
	buf := make([]byte, 8*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint64(buf[8*i:], x)
	}
	_, _ = w.Write(buf)
}
