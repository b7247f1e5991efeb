package lwe

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
)

// EncryptionTrace describes a single encryption. It holds no secret of the key pair.
type EncryptionTrace struct {
	// Bit is the encrypted bit.
	Bit uint64
	// Offset is the value added to the sum of the results, 0 or floor(p/2).
	Offset uint64
	// Subset holds the sorted indexes of the public samples summed by the encryption.
	Subset []int
	// Digest is the blake3 hash of the ciphertext.
	Digest [32]byte
}

// String returns a short description of the trace.
func (t EncryptionTrace) String() string {
	return fmt.Sprintf("bit=%d offset=%d subset=%v size=%d ciphertext=%s", t.Bit, t.Offset, t.Subset, len(t.Subset), hex.EncodeToString(t.Digest[:]))
}

func writeUint64s(w io.Writer, v []uint64) {
	buf := make([]byte, 8*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint64(buf[8*i:], x)
	}
	// hash writers never fail
	_, _ = w.Write(buf)
}
