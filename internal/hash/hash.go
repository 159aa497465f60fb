package hash

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	"github.com/zeebo/blake3"
)

// Hash is a domain separating wrapper around blake3.
//
// Its digest is an unbounded stream of bytes, which is what the seeded prime
// sources consume.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash whose state is initialized with the given domain.
func New(domain string) *Hash {
	hash := &Hash{h: blake3.New()}
	_ = writeFramed(hash.h, "domain", []byte(domain))
	return hash
}

// Digest returns a reader for the current output of the function.
//
// This finalizes the current state of the hash, and returns what's
// essentially a stream of random bytes.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// WriteAny takes many different data types and writes them to the hash state.
//
// Currently supported types:
//
//   - []byte
//   - string
//   - uint64
//   - *big.Int
func (hash *Hash) WriteAny(data ...interface{}) error {
	var err error
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			err = writeFramed(hash.h, "[]byte", t)
		case string:
			err = writeFramed(hash.h, "string", []byte(t))
		case uint64:
			var b [8]byte
			binary.BigEndian.PutUint64(b[:], t)
			err = writeFramed(hash.h, "uint64", b[:])
		case *big.Int:
			if t == nil {
				return fmt.Errorf("hash.Hash: write *big.Int: nil")
			}
			var b []byte
			if b, err = t.GobEncode(); err != nil {
				return fmt.Errorf("hash.Hash: GobEncode: %w", err)
			}
			err = writeFramed(hash.h, "big.Int", b)
		default:
			panic("hash.Hash: unsupported type")
		}
		if err != nil {
			return fmt.Errorf("hash.Hash: write %T: %w", d, err)
		}
	}
	return nil
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}

// writeFramed writes the type tag followed by the length and bytes of data, so
// that no concatenation of writes collides with another.
func writeFramed(w io.Writer, tag string, data []byte) error {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(data)))
	for _, b := range [][]byte{[]byte(tag), n[:], data} {
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}
