// Package keystream expands a master key and a site identifier into an
// unbounded deterministic byte stream.
//
// Block i of the stream is
//
//	HMAC(key, be32(len(site)) || site || be32(counter) || be32(i))
//
// for i = 0, 1, 2, ... and the stream is the concatenation of the blocks.
// The encoding is a protocol constant: changing it changes every password.
package keystream

import (
	"crypto/hmac"
	"encoding/binary"
	"fmt"
	"hash"
	"io"
	"math"

	"github.com/dmitrijs2005/fort/internal/common"
	"github.com/dmitrijs2005/fort/internal/cryptox"
	"github.com/dmitrijs2005/fort/internal/hashx"
)

// Stream is a lazily produced keystream. It is not safe for concurrent use;
// create one per derivation.
type Stream struct {
	mac    hash.Hash
	prefix []byte // len(site) || site || counter
	block  uint64 // index of the next block to produce
	buf    []byte
	pos    int
	closed bool
}

// New builds the keystream for (key, site, counter). An empty site is
// rejected so that distinct sites never collapse onto one derivation.
func New(alg hashx.Algorithm, key *cryptox.MasterKey, site string, counter uint32) (*Stream, error) {
	if site == "" {
		return nil, fmt.Errorf("%w: empty site", common.ErrInvalidInput)
	}
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedAlgorithm, alg)
	}
	if key == nil || key.Wiped() {
		return nil, fmt.Errorf("%w: master key is not available", common.ErrInvalidInput)
	}
	if uint64(len(site)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: site identifier too long", common.ErrInvalidInput)
	}

	prefix := make([]byte, 0, 4+len(site)+4)
	prefix = binary.BigEndian.AppendUint32(prefix, uint32(len(site)))
	prefix = append(prefix, site...)
	prefix = binary.BigEndian.AppendUint32(prefix, counter)

	return &Stream{
		mac:    hmac.New(alg.Func(), key.Bytes()),
		prefix: prefix,
	}, nil
}

func (s *Stream) next() error {
	if s.block > math.MaxUint32 {
		return common.ErrKeystreamExhausted
	}

	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], uint32(s.block))

	s.mac.Reset()
	s.mac.Write(s.prefix)
	s.mac.Write(idx[:])

	common.WipeByteArray(s.buf)
	s.buf = s.mac.Sum(s.buf[:0])
	s.pos = 0
	s.block++
	return nil
}

// Read fills p with the next len(p) keystream bytes.
func (s *Stream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, common.ErrClosed
	}
	n := 0
	for n < len(p) {
		if s.pos == len(s.buf) {
			if err := s.next(); err != nil {
				return n, err
			}
		}
		c := copy(p[n:], s.buf[s.pos:])
		s.pos += c
		n += c
	}
	return n, nil
}

// ReadByte returns the next keystream byte.
func (s *Stream) ReadByte() (byte, error) {
	if s.closed {
		return 0, common.ErrClosed
	}
	if s.pos == len(s.buf) {
		if err := s.next(); err != nil {
			return 0, err
		}
	}
	b := s.buf[s.pos]
	s.pos++
	return b, nil
}

// Blocks reports how many blocks have been produced so far.
func (s *Stream) Blocks() uint64 {
	return s.block
}

// Close wipes the buffered keystream bytes and the encoded site prefix, then
// drops the HMAC. crypto/hmac keeps the key XORed with its pads inside the
// hash state and offers no way to zero it, so that copy lives on the heap
// until the stream is collected. Further reads fail with ErrClosed.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	common.WipeByteArrays(s.buf, s.prefix)
	s.buf, s.prefix = nil, nil
	s.mac.Reset()
	s.mac = nil
	return nil
}

var (
	_ io.Reader     = (*Stream)(nil)
	_ io.ByteReader = (*Stream)(nil)
	_ io.Closer     = (*Stream)(nil)
)
