package diskcache

import (
	"bytes"
	"encoding/binary"
	"encoding/json"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// magic identifies preservation files written by this package.
var magic = []byte("ACF1")

const trailerSize = 8

// Codec serializes artifacts into preservation files:
//
//	magic | zstd(json(artifact)) | xxhash64 of everything before it, big endian
type Codec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewCodec creates a Codec. It is safe for concurrent use.
func NewCodec() (*Codec, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create zstd encoder")
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create zstd decoder")
	}
	return &Codec{enc: enc, dec: dec}, nil
}

// Encode serializes a.
func (c *Codec) Encode(a *domain.Artifact) ([]byte, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPreservationEncodeFailed.Error())
	}
	out := make([]byte, 0, len(magic)+len(raw)/2+trailerSize)
	out = append(out, magic...)
	out = c.enc.EncodeAll(raw, out)
	return binary.BigEndian.AppendUint64(out, xxhash.Sum64(out)), nil
}

// Decode verifies and deserializes data.
func (c *Codec) Decode(data []byte) (*domain.Artifact, error) {
	if len(data) < len(magic)+trailerSize || !bytes.Equal(data[:len(magic)], magic) {
		return nil, domain.ErrPreservationCorrupt
	}
	body := data[:len(data)-trailerSize]
	if xxhash.Sum64(body) != binary.BigEndian.Uint64(data[len(body):]) {
		return nil, domain.ErrPreservationCorrupt
	}

	raw, err := c.dec.DecodeAll(body[len(magic):], nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPreservationDecodeFailed.Error())
	}
	var a domain.Artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, zerr.Wrap(err, domain.ErrPreservationDecodeFailed.Error())
	}
	return &a, nil
}
