// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package checksum computes hex digests of text and files.
package checksum

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm names a digest function.
type Algorithm string

const (
	MD5     Algorithm = "md5"
	SHA1    Algorithm = "sha1"
	SHA256  Algorithm = "sha256"
	SHA512  Algorithm = "sha512"
	SHA3256 Algorithm = "sha3-256"
	BLAKE2b Algorithm = "blake2b-256"
)

// ErrUnknownAlgorithm is returned for an Algorithm this package does not
// implement.
var ErrUnknownAlgorithm = errors.New("unknown checksum algorithm")

// Default lists the algorithms reported when none are requested.
var Default = []Algorithm{MD5, SHA256}

// All lists every supported algorithm in display order.
var All = []Algorithm{MD5, SHA1, SHA256, SHA512, SHA3256, BLAKE2b}

// Digest is one algorithm's result.
type Digest struct {
	Algorithm Algorithm `json:"algorithm"`
	Hex       string    `json:"hex"`
}

func newHash(a Algorithm) (hash.Hash, error) {
	switch a {
	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA512:
		return sha512.New(), nil
	case SHA3256:
		return sha3.New256(), nil
	case BLAKE2b:
		return blake2b.New256(nil)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownAlgorithm, a)
	}
}

// Sum reads r once and returns a digest per algorithm, in the order given.
// An empty algs selects Default.
func Sum(r io.Reader, algs ...Algorithm) ([]Digest, error) {
	if len(algs) == 0 {
		algs = Default
	}
	hashes := make([]hash.Hash, len(algs))
	writers := make([]io.Writer, len(algs))
	for i, a := range algs {
		h, err := newHash(a)
		if err != nil {
			return nil, err
		}
		hashes[i] = h
		writers[i] = h
	}

	if _, err := io.Copy(io.MultiWriter(writers...), r); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	out := make([]Digest, len(algs))
	for i, h := range hashes {
		out[i] = Digest{Algorithm: algs[i], Hex: hex.EncodeToString(h.Sum(nil))}
	}
	return out, nil
}

// SumString digests s.
func SumString(s string, algs ...Algorithm) ([]Digest, error) {
	return Sum(strings.NewReader(s), algs...)
}
