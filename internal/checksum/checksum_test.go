// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package checksum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumStringKnownVectors(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		in   string
		want string
	}{
		{MD5, "", "d41d8cd98f00b204e9800998ecf8427e"},
		{MD5, "abc", "900150983cd24fb0d6963f7d28e17f72"},
		{SHA1, "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{SHA3256, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{SHA3256, "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
	}

	for _, tt := range tests {
		t.Run(string(tt.alg)+"/"+tt.in, func(t *testing.T) {
			got, err := SumString(tt.in, tt.alg)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Hex)
		})
	}
}

func TestSumDefaultsAndOrder(t *testing.T) {
	got, err := SumString("abc")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, MD5, got[0].Algorithm)
	assert.Equal(t, SHA256, got[1].Algorithm)

	got, err = SumString("abc", All...)
	require.NoError(t, err)
	require.Len(t, got, len(All))
	for i, d := range got {
		assert.Equal(t, All[i], d.Algorithm)
		assert.NotEmpty(t, d.Hex)
	}
	assert.Len(t, got[5].Hex, 64, "blake2b-256 is 32 bytes")
}

func TestSumUnknownAlgorithm(t *testing.T) {
	_, err := SumString("abc", "crc32")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestSumReadError(t *testing.T) {
	_, err := Sum(failingReader{}, MD5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}
