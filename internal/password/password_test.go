// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package password

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		allowed string
	}{
		{name: "defaults", opts: DefaultOptions(), allowed: upperChars + lowerChars + digitChars + symbolChars},
		{name: "digits only", opts: Options{Length: 32, Numbers: true}, allowed: digitChars},
		{name: "letters", opts: Options{Length: 8, Uppercase: true, Lowercase: true}, allowed: upperChars + lowerChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := Generate(tt.opts)
			require.NoError(t, err)
			assert.Len(t, pw, tt.opts.Length)
			for _, r := range pw {
				assert.True(t, strings.ContainsRune(tt.allowed, r), "unexpected %q", r)
			}
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(Options{Length: 10})
	assert.ErrorIs(t, err, ErrNoCharset)

	_, err = Generate(Options{Length: 0, Lowercase: true})
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = GenerateFrom(bytes.NewReader(nil), Options{Length: 4, Lowercase: true})
	assert.Error(t, err)
}

func TestRate(t *testing.T) {
	tests := []struct {
		pw   string
		want Strength
	}{
		{"abc", Weak},
		{"abcdefgh", Weak},
		{"abcdefgH1", Fair},
		{"abcdefghijK1", Good},
		{"abcdefghijK1!", Strong},
		{"Abcdefghijklmno1!", Strong},
	}

	for _, tt := range tests {
		t.Run(tt.pw, func(t *testing.T) {
			assert.Equal(t, tt.want, Rate(tt.pw))
		})
	}
}
