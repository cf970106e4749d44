// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "drops short and common words",
			in:   "The team will build APIs with Golang and Kubernetes",
			want: []string{"team", "build", "apis", "golang", "kubernetes"},
		},
		{
			name: "keeps plus and hash",
			in:   "Experience: C++/C#, Python!",
			want: []string{"experience", "python"},
		},
		{
			name: "language names long enough survive",
			in:   "objective-c++ f#sharp",
			want: []string{"objective", "f#sharp"},
		},
		{
			name: "deduplicates in first-seen order",
			in:   "docker Docker DOCKER terraform docker",
			want: []string{"docker", "terraform"},
		},
		{
			name: "nothing left",
			in:   "a to of the",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Keywords(tt.in))
		})
	}
}

func TestCompare(t *testing.T) {
	resume := "Senior engineer: Golang, PostgreSQL, Docker. Built distributed systems."
	job := "Looking for Golang engineer with Kubernetes and Docker experience."

	got, err := Compare(resume, job)
	require.NoError(t, err)
	assert.Equal(t, []string{"golang", "engineer", "docker"}, got.Matched)
	assert.Equal(t, []string{"looking", "kubernetes", "experience"}, got.Missing)
	assert.Equal(t, 50, got.Percentage)
}

func TestCompareEdgeCases(t *testing.T) {
	_, err := Compare("   ", "golang")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Compare("golang", "")
	assert.ErrorIs(t, err, ErrEmptyInput)

	got, err := Compare("golang developer", "a to of")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Percentage)
	assert.Empty(t, got.Matched)
	assert.Empty(t, got.Missing)

	got, err = Compare("python golang rust", "python golang rust")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Percentage)
}
