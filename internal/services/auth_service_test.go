package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfirmationCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateConfirmationCode()
		require.NoError(t, err)
		assert.Len(t, code, codeLength)

		seen := make(map[rune]struct{}, len(code))
		for _, r := range code {
			assert.Contains(t, codeAlphabet, string(r))
			_, dup := seen[r]
			assert.False(t, dup, "characters must not repeat within a code")
			seen[r] = struct{}{}
		}
	}
}

func TestCodeAlphabet(t *testing.T) {
	assert.Len(t, codeAlphabet, 62)
	assert.True(t, strings.HasPrefix(codeAlphabet, "0123456789"))
	assert.True(t, strings.HasSuffix(codeAlphabet, "XYZ"))
}

func TestZIDFormat(t *testing.T) {
	valid := []string{"z5555555", "z0000000", "z9999999"}
	for _, zid := range valid {
		assert.True(t, zidFormat.MatchString(zid), zid)
	}

	invalid := []string{"", "z555555", "z55555555", "x5555555", "Z5555555", "z555555a", "5555555z", " z5555555"}
	for _, zid := range invalid {
		assert.False(t, zidFormat.MatchString(zid), zid)
	}
}

func TestHashTokenStable(t *testing.T) {
	a := hashToken("some-refresh-token")
	b := hashToken("some-refresh-token")
	c := hashToken("another-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
