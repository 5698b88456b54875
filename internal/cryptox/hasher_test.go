package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher_KnownDigests(t *testing.T) {
	h := NewSHA256Hasher()

	tests := []struct {
		in   string
		want string
	}{
		{"salam", "0582bd2c13fff71d7f40ef5586e3f4da05a3a61fe5ba9f0b4d06e99905ab83ea"},
		{"hello are you ok #!?", "d5ef5c1a3a959f846ae09ebe1472a51a7ae784a3f726457d8939e833f8f1d7ce"},
		{"12345Aa@&$hello%^", "60fcd6b50b3d0d0bbf8d13ed5ff7e4b1844a1239fec1a94b0fe189222670e832"},
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Digest(tt.in))
		})
	}
}

func TestHashers_DeterministicAndOneWay(t *testing.T) {
	hashers := map[string]Hasher{
		"sha256":   NewSHA256Hasher(),
		"argon2id": NewArgon2Hasher("pepper"),
	}

	for name, h := range hashers {
		t.Run(name, func(t *testing.T) {
			for _, p := range []string{"some_hard_password", "12345", "ünïcødé"} {
				d := h.Digest(p)
				assert.Equal(t, d, h.Digest(p))
				assert.NotEqual(t, p, d)
				assert.Len(t, d, 64)
			}
			assert.NotEqual(t, h.Digest("password1"), h.Digest("password2"))
		})
	}
}

func TestArgon2Hasher_PepperMatters(t *testing.T) {
	a := NewArgon2Hasher("one")
	b := NewArgon2Hasher("two")
	assert.NotEqual(t, a.Digest("secret"), b.Digest("secret"))
}

func TestNewHasher(t *testing.T) {
	_, ok := NewHasher("argon2id", "p").(*Argon2Hasher)
	require.True(t, ok)
	_, ok = NewHasher("sha256", "").(*SHA256Hasher)
	require.True(t, ok)
	_, ok = NewHasher("", "").(*SHA256Hasher)
	require.True(t, ok)
}
