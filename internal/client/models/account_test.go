package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"junior", true},
		{"mentor", true},
		{"admin", true},
		{"owner", false},
		{"", false},
		{"Junior", false},
	}

	for _, tc := range tests {
		r, ok := ParseRole(tc.in)
		assert.Equal(t, tc.valid, ok, "ParseRole(%q)", tc.in)
		if ok {
			assert.Equal(t, Role(tc.in), r)
		}
	}
}

func TestRole_Selectable(t *testing.T) {
	assert.True(t, RoleJunior.Selectable())
	assert.True(t, RoleMentor.Selectable())
	assert.False(t, RoleAdmin.Selectable())
}

func TestAvatarByIndex(t *testing.T) {
	url, ok := AvatarByIndex(0)
	assert.True(t, ok)
	assert.NotEmpty(t, url)

	_, ok = AvatarByIndex(len(Avatars()))
	assert.False(t, ok)

	_, ok = AvatarByIndex(-1)
	assert.False(t, ok)
}

func TestAvatars_ReturnsCopy(t *testing.T) {
	a := Avatars()
	a[0] = "mutated"
	b := Avatars()
	assert.NotEqual(t, a[0], b[0])
}
