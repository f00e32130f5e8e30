package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"administrador", "autor", "leitor"} {
		r, ok := ParseRole(s)
		assert.True(t, ok, s)
		assert.Equal(t, s, r.String())
	}

	for _, s := range []string{"", "admin", "Autor", "leitor "} {
		_, ok := ParseRole(s)
		assert.False(t, ok, s)
	}
}

func TestAllowed(t *testing.T) {
	writers := []Role{RoleAdministrador, RoleAutor}

	assert.True(t, Allowed(RoleAdministrador, writers))
	assert.True(t, Allowed(RoleAutor, writers))
	assert.False(t, Allowed(RoleLeitor, writers))
	assert.False(t, Allowed(Role(""), writers))
	assert.False(t, Allowed(RoleAdministrador, nil))
}

func TestAllowedHasNoHierarchy(t *testing.T) {
	assert.False(t, Allowed(RoleAdministrador, []Role{RoleAutor}))
	assert.False(t, Allowed(RoleAutor, []Role{RoleLeitor}))
}
