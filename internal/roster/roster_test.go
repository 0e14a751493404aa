package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	r := Seed()

	assert.Len(t, r.All(), 4)

	t.Run("resolves users by id", func(t *testing.T) {
		u, ok := r.ByID("u2")
		require.True(t, ok)
		assert.Equal(t, "Maria Torres", u.Name)
		assert.Equal(t, RoleClient, u.Role)

		_, ok = r.ByID("nope")
		assert.False(t, ok)
	})

	t.Run("resolves users by role", func(t *testing.T) {
		for _, role := range Roles {
			users := r.ByRole(role)
			require.Len(t, users, 1, "role %s", role)
			assert.Equal(t, role, users[0].Role)
		}
		assert.Empty(t, r.ByRole(Role("ghost")))
	})
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleDesigner.Valid())
	assert.True(t, RoleProduction.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}
