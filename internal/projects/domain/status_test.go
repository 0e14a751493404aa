package domain

import (
	"testing"

	"github.com/Angelo270204/prototipado-backend/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("canonical labels", func(t *testing.T) {
		for _, s := range []Status{
			StatusDraft, StatusPendingClient, StatusApproved,
			StatusRejected, StatusInAssembly, StatusCompleted,
		} {
			got, err := ParseStatus(string(s))
			require.NoError(t, err)
			assert.Equal(t, s, got)
		}
	})

	t.Run("legacy labels map onto the canonical enum", func(t *testing.T) {
		cases := map[string]Status{
			"pending":     StatusPendingClient,
			"in_progress": StatusInAssembly,
			"validation":  StatusPendingClient,
			"cancelled":   StatusRejected,
		}
		for label, want := range cases {
			got, err := ParseStatus(label)
			require.NoError(t, err)
			assert.Equal(t, want, got, "label %q", label)
		}
	})

	t.Run("unknown label", func(t *testing.T) {
		_, err := ParseStatus("archived")
		assert.ErrorIs(t, err, ErrUnknownStatus)
	})
}

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "Borrador", StatusDraft.DisplayLabel())
	assert.Equal(t, "Pendiente del cliente", StatusPendingClient.DisplayLabel())
	assert.Equal(t, "En ensamblaje", StatusInAssembly.DisplayLabel())
}

func TestClampProgress(t *testing.T) {
	assert.Equal(t, 0, ClampProgress(-10))
	assert.Equal(t, 100, ClampProgress(150))
	assert.Equal(t, 55, ClampProgress(55))
}

func TestSharedWith(t *testing.T) {
	p := Project{SharedRoles: []roster.Role{roster.RoleClient, roster.RoleOperator}}
	assert.True(t, p.SharedWith(roster.RoleClient))
	assert.False(t, p.SharedWith(roster.RoleProduction))
	assert.False(t, (&Project{}).SharedWith(roster.RoleClient))
}
