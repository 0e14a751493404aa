package domain

import (
	"time"

	"github.com/Angelo270204/prototipado-backend/internal/roster"
)

// Project is a prototyping job shared between the workshop roles.
// It is mutated only through the project service; the shared role set is
// non-empty once the project has been shared.
type Project struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Client             string        `json:"client"`
	Status             Status        `json:"status"`
	Progress           int           `json:"progress"` // always within [0, 100]
	PartsCount         int           `json:"parts_count"`
	ValidationRequired bool          `json:"validation_required"`
	SharedRoles        []roster.Role `json:"shared_roles,omitempty"`
	RejectionReason    string        `json:"rejection_reason,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// SharedWith reports whether the project is shared with the given role.
func (p *Project) SharedWith(role roster.Role) bool {
	for _, r := range p.SharedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ClampProgress bounds a progress value to [0, 100].
func ClampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
