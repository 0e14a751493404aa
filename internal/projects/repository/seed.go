package repository

import (
	"time"

	"github.com/Angelo270204/prototipado-backend/internal/projects/domain"
	"github.com/Angelo270204/prototipado-backend/internal/roster"
)

// seedProjects is the fallback collection used when the store has never
// been written or holds a payload we cannot read.
func seedProjects() []domain.Project {
	now := time.Now()
	return []domain.Project{
		{
			ID:          "proj-10001-0001",
			Name:        "Soporte de riel",
			Client:      "Taller Norte",
			Status:      domain.StatusPendingClient,
			Progress:    35,
			PartsCount:  4,
			SharedRoles: []roster.Role{roster.RoleClient},
			CreatedAt:   now.Add(-72 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
		},
		{
			ID:                 "proj-10002-0002",
			Name:               "Carcasa de dron",
			Client:             "AeroPeru SAC",
			Status:             domain.StatusInAssembly,
			Progress:           60,
			PartsCount:         9,
			ValidationRequired: true,
			SharedRoles:        []roster.Role{roster.RoleClient, roster.RoleOperator, roster.RoleProduction},
			CreatedAt:          now.Add(-120 * time.Hour),
			UpdatedAt:          now.Add(-6 * time.Hour),
		},
	}
}
