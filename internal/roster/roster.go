// Package roster is the static directory of known users and their
// workshop roles. Users are seeded at construction and never change at
// runtime; identity management lives outside this service.
package roster

// Role is a workshop role a user acts under.
type Role string

const (
	RoleDesigner   Role = "designer"
	RoleClient     Role = "client"
	RoleOperator   Role = "operator"
	RoleProduction Role = "production"
)

// Roles lists every known role, in display order.
var Roles = []Role{RoleDesigner, RoleClient, RoleOperator, RoleProduction}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDesigner, RoleClient, RoleOperator, RoleProduction:
		return true
	}
	return false
}

// User is a directory entry.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Roster resolves users by id and role.
type Roster struct {
	users []User
	byID  map[string]User
}

// New builds a roster from the given users.
func New(users []User) *Roster {
	r := &Roster{
		users: make([]User, len(users)),
		byID:  make(map[string]User, len(users)),
	}
	copy(r.users, users)
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

// Seed returns the roster with the built-in workshop users.
func Seed() *Roster {
	return New([]User{
		{ID: "u1", Name: "Angelo Ramos", Role: RoleDesigner},
		{ID: "u2", Name: "Maria Torres", Role: RoleClient},
		{ID: "u3", Name: "Carlos Quispe", Role: RoleOperator},
		{ID: "u4", Name: "Lucia Fernandez", Role: RoleProduction},
	})
}

// ByID returns the user with the given id.
func (r *Roster) ByID(id string) (User, bool) {
	u, ok := r.byID[id]
	return u, ok
}

// ByRole returns every user acting under the given role.
func (r *Roster) ByRole(role Role) []User {
	var out []User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// All returns every known user, in seed order.
func (r *Roster) All() []User {
	out := make([]User, len(r.users))
	copy(out, r.users)
	return out
}
