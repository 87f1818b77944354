package roster

// Role classifies a user's access level.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleModerator:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// User is a single managed roster entry. IDs are assigned by the store and
// are unique across the live collection; zero means "not yet assigned".
type User struct {
	ID       int64
	Name     string
	Email    string
	Role     Role
	Active   bool
	Metadata map[string]string
}

// Clone returns a deep copy of the user, including its metadata map.
func (u User) Clone() User {
	dup := u
	if u.Metadata != nil {
		dup.Metadata = make(map[string]string, len(u.Metadata))
		for k, v := range u.Metadata {
			dup.Metadata[k] = v
		}
	}
	return dup
}

// Patch names the fields of a partial update. Nil fields are left unchanged;
// a nil Metadata map leaves the existing metadata as-is.
type Patch struct {
	Name     *string
	Email    *string
	Role     *Role
	Active   *bool
	Metadata map[string]string
}

// Apply merges the patch into a copy of the user. Fields not named by the
// patch keep their previous values.
func (u User) Apply(p Patch) User {
	out := u.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Role != nil {
		out.Role = *p.Role
	}
	if p.Active != nil {
		out.Active = *p.Active
	}
	if p.Metadata != nil {
		out.Metadata = make(map[string]string, len(p.Metadata))
		for k, v := range p.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}
