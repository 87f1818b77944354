package app

import "github.com/kgrieve/rosterdeck/internal/roster"

// seedRoster returns the initial collection shown on first launch.
func seedRoster() roster.Collection {
	return roster.Collection{
		{ID: 1, Name: "Ann Laurent", Email: "ann@example.com", Role: roster.RoleAdmin, Active: true},
		{ID: 2, Name: "Bob Okafor", Email: "bob@example.com", Role: roster.RoleUser, Active: true},
		{ID: 3, Name: "Cleo Marsh", Email: "cleo@example.com", Role: roster.RoleModerator, Active: false,
			Metadata: map[string]string{"team": "support"}},
		{ID: 4, Name: "Dev Iyer", Email: "dev@example.com", Role: roster.RoleUser, Active: true},
	}
}
