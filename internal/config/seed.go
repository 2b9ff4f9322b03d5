package config

import "github.com/mayobojhosue-coder/app-bloom/internal/models"

// DefaultRosters is the initial membership seeded on first start.
var DefaultRosters = models.Rosters{
	Girls: []string{
		"danielle", "camille", "charis", "chrismaëlla", "sarah", "helena",
		"joëlle", "kenza", "leila", "maïva", "mariska", "sainte", "angèle",
		"melea", "ketlyn", "romaine", "dalhia", "holy", "ana", "josé",
	},
	Boys: []string{
		"jhosue", "iknan", "ighal", "patrick", "jeremie darlick", "jeremie",
		"alain emmanuel", "arthur", "nathan", "stephen", "yvan",
	},
	Coaches: []string{"noelvine", "jean junior", "valérie", "aurel"},
}
