package records

import "github.com/volatiletech/null/v8"

// Seeds is the bootstrap configuration a Store falls back to when a durable
// document is absent or unreadable. It is supplied at construction so
// deployments can override the historical defaults.
type Seeds struct {
	Credentials Credentials
	Catalog     Catalog
}

// DefaultSeeds returns the historical fixed account set and course catalog.
func DefaultSeeds() Seeds {
	return Seeds{
		Credentials: Credentials{
			RoleAdmin: {"admin": "admin12"},
			RoleStudent: {
				"Harshit":  "harshit12",
				"SHILAJIT": "SHILAJIT12",
				"Shourya":  "shourya12",
			},
			RoleFaculty: {
				"Prabhu":  "prabhu12",
				"Sukanta": "sukanta12",
				"Diddy":   "oiloiloil",
			},
		},
		Catalog: Catalog{
			"CS101":   {Name: "Intro to Python", Faculty: null.StringFrom("Prabhu")},
			"MATH201": {Name: "Calculus I", Faculty: null.StringFrom("Sukanta")},
			"PHYS101": {Name: "Basic Engineering", Faculty: null.StringFrom("Prabhu")},
			"CHEM101": {Name: "Chemistry", Faculty: null.StringFrom("Diddy")},
		},
	}
}
