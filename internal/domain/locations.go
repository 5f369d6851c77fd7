package domain

// AllowedLocations is the closed set of locations a review may be submitted
// for. Matching is exact and case-sensitive; there is no fuzzy matching.
var AllowedLocations = map[string]struct{}{
	"Albuquerque, New Mexico":    {},
	"Carlsbad, California":       {},
	"Chula Vista, California":    {},
	"Colorado Springs, Colorado": {},
	"Denver, Colorado":           {},
	"El Cajon, California":       {},
	"El Paso, Texas":             {},
	"Escondido, California":      {},
	"Fresno, California":         {},
	"La Mesa, California":        {},
	"Las Vegas, Nevada":          {},
	"Los Angeles, California":    {},
	"Oceanside, California":      {},
	"Phoenix, Arizona":           {},
	"Sacramento, California":     {},
	"Salt Lake City, Utah":       {},
	"San Diego, California":      {},
	"Tucson, Arizona":            {},
}

// LocationAllowed reports whether loc is in the allow-list.
func LocationAllowed(loc string) bool {
	_, ok := AllowedLocations[loc]
	return ok
}
