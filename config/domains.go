package config

// Domain is a geographic lon/lat box in degrees.
type Domain struct {
	LonMin, LonMax float64
	LatMin, LatMax float64
}

// DefaultRegion is used when no region is requested.
const DefaultRegion = "Chile Continental"

// Domains are the predefined plot regions.
var Domains = map[string]Domain{
	"Chile Continental": {LonMin: -85.0, LonMax: -60.0, LatMin: -60.0, LatMax: -15.0},
	"Chile Central":     {LonMin: -75.0, LonMax: -67.0, LatMin: -35.0, LatMax: -30.0},
	"Isla de Pascua":    {LonMin: -120.0, LonMax: -103.0, LatMin: -35.0, LatMax: -20.0},
}

// DomainFor returns the domain for a region name, falling back to the
// default region when the name is unknown.
func DomainFor(region string) Domain {
	if d, ok := Domains[region]; ok {
		return d
	}
	return Domains[DefaultRegion]
}
