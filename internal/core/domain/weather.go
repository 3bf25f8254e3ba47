package domain

type windSector struct {
	from, to int
	name     string
}

var windSectors = []windSector{
	{0, 25, "North"},
	{26, 70, "Northeast"},
	{71, 110, "East"},
	{111, 155, "Southeast"},
	{156, 200, "South"},
	{201, 250, "Southwest"},
	{251, 290, "West"},
	{291, 335, "Northwest"},
	{336, 360, "North"},
}

// WindDirection names the compass sector for a wind bearing in degrees. Fractions are truncated; bearings
// outside 0..360 have no direction.
func WindDirection(degree float64) (string, bool) {
	deg := int(degree)

	for _, sector := range windSectors {
		if deg >= sector.from && deg <= sector.to {
			return sector.name, true
		}
	}

	return "", false
}

func Fahrenheit(celsius float64) float64 {
	return celsius*1.8 + 32
}
