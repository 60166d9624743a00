package entity

import "strings"

// HomeCityAnchor scopes every directory listing to the service's home city.
const HomeCityAnchor = "dhaka"

// KnownAreas is the curated list of Dhaka neighborhoods offered as area filters.
var KnownAreas = []string{
	"Dhanmondi", "Gulshan", "Banani", "Mirpur", "Uttara",
	"Mohakhali", "Motijheel", "Panthapath", "Shyamoli",
	"Bashundhara", "Farmgate", "Mohammadpur", "Tejgaon",
	"Lalmatia", "Shahbag", "Green Road", "Badda",
	"Rampura", "Khilgaon", "Malibagh", "Mogbazar",
}

// InHomeCity reports whether the doctor's location text mentions the home city.
func (d *Doctor) InHomeCity() bool {
	return strings.Contains(d.LocationText(), HomeCityAnchor)
}

// InArea reports whether the location text contains area, ignoring case.
func (d *Doctor) InArea(area string) bool {
	return strings.Contains(d.LocationText(), strings.ToLower(area))
}
