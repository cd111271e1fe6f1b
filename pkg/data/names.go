// Package data holds static flavor data for the UI.
package data

import "fmt"

// Callsigns is the pool of ship names shown on the menu.
var Callsigns = []string{
	"NOVA", "VEGA", "LYRA", "ORION", "RIGEL", "DRACO", "HYDRA", "PHOENIX",
	"AQUILA", "CYGNUS", "PAVO", "CARINA", "CORVUS", "AURIGA", "PEGASUS",
	"ALTAIR", "SIRIUS", "POLARIS", "ANTARES", "CASTOR",
}

// Callsign returns a deterministic ship callsign for a seed, in the form
// "NOVA-7".
func Callsign(seed int64) string {
	if seed < 0 {
		seed = -seed
	}
	name := Callsigns[seed%int64(len(Callsigns))]
	return fmt.Sprintf("%s-%d", name, seed%9+1)
}
