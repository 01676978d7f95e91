package datafile

import "strings"

// worldLine lays out a world record at the standard columns. profile is the
// starport followed by the eight UWP characters.
func worldLine(name, hex, profile string, base byte, notes string, zone, gasGiants byte, allegiance string) string {
	b := []byte(strings.Repeat(" ", 57))
	copy(b[0:13], name)
	copy(b[14:18], hex)
	copy(b[19:28], profile)
	b[30] = base
	copy(b[32:46], notes)
	b[48] = zone
	b[53] = gasGiants
	copy(b[55:57], allegiance)
	return string(b)
}
