package fonts

import "embed"

//go:embed data/*.flf
var bundledFS embed.FS

// bundledFonts lists the fonts compiled into the binary, in load order.
// Standard must stay in this list: the registry treats its absence as a
// construction bug.
var bundledFonts = []struct {
	name string
	path string
}{
	{"Standard", "data/Standard.flf"},
	{"Small", "data/Small.flf"},
	{"Block", "data/Block.flf"},
	{"Mono 9", "data/Mono_9.flf"},
}
