// Package maps holds the built-in maze layouts and the loader that turns
// character rows into a validated world grid.
package maps

// Legacy is the maze exactly as it was first written: rows of different
// lengths and three oxygen tanks. It only loads with PickupLastWins.
var Legacy = []string{
	"1111111111111111111111",
	"110000000000000O00001",
	"101001010010000010100",
	"101001001010101000P100",
	"110000000O00O00000001",
	"100000000000000000000",
	"100000000000000000000",
	"10000000J0000000000000",
	"100000000000000000000",
	"111111111111111111111",
}

// Station is the shipped maze. It is Legacy with the ragged rows kept (the
// loader pads them) and only the tank that was effective in Legacy, the
// last one in reading order.
var Station = []string{
	"1111111111111111111111",
	"110000000000000000001",
	"101001010010000010100",
	"101001001010101000P100",
	"110000000000O00000001",
	"100000000000000000000",
	"100000000000000000000",
	"10000000J0000000000000",
	"100000000000000000000",
	"111111111111111111111",
}
