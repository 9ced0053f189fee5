// Package colorindex holds the closed eight-colors-plus-none enum shared
// by the pdb Color row/Track.Color field and the anlz ExtendedCue color
// field, so both packages refer to the same closed set of values.
package colorindex

// ColorIndex is the closed eight-colors-plus-none enum.
type ColorIndex uint8

const (
	None ColorIndex = iota
	Pink
	Red
	Orange
	Yellow
	Green
	Aqua
	Blue
	Purple
)
