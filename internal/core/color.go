package core

import "image/color"

// Color represents a foreground color for a screen cell or a shape.
// Terminal frontends map it to ANSI 256-color codes, graphical frontends
// use RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
	ColorSky
)

var rgbaTable = map[Color]color.RGBA{
	ColorDefault:       {R: 255, G: 255, B: 255, A: 255},
	ColorRed:           {R: 200, G: 50, B: 50, A: 255},
	ColorGreen:         {R: 40, G: 160, B: 60, A: 255},
	ColorYellow:        {R: 255, G: 200, B: 50, A: 255},
	ColorBlue:          {R: 40, G: 80, B: 200, A: 255},
	ColorMagenta:       {R: 180, G: 60, B: 180, A: 255},
	ColorCyan:          {R: 40, G: 180, B: 200, A: 255},
	ColorWhite:         {R: 230, G: 230, B: 230, A: 255},
	ColorBrightRed:     {R: 255, G: 0, B: 0, A: 255},
	ColorBrightGreen:   {R: 80, G: 255, B: 80, A: 255},
	ColorBrightYellow:  {R: 255, G: 255, B: 90, A: 255},
	ColorBrightBlue:    {R: 90, G: 140, B: 255, A: 255},
	ColorBrightMagenta: {R: 255, G: 90, B: 255, A: 255},
	ColorBrightCyan:    {R: 90, G: 255, B: 255, A: 255},
	ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	ColorOrange:        {R: 255, G: 140, B: 0, A: 255},
	ColorGray:          {R: 50, G: 50, B: 50, A: 255},
	ColorBlack:         {R: 0, G: 0, B: 0, A: 255},
	ColorSky:           {R: 20, G: 130, B: 200, A: 255},
}

// RGBA returns the color for pixel-based frontends.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := rgbaTable[c]; ok {
		return rgba
	}
	return rgbaTable[ColorDefault]
}
