package terminal

import "github.com/lixenwraith/tachyon/core"

// rgbTo256 quantizes an RGB color to the xterm 256-color palette: the
// 6x6x6 color cube (indices 16-231) or the 24-step grayscale ramp
// (232-255) when all channels are close.
func rgbTo256(c core.Rgb) uint8 {
	if isGrayish(c) {
		avg := (int(c.R) + int(c.G) + int(c.B)) / 3
		if avg < 8 {
			return 16 // cube black
		}
		if avg > 238 {
			return 231 // cube white
		}
		return uint8(232 + (avg-8)/10)
	}
	return 16 + 36*cubeIndex(c.R) + 6*cubeIndex(c.G) + cubeIndex(c.B)
}

func isGrayish(c core.Rgb) bool {
	maxC := max(c.R, max(c.G, c.B))
	minC := min(c.R, min(c.G, c.B))
	return maxC-minC < 12
}

// cubeIndex maps a channel to its nearest level in {0,95,135,175,215,255}.
func cubeIndex(v uint8) uint8 {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return uint8((int(v) - 35) / 40)
}
