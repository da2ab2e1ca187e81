package audio

import (
	"math"

	"github.com/gopxl/beep"
)

const bytesPerFrame = 4 // 16-bit little endian, two channels

// RenderPCM drains a finite streamer into signed 16-bit little endian
// stereo PCM, the layout ebiten's audio context plays.
func RenderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			l, r := toInt16(smp[0]), toInt16(smp[1])
			out = append(out, byte(l), byte(l>>8), byte(r), byte(r>>8))
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
