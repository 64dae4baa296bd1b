package dash

import (
	"github.com/poligon98/arcade/internal/core"
)

// Lethal reports whether foot has sunk into the spike deeply enough to
// kill. Only the middle of the base counts: margin trims that fraction
// of the base width from each side. Inside the band, the foot must pass
// below the right flank by more than forgiveness times the spike height.
//
// All arithmetic runs on the truncated hitbox points. A spike with no
// width is never lethal.
func Lethal(s *Spike, foot core.Point, margin, forgiveness float64) bool {
	apex, left, right := s.Hitbox()
	if right.X == apex.X {
		return false
	}

	px, py := float64(foot.X), float64(foot.Y)
	m := float64(right.X-left.X) * margin
	if px < float64(left.X)+m || px > float64(right.X)-m {
		return false
	}

	slope := float64(right.Y-apex.Y) / float64(right.X-apex.X)
	top := slope*(px-float64(apex.X)) + float64(apex.Y)
	return py > top+float64(left.Y-apex.Y)*forgiveness
}
