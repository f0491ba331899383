package viewer

// Zoom and pan math. Zoom moves in multiplicative steps and is clamped
// to the configured range. Pan is only meaningful above 1:1; bounds are
// recomputed from the current layout so a window resize can never leave
// the image stranded outside the viewport.

type zoomState struct {
	level float64
	panX  int
	panY  int

	min  float64
	max  float64
	step float64
}

func newZoomState(min, max, step float64) zoomState {
	return zoomState{level: 1.0, min: min, max: max, step: step}
}

// zoomIn raises the level one step, clamped to max.
func (z zoomState) zoomIn() zoomState {
	z.level *= z.step
	if z.level > z.max {
		z.level = z.max
	}
	return z
}

// zoomOut lowers the level one step, clamped to min. Reaching 1:1 or
// below zeroes the pan offset.
func (z zoomState) zoomOut() zoomState {
	z.level /= z.step
	if z.level < z.min {
		z.level = z.min
	}
	if z.level <= 1.0 {
		z.panX, z.panY = 0, 0
	}
	return z
}

// reset returns to exactly 1:1 with centered pan.
func (z zoomState) reset() zoomState {
	z.level = 1.0
	z.panX, z.panY = 0, 0
	return z
}

// pan shifts the offset, clamped so the image edge never crosses the
// viewport center. No-op at or below 1:1.
func (z zoomState) pan(dx, dy, viewW, viewH int) zoomState {
	if z.level <= 1.0 {
		return z
	}
	maxX, maxY := z.panBounds(viewW, viewH)
	z.panX = clamp(z.panX+dx, -maxX, maxX)
	z.panY = clamp(z.panY+dy, -maxY, maxY)
	return z
}

// clampPan re-applies the current bounds, for use after a resize.
func (z zoomState) clampPan(viewW, viewH int) zoomState {
	if z.level <= 1.0 {
		z.panX, z.panY = 0, 0
		return z
	}
	maxX, maxY := z.panBounds(viewW, viewH)
	z.panX = clamp(z.panX, -maxX, maxX)
	z.panY = clamp(z.panY, -maxY, maxY)
	return z
}

// panBounds derives the maximum offset from the displayed size: half
// the scaled viewport in each axis.
func (z zoomState) panBounds(viewW, viewH int) (int, int) {
	return int(float64(viewW) * z.level / 2), int(float64(viewH) * z.level / 2)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
