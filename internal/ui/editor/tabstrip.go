package editor

// stripWindow is the slice [start, end) of tabs that fits the strip, plus
// whether "<" and ">" hints are needed for tabs hidden on either side.
type stripWindow struct {
	start, end  int
	left, right bool
}

// fitStrip keeps the previous scroll position when the active tab is still
// visible, otherwise scrolls just far enough to show it.
func fitStrip(widths []int, prevStart, active, width int) stripWindow {
	n := len(widths)
	if n == 0 {
		return stripWindow{}
	}
	total := 0
	for _, w := range widths {
		total += w
	}
	if total <= width {
		return stripWindow{start: 0, end: n}
	}

	active = clamp(active, 0, n-1)
	w := windowFrom(widths, clamp(prevStart, 0, n-1), width)
	switch {
	case active < w.start:
		w = windowFrom(widths, active, width)
	case active >= w.end:
		w = windowEndingAt(widths, active+1, width)
	}
	return w
}

// windowFrom packs tabs left to right starting at start. The hint columns
// change how much room is left, so the fit is settled over a few passes.
func windowFrom(widths []int, start, width int) stripWindow {
	n := len(widths)
	w := stripWindow{start: start, end: start + 1, left: start > 0}
	for pass := 0; pass < 3; pass++ {
		w.end = packForward(widths, start, room(width, w.left, w.right))
		w.right = w.end < n
	}
	return w
}

// windowEndingAt packs tabs right to left so that end-1 is the last one shown.
func windowEndingAt(widths []int, end, width int) stripWindow {
	n := len(widths)
	w := stripWindow{start: end - 1, end: end, right: end < n}
	for pass := 0; pass < 3; pass++ {
		w.start = packBackward(widths, end, room(width, w.left, w.right))
		w.left = w.start > 0
	}
	return w
}

func room(width int, left, right bool) int {
	if left {
		width--
	}
	if right {
		width--
	}
	return max(width, 1)
}

// packForward returns the end index of the tabs from start that fit in
// avail columns. At least one tab is always included.
func packForward(widths []int, start, avail int) int {
	sum := 0
	for i := start; i < len(widths); i++ {
		if sum+widths[i] > avail {
			return max(i, start+1)
		}
		sum += widths[i]
	}
	return len(widths)
}

// packBackward returns the start index of the tabs ending before end that
// fit in avail columns. At least one tab is always included.
func packBackward(widths []int, end, avail int) int {
	sum := 0
	for i := end - 1; i >= 0; i-- {
		if sum+widths[i] > avail {
			return min(i+1, end-1)
		}
		sum += widths[i]
	}
	return 0
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
