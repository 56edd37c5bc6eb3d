package ui

// Layout is the geometry of one frame. The shell computes it once per
// resize or settings change and hands the pieces to each component.
type Layout struct {
	Width, Height int // terminal, clamped to the minimum

	ContentHeight int // between header and footer

	// BodyWidth and BodyHeight are the area the panes share: the whole
	// content area in compact and tight layouts, the inside of the
	// container border otherwise.
	BodyWidth, BodyHeight int

	// SidebarWidth and MainWidth split the body. In the compact layout
	// one pane is shown at a time, so both are the full body width.
	SidebarWidth, MainWidth int

	Compact bool
	Tight   bool
}

// NewLayout computes the frame geometry for a terminal of the given size.
func NewLayout(width, height int, compact, tight bool) Layout {
	width = max(width, MinTerminalWidth)
	height = max(height, MinTerminalHeight)

	l := Layout{
		Width:         width,
		Height:        height,
		ContentHeight: height - HeaderHeight - FooterHeight,
		Compact:       compact,
		Tight:         tight,
	}

	if compact {
		l.BodyWidth, l.BodyHeight = width, l.ContentHeight
		l.SidebarWidth, l.MainWidth = width, width
		return l
	}

	l.BodyWidth, l.BodyHeight = width, l.ContentHeight
	if !tight {
		l.BodyWidth, l.BodyHeight = Inner(width), Inner(l.ContentHeight)
	}
	l.SidebarWidth = min(max(l.BodyWidth/SidebarWidthRatio, MinSidebarWidth), MaxSidebarWidth, l.BodyWidth/2)
	l.MainWidth = l.BodyWidth - l.SidebarWidth
	return l
}

// Inner is the usable size inside a bordered panel of size n.
func Inner(n int) int {
	return max(n-BorderSize, 0)
}
