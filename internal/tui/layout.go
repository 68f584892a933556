package tui

// Layout proportions
const (
	// List takes this share when the inspector is visible
	ListPercent = 60

	// Below this width the inspector is hidden
	InspectorMinWidth = 90

	MinListWidth = 30

	// Vertical layout: header, search bar and footer lines
	ChromeHeight = 3
)

// listingLayout holds calculated widths for the listing View
type listingLayout struct {
	listWidth      int
	inspectorWidth int // 0 if not shown
	contentHeight  int
}

// calculateListingLayout splits the window between the list and inspector
func (m Model) calculateListingLayout() listingLayout {
	layout := listingLayout{
		listWidth:     m.Width,
		contentHeight: max(m.Height-ChromeHeight, 3),
	}
	if m.Width >= InspectorMinWidth {
		layout.listWidth = max(m.Width*ListPercent/100, MinListWidth)
		layout.inspectorWidth = m.Width - layout.listWidth
	}
	return layout
}

// updateLayout sizes the components for the current window
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	layout := m.calculateListingLayout()

	m.SearchBar.SetWidth(m.Width)
	m.List.SetSize(layout.listWidth, layout.contentHeight)
	m.Inspector.SetSize(layout.inspectorWidth, layout.contentHeight)

	// Detail view keeps the header and footer
	m.Detail.SetSize(m.Width, m.Height-2)
}
