package layout

// Size represents a width/height pair in terminal cells.
type Size struct {
	Width, Height int
}
