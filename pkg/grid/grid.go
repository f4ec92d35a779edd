package grid

// GetGridCoords converts a linear cell index into (x, y) coordinates on a
// grid cols cells wide. Index 0 is the top-left cell; indices advance left
// to right, then top to bottom.
func GetGridCoords(index int, cols int) (int, int) {
	return index % cols, index / cols
}

// GetIndex is the inverse of GetGridCoords.
func GetIndex(x, y, cols int) int {
	return y*cols + x
}
