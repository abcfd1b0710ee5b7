package board

// LegalMoves applies each knight offset to c, in Offsets order, and keeps the
// destinations inside [0, n)². The origin itself is not validated.
//
// The result has at most 8 elements, no duplicates, and never contains c.
// Time: O(1). Memory: one slice of at most 8 coordinates.
func LegalMoves(n int, c Coordinate) []Coordinate {
	return AppendLegalMoves(make([]Coordinate, 0, len(Offsets)), n, c)
}

// AppendLegalMoves appends the legal destinations from c to dst and returns the
// extended slice. Search loops reuse dst to avoid an allocation per expansion.
func AppendLegalMoves(dst []Coordinate, n int, c Coordinate) []Coordinate {
	for _, o := range Offsets {
		next := c.Add(o)
		if inBounds(n, next) {
			dst = append(dst, next)
		}
	}

	return dst
}

// Degree counts the legal destinations from c without allocating.
func Degree(n int, c Coordinate) int {
	d := 0
	for _, o := range Offsets {
		if inBounds(n, c.Add(o)) {
			d++
		}
	}

	return d
}
