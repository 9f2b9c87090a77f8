package addr

// Rectangle returns every address in the rectangular span [from.X..to.X] x
// [from.Y..to.Y] in row-major order. If from.X > to.X or from.Y > to.Y the
// range is empty.
func Rectangle(from, to Address) []Address {
	if from.X > to.X || from.Y > to.Y {
		return nil
	}
	var out []Address
	for y := from.Y; y <= to.Y; y++ {
		for x := from.X; x <= to.X; x++ {
			out = append(out, Address{X: x, Y: y})
		}
	}
	return out
}
