package rtree

// orderedFloat32 is a sort key defining a total order over the float32s
// actually encountered during split: a < b if IEEE-< says so, a > b if
// IEEE-> says so, else equal. NaNs therefore compare equal to everything
// and sort to an unspecified but consistent position; split does not rely
// on where a NaN lands.
type orderedFloat32 float32

func (a orderedFloat32) less(b orderedFloat32) bool {
	return a < b
}
