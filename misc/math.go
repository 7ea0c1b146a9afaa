package misc

// Map linearly rescales value from the range [srcMin, srcMax] to the range [dstMin, dstMax].
// Values outside the source range are extrapolated. srcMin and srcMax must differ.
func Map(value float64, srcMin float64, srcMax float64, dstMin float64, dstMax float64) float64 {
	return (value-srcMin)*(dstMax-dstMin)/(srcMax-srcMin) + dstMin
}

// MapIndex rescales value like Map and truncates the result toward zero.
// Palette indexing and channel conversion both go through here so they floor the same way.
func MapIndex(value float64, srcMin float64, srcMax float64, dstMin float64, dstMax float64) int {
	return int(Map(value, srcMin, srcMax, dstMin, dstMax))
}
