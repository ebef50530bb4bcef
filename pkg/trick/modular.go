package trick

// addMod returns (a + b) mod m without overflowing
func addMod(a, b, m uint64) uint64 {
	a, b = a%m, b%m
	if a >= m-b {
		return a - (m - b)
	}
	return a + b
}

// distance returns how far to is above from when counting upwards modulo m.
// Both arguments must already be reduced modulo m.
func distance(from, to, m uint64) uint64 {
	if to >= from {
		return to - from
	}
	return m - (from - to)
}
