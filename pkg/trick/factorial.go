package trick

// MaxSetSize is the largest set Encode accepts: (MaxSetSize-1)! = 20! is the
// largest factorial that fits in a uint64.
const MaxSetSize = 21

var factorials = func() [MaxSetSize]uint64 {
	var table [MaxSetSize]uint64
	table[0] = 1
	for i := 1; i < MaxSetSize; i++ {
		table[i] = table[i-1] * uint64(i)
	}
	return table
}()

// Factorial returns n! for 0 <= n <= 20 and panics otherwise.
func Factorial(n int) uint64 {
	if n < 0 || n >= MaxSetSize {
		panic("factorial argument out of uint64 range")
	}
	return factorials[n]
}

// Feasible reports whether sets of setSize values can encode every value
// modulo modulus.
func Feasible(setSize int, modulus uint64) bool {
	if setSize < 2 || setSize > MaxSetSize {
		return false
	}
	return Factorial(setSize-1)*2+uint64(setSize-1) >= modulus
}
