package slovoform

// isPrime reports whether n is prime, by trial division.
func isPrime(n uint32) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	// d*d can exceed 32 bits near the top of the range.
	for d := uint64(3); d*d <= uint64(n); d += 2 {
		if uint64(n)%d == 0 {
			return false
		}
	}
	return true
}

// nextPrimeAfter returns the smallest prime strictly greater than n.
func nextPrimeAfter(n uint32) uint32 {
	p := n + 1
	for !isPrime(p) {
		p++
	}
	return p
}
