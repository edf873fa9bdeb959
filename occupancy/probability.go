package occupancy

import "math/big"

// factorialCache memoizes n! as we compute increasing factorials; Probability
// is called many times with overlapping small j, so this avoids recomputing
// the same factorial repeatedly within one process lifetime.
var factorialCache = map[int]*big.Int{0: big.NewInt(1)}

func factorial(n int) *big.Int {
	if f, ok := factorialCache[n]; ok {
		return f
	}
	// Fill upward from the largest cached value below n.
	start := 0
	for i := n; i >= 0; i-- {
		if f, ok := factorialCache[i]; ok {
			start = i
			_ = f
			break
		}
	}
	acc := new(big.Int).Set(factorialCache[start])
	for i := start + 1; i <= n; i++ {
		acc = new(big.Int).Mul(acc, big.NewInt(int64(i)))
		factorialCache[i] = acc
	}
	return factorialCache[n]
}

// Probability computes P(M) = (N! · k!) / (N^k · Π_j ((j!)^{M_j} · M_j!))
// following Johnson–Kotz, using exact big.Rat arithmetic throughout and
// converting to float64 only at the end (SPEC_FULL.md §4.3 / §9).
func Probability(m Spectrum, k, n int) float64 {
	if n == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}

	num := new(big.Int).Mul(factorial(n), factorial(k))

	den := new(big.Int).Exp(big.NewInt(int64(n)), big.NewInt(int64(k)), nil)
	for j, mj := range m {
		if mj == 0 {
			continue
		}
		jFact := factorial(j)
		jFactPowMj := new(big.Int).Exp(jFact, big.NewInt(int64(mj)), nil)
		den = new(big.Int).Mul(den, jFactPowMj)
		den = new(big.Int).Mul(den, factorial(mj))
	}

	rat := new(big.Rat).SetFrac(num, den)
	f, _ := rat.Float64()
	return f
}
