package delta

import "testing"

func TestIsPrimeKnownValues(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 97, 7919, 1<<31 - 1}
	for _, p := range primes {
		if !isPrime(p) {
			t.Errorf("isPrime(%d) = false, want true", p)
		}
	}

	composites := []uint64{0, 1, 4, 6, 8, 9, 100, 7921}
	for _, c := range composites {
		if isPrime(c) {
			t.Errorf("isPrime(%d) = true, want false", c)
		}
	}
}

func TestNextPrime(t *testing.T) {
	cases := []struct{ n, want uint64 }{
		{0, 2},
		{1, 2},
		{2, 2},
		{3, 3},
		{4, 5},
		{100, 101},
	}
	for _, c := range cases {
		got := nextPrime(c.n)
		if got != c.want {
			t.Errorf("nextPrime(%d) = %d, want %d", c.n, got, c.want)
		}
		if !isPrime(got) {
			t.Errorf("nextPrime(%d) = %d, not prime", c.n, got)
		}
	}
}

func TestNextPrimeIsMinimal(t *testing.T) {
	for _, n := range []uint64{1 << 10, 1 << 17, 99991, 7 * 13 * 17} {
		got := nextPrime(n)
		if got < n {
			t.Fatalf("nextPrime(%d) = %d is less than n", n, got)
		}
		if !isPrime(got) {
			t.Fatalf("nextPrime(%d) = %d is not prime", n, got)
		}
		for m := n; m < got; m++ {
			if isPrime(m) {
				t.Fatalf("nextPrime(%d) = %d skipped smaller prime %d", n, got, m)
			}
		}
	}
}
