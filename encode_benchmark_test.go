package delta

import (
	"bytes"
	"fmt"
	"testing"
)

func benchmarkRefAndVer() map[string][2][]byte {
	pattern := bytes.Repeat([]byte("ABCDEF0123456789"), 8192) // 128 KiB
	shifted := append(append([]byte{}, pattern[4096:]...), pattern[:4096]...)
	return map[string][2][]byte{
		"repeating-128k":  {pattern, shifted},
		"text-4k-similar": {bytes.Repeat([]byte("delta benchmark text payload "), 160), bytes.Repeat([]byte("delta benchmark text payload "), 160)},
	}
}

func BenchmarkEncode(b *testing.B) {
	algos := []Algorithm{AlgoGreedy, AlgoOnePass, AlgoCorrecting}
	for name, rv := range benchmarkRefAndVer() {
		for _, algo := range algos {
			benchName := fmt.Sprintf("%s/%s", name, algo)
			b.Run(benchName, func(b *testing.B) {
				r, v := rv[0], rv[1]
				b.ReportAllocs()
				b.SetBytes(int64(len(v)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := Encode(algo, r, v, nil); err != nil {
						b.Fatalf("Encode failed: %v", err)
					}
				}
			})
		}
	}
}
