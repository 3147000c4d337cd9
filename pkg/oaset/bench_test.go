package oaset_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/czr1551/edu-cpo-lab-1/pkg/oaset"
	"github.com/google/uuid"
)

func BenchmarkAdd(b *testing.B) {

	for n := 64; n <= 65536; n *= 16 {

		keys := make([]string, n)
		for i := range keys {
			keys[i] = uuid.New().String()
		}

		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {

			b.ReportAllocs()

			s := oaset.Empty[string]()
			for i := 0; i < b.N; i++ {
				s.Add(keys[rand.IntN(n)])
			}
		})
	}
}

func BenchmarkContains(b *testing.B) {

	for n := 64; n <= 65536; n *= 16 {

		keys := make([]string, n)
		for i := range keys {
			keys[i] = uuid.New().String()
		}

		s := oaset.Empty[string]()
		for i := 0; i < n/2; i++ {
			s.Add(keys[rand.IntN(n)])
		}

		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {

			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				s.Contains(keys[rand.IntN(n)])
			}
		})
	}
}

func BenchmarkAddRemove(b *testing.B) {

	const n = 4096

	keys := make([]string, n)
	for i := range keys {
		keys[i] = uuid.New().String()
	}

	s := oaset.Empty[string]()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		k := keys[rand.IntN(n)]
		s.Add(k)
		s.Remove(k)
	}
}
