package vector_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/vector"
)

// BenchmarkAppend measures amortized append cost for several element sizes
// against the built-in append
func BenchmarkAppend(b *testing.B) {
	counts := []int{16, 256, 4096}

	for _, n := range counts {
		b.Run(fmt.Sprintf("Vector_int_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := vector.New[int]()
				for j := 0; j < n; j++ {
					_ = v.PushBack(j)
				}
				v.Destroy()
			}
		})

		b.Run(fmt.Sprintf("Builtin_int_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var s []int
				for j := 0; j < n; j++ {
					s = append(s, j)
				}
				_ = s
			}
		})

		b.Run(fmt.Sprintf("Vector_256B_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := vector.New[[256]byte]()
				for j := 0; j < n; j++ {
					_, _ = v.EmplaceBack(func(p *[256]byte) error {
						p[0] = byte(j)
						return nil
					})
				}
				v.Destroy()
			}
		})
	}
}

// BenchmarkReserved shows the cost of appends that never reallocate
func BenchmarkReserved(b *testing.B) {
	const n = 4096

	b.Run("Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := vector.New[int]()
			_ = v.Reserve(n)
			for j := 0; j < n; j++ {
				_ = v.PushBack(j)
			}
			v.Destroy()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, n)
			for j := 0; j < n; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})
}

// BenchmarkCopy compares element-wise duplication paths
func BenchmarkCopy(b *testing.B) {
	src := vector.New[string]()
	for j := 0; j < 1024; j++ {
		_ = src.PushBack(fmt.Sprint(j))
	}

	b.Run("Clone", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c, _ := src.Clone()
			c.Destroy()
		}
	})

	b.Run("CopyFromReusingStorage", func(b *testing.B) {
		dst := vector.New[string]()
		_ = dst.Reserve(1024)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = dst.CopyFrom(src)
		}
	})
}
