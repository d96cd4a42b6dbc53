package xyplot

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"testing"
)

// makeInput returns n lines of noisy coordinate pairs inside a size x size
// raster.
func makeInput(n, size int) string {
	rng := rand.New(rand.NewPCG(1, 2))
	var b strings.Builder
	for i := range n {
		x, y := rng.IntN(size), rng.IntN(size)
		switch i % 3 {
		case 0:
			fmt.Fprintf(&b, "%d,%d\n", x, y)
		case 1:
			fmt.Fprintf(&b, "step=%d x=%d.%03d | y=%d\n", i, x, rng.IntN(1000), y)
		default:
			fmt.Fprintf(&b, "[%d] %d %d\n", i, x, y)
		}
	}
	return b.String()
}

// BenchmarkPlotStream measures the complete pipeline, from bytes to pixels.
func BenchmarkPlotStream(b *testing.B) {
	for _, n := range []int{100, 10000, 1000000} {
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			in := makeInput(n, 1000)
			cfg := DefaultConfig()
			p, err := NewPlotter(cfg, nil)
			if err != nil {
				b.Fatal(err)
			}

			b.SetBytes(int64(len(in)))
			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				err := p.PlotStream("bench", strings.NewReader(in))
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkLineReader measures line splitting on its own.
func BenchmarkLineReader(b *testing.B) {
	in := makeInput(10000, 1000)
	b.SetBytes(int64(len(in)))
	b.ReportAllocs()

	for b.Loop() {
		lr := NewLineReader(strings.NewReader(in), 0, 0)
		for {
			_, err := lr.Next()
			if err == io.EOF {
				break
			} else if err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkScanner measures bufio.Scanner on the same input, for comparison.
func BenchmarkScanner(b *testing.B) {
	in := makeInput(10000, 1000)
	b.SetBytes(int64(len(in)))
	b.ReportAllocs()

	for b.Loop() {
		s := bufio.NewScanner(strings.NewReader(in))
		for s.Scan() {
		}
		if err := s.Err(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseLine(b *testing.B) {
	line := []byte("2026-10-15 12:00:01 step=17 x=421.387 | y=12")
	buf := make([]byte, len(line))
	b.ReportAllocs()

	for b.Loop() {
		copy(buf, line)
		_, _, err := ParseLine(buf)
		if err != nil {
			b.Fatal(err)
		}
	}
}
