package codec

import (
	"strconv"
	"strings"
	"testing"
)

func buildBenchGrid(rows int) string {
	var b strings.Builder
	b.WriteString("ver:\"3.0\"\nts,v0,v1\n")
	for i := 0; i < rows; i++ {
		b.WriteString("2024-01-01T00:00:0" + strconv.Itoa(i%10) + "+00:00 UTC,")
		b.WriteString(strconv.Itoa(i))
		b.WriteString(".5°F,T\n")
	}
	return b.String()
}

func BenchmarkParseMultiThousandRowGrid(b *testing.B) {
	input := buildBenchGrid(5000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(input); err != nil {
			b.Fatalf("parse failed: %v", err)
		}
	}
}
