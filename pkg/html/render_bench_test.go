package html

import (
	"fmt"
	"testing"
)

func benchmarkTree(width, depth int) Node {
	if depth == 0 {
		return Text("span", "leaf")
	}
	children := make([]any, 0, width)
	for i := 0; i < width; i++ {
		children = append(children, benchmarkTree(width, depth-1))
	}
	return El("div", []Attr{A("class", fmt.Sprintf("depth-%d", depth))}, children...)
}

func BenchmarkRenderSmallTree(b *testing.B) {
	node := benchmarkTree(3, 2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Render(node); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderLargeTree(b *testing.B) {
	node := benchmarkTree(5, 4)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Render(node); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderEscapeHeavyText(b *testing.B) {
	children := make([]any, 100)
	for i := range children {
		children[i] = Text("p", `<script>alert("x & y")</script>`)
	}
	node := El("article", nil, children...)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Render(node); err != nil {
			b.Fatal(err)
		}
	}
}
