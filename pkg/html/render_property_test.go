//go:build property

package html

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genNodeTree produces arbitrary well-formed node trees up to a few levels
// deep, mixing element children with scalar and falsy children.
func genNodeTree(depth int) gopter.Gen {
	tags := gen.OneConstOf("div", "span", "p", "section", "ul", "li", "a", "img", "br")

	leaf := gopter.CombineGens(tags, gen.AlphaString()).Map(func(vals []interface{}) Node {
		return Text(vals[0].(string), vals[1].(string))
	})

	if depth <= 0 {
		return leaf
	}

	return gen.Weighted([]gen.WeightedGen{
		{Weight: 2, Gen: leaf},
		{Weight: 3, Gen: gopter.CombineGens(
			tags,
			gen.AlphaString(),
			gen.SliceOfN(3, genNodeTree(depth-1)),
			gen.Bool(),
		).Map(func(vals []interface{}) Node {
			children := []any{}
			if vals[3].(bool) {
				children = append(children, nil, false)
			}
			for _, child := range vals[2].([]Node) {
				children = append(children, child)
			}
			children = append(children, vals[1].(string))
			return El(vals[0].(string), []Attr{A("class", vals[1].(string))}, children...)
		})},
	})
}

func TestRenderProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("well-formed trees never fail to render", prop.ForAll(
		func(node Node) bool {
			_, err := Render(node)
			return err == nil
		},
		genNodeTree(3),
	))

	properties.Property("rendering is deterministic", prop.ForAll(
		func(node Node) bool {
			a, err1 := Render(node)
			b, err2 := Render(node)
			return err1 == nil && err2 == nil && a == b
		},
		genNodeTree(3),
	))

	properties.Property("text content never leaks raw markup characters", prop.ForAll(
		func(text string) bool {
			out, err := Render(Text("div", text))
			if err != nil {
				return false
			}
			inner := strings.TrimSuffix(strings.TrimPrefix(out, "<div>"), "</div>")
			return !strings.ContainsAny(inner, "<>")
		},
		gen.AnyString(),
	))

	properties.Property("attribute values never break out of their quotes", prop.ForAll(
		func(value string) bool {
			out, err := Render(El("div", []Attr{A("title", value)}))
			if err != nil {
				return false
			}
			// Everything between the surrounding quotes must be quote-free.
			inner := strings.TrimPrefix(out, `<div title="`)
			inner = strings.TrimSuffix(inner, `"></div>`)
			return !strings.Contains(inner, `"`)
		},
		gen.AnyString(),
	))

	properties.Property("falsy children never change their siblings", prop.ForAll(
		func(node Node) bool {
			plain, err1 := Render(El("div", nil, node))
			padded, err2 := Render(El("div", nil, nil, false, node, nil))
			return err1 == nil && err2 == nil && plain == padded
		},
		genNodeTree(2),
	))

	properties.TestingRun(t)
}
