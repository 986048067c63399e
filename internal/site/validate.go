package site

import (
	"fmt"
	"strings"

	xhtml "golang.org/x/net/html"
)

// CheckDocument parses a rendered page and verifies the structural pieces
// the layout promises: an html root, a head with a title, and a body.
// Used by `stanza build --check` and the build tests.
func CheckDocument(out string) error {
	doc, err := xhtml.Parse(strings.NewReader(out))
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	required := map[string]bool{"html": false, "head": false, "title": false, "body": false, "main": false}

	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode {
			if _, ok := required[n.Data]; ok {
				required[n.Data] = true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	for tag, found := range required {
		if !found {
			return fmt.Errorf("document is missing a <%s> element", tag)
		}
	}
	return nil
}
