package scraper

import (
	"bytes"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// nodeText concatenates every text node below n.
func nodeText(n *html.Node) string {
	var buffer bytes.Buffer
	nodeTextRecursive(n, &buffer)
	return buffer.String()
}

func nodeTextRecursive(n *html.Node, buffer *bytes.Buffer) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		buffer.WriteString(n.Data)
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		nodeTextRecursive(child, buffer)
	}
}

// cleanText trims s and collapses internal whitespace runs to one space.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// spanAttr reads a positive integer attribute such as colspan, defaulting to 1.
func spanAttr(n *html.Node, key string) int {
	for _, a := range n.Attr {
		if a.Key != key {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(a.Val))
		if err != nil || v < 1 {
			return 1
		}
		return v
	}
	return 1
}
