// Package markdown parses the small Markdown subset the generated reports
// use (headings, lists, paragraphs) into a flat node list API clients can
// render natively.
package markdown

import "strings"

// NodeType discriminates the parsed block types.
type NodeType string

const (
	NodeHeading   NodeType = "heading"
	NodeList      NodeType = "list"
	NodeParagraph NodeType = "paragraph"
)

// Node is one rendered block. Level is set for headings (1-6); Items for
// lists.
type Node struct {
	Type  NodeType `json:"type"`
	Level int      `json:"level,omitempty"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

// Parse splits Markdown source into block nodes. Inline markup (bold,
// italics) is left untouched inside the text.
func Parse(src string) []Node {
	var nodes []Node
	var paragraph []string
	var list []string

	flushParagraph := func() {
		if len(paragraph) > 0 {
			nodes = append(nodes, Node{Type: NodeParagraph, Text: strings.Join(paragraph, " ")})
			paragraph = nil
		}
	}
	flushList := func() {
		if len(list) > 0 {
			nodes = append(nodes, Node{Type: NodeList, Items: list})
			list = nil
		}
	}

	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flushParagraph()
			flushList()
		case strings.HasPrefix(line, "#"):
			flushParagraph()
			flushList()
			level := 0
			for level < len(line) && line[level] == '#' && level < 6 {
				level++
			}
			nodes = append(nodes, Node{
				Type:  NodeHeading,
				Level: level,
				Text:  strings.TrimSpace(line[level:]),
			})
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			flushParagraph()
			list = append(list, strings.TrimSpace(line[2:]))
		default:
			flushList()
			paragraph = append(paragraph, line)
		}
	}
	flushParagraph()
	flushList()
	return nodes
}
