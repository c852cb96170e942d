// Package markdown extracts structured content from Markdown documents.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Cell is one table cell reduced to its plain text.
type Cell struct {
	Text string
	// Destination is the target of the first link in the cell, if any.
	Destination string
}

// Table is a GFM table.
type Table struct {
	Header []string
	Rows   [][]Cell
}

// ColumnIndex returns the position of the header named name, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

// ParseBody parses a Markdown body with GFM tables enabled.
func ParseBody(body []byte) gmast.Node {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	return md.Parser().Parse(text.NewReader(body))
}

// ExtractTables returns every GFM table in body, in document order.
// Code spans and fenced blocks are not scanned for tables.
func ExtractTables(body []byte) []Table {
	root := ParseBody(body)

	tables := make([]Table, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		tbl, ok := n.(*east.Table)
		if !ok {
			return gmast.WalkContinue, nil
		}
		tables = append(tables, readTable(tbl, body))
		return gmast.WalkSkipChildren, nil
	})
	return tables
}

func readTable(tbl *east.Table, source []byte) Table {
	var out Table
	for child := tbl.FirstChild(); child != nil; child = child.NextSibling() {
		switch row := child.(type) {
		case *east.TableHeader:
			for _, c := range readCells(row, source) {
				out.Header = append(out.Header, c.Text)
			}
		case *east.TableRow:
			out.Rows = append(out.Rows, readCells(row, source))
		}
	}
	return out
}

func readCells(row gmast.Node, source []byte) []Cell {
	cells := make([]Cell, 0, row.ChildCount())
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*east.TableCell); !ok {
			continue
		}
		cells = append(cells, readCell(c, source))
	}
	return cells
}

func readCell(cell gmast.Node, source []byte) Cell {
	var b strings.Builder
	var dest string
	_ = gmast.Walk(cell, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Link:
			if dest == "" {
				dest = string(node.Destination)
			}
		case *gmast.Text:
			b.Write(node.Segment.Value(source))
		case *gmast.String:
			b.Write(node.Value)
		}
		return gmast.WalkContinue, nil
	})
	return Cell{Text: strings.TrimSpace(b.String()), Destination: dest}
}
