package dump

import (
	"fmt"
	"io"

	"github.com/npillmayer/segarray"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes the page layout of a to w as an HTML table, one row per page.
//
// The first cell of every row carries the page id, followed by one cell per
// slot. Cells for holes carry the class "hole" and the text HoleMark.
func HTML[T any](w io.Writer, a *segarray.Array[T]) error {
	if w == nil || a == nil {
		return segarray.ErrIllegalArguments
	}
	table := element(atom.Table, "segarray")
	for pageID := 1; pageID <= a.PageCount(); pageID++ {
		p, _ := a.GetPage(pageID)
		tr := element(atom.Tr, "")
		th := element(atom.Th, "")
		th.AppendChild(text(fmt.Sprintf("%d", pageID)))
		tr.AppendChild(th)
		for off := 1; off <= p.Len(); off++ {
			s, _ := p.SlotAt(off)
			if s.Empty {
				td := element(atom.Td, "hole")
				td.AppendChild(text(HoleMark))
				tr.AppendChild(td)
				continue
			}
			td := element(atom.Td, "")
			td.AppendChild(text(fmt.Sprint(s.Value)))
			tr.AppendChild(td)
		}
		table.AppendChild(tr)
	}
	return html.Render(w, table)
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{
		Type: html.TextNode,
		Data: s,
	}
}
