package dump

import (
	"fmt"
	"io"

	"github.com/npillmayer/segarray"
)

// Dot outputs the page table of an array in Graphviz DOT format
// (for debugging purposes).
//
// The page table is drawn as a record node with one field per page id, with
// an edge to a box for every page. Boxes of pages containing holes are
// highlighted.
func Dot[T any](w io.Writer, a *segarray.Array[T]) error {
	if w == nil || a == nil {
		return segarray.ErrIllegalArguments
	}
	var nodelist, edgelist, fields string
	for pageID := 1; pageID <= a.PageCount(); pageID++ {
		p, _ := a.GetPage(pageID)
		if pageID > 1 {
			fields += "|"
		}
		fields += fmt.Sprintf("<p%d> %d", pageID, pageID)
		label := fmt.Sprintf("page %d\\n%d/%d slots", pageID, p.Len(), p.Cap())
		if p.Holes() > 0 {
			label += fmt.Sprintf("\\n%d holes", p.Holes())
		}
		nodelist += fmt.Sprintf("\"page%d\" [label=\"%s\" %s];\n", pageID, label, pageDotStyles(p.Holes() > 0))
		edgelist += fmt.Sprintf("\"table\":p%d -> \"page%d\";\n", pageID, pageID)
	}
	if fields == "" {
		fields = "empty"
	}
	var err error
	write := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write("\trankdir=LR;\n")
	write("\"table\" [shape=record,label=\"%s\"];\n", fields)
	write("%s", nodelist)
	write("%s", edgelist)
	write("}\n")
	if err != nil {
		tracer().Errorf("page table DOT: %s", err.Error())
	}
	return err
}

func pageDotStyles(highlight bool) string {
	s := ",shape=box,style=filled"
	if highlight {
		s += ",fillcolor=\"#FFBB88\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}
