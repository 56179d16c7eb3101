package fwdlist

import (
	"fmt"
	"io"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// List2Dot outputs the internal structure of a list in Graphviz DOT format
// (for debugging purposes). Cursors given as arguments are drawn as markers
// pointing to the node following them.
func List2Dot[T any](l *List[T], w io.Writer, cursors ...*Cursor[T]) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\trankdir=LR;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	nodelist += fmt.Sprintf("\"head\" [label=\"len=%d\" %s];\n", l.Len(), nodeDotStyles(false, true))
	prev := "head"
	if l != nil {
		for n := l.head; n != nil; n = n.next {
			ID := ids.alloc(n)
			label := fmt.Sprintf("%v", n.value)
			nodelist += fmt.Sprintf("\"%d\" [label=%q %s];\n", ID, label, nodeDotStyles(false, false))
			edgelist += fmt.Sprintf("\"%s\" -> \"%d\";\n", prev, ID)
			prev = fmt.Sprint(ID)
		}
	}
	nilid := "nil"
	nodelist += fmt.Sprintf("\"%s\" %s;\n", nilid, emptyNode())
	edgelist += fmt.Sprintf("\"%s\" -> \"%s\";\n", prev, nilid)
	for i, c := range cursors {
		if c == nil || c.list != l {
			tracer().Errorf("list DOT: cursor #%d does not belong to list", i)
			continue
		}
		cid := fmt.Sprintf("cursor%d", i)
		nodelist += fmt.Sprintf("\"%s\" [label=\"@%d\" %s];\n", cid, c.position, nodeDotStyles(true, false))
		target := nilid
		if n := *c.slot; n != nil {
			target = fmt.Sprint(ids.find(n))
		}
		edgelist += fmt.Sprintf("\"%s\" -> \"%s\" [style=dashed];\n", cid, target)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles(highlight bool, isHead bool) string {
	s := ",style=filled"
	switch {
	case highlight:
		s += fmt.Sprintf(",fillcolor=\"%s\",shape=cds", hexhlcolors[3])
	case isHead:
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	default:
		s += fmt.Sprintf(",fillcolor=\"%s\",shape=box", hexcolors[1])
	}
	return s
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
