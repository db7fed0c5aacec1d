/*
Package deckdbg implements helpers to debug a themed slide deck.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package deckdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/slidetheme/deck"
	"github.com/npillmayer/slidetheme/style"
	tp "github.com/xlab/treeprint"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGAlignment,
	style.PGFont,
	style.PGDisplay,
}

// ToGraphViz outputs a diagram for a slide deck. The diagram is in
// GraphViz (DOT) format. Clients have to provide the document, a Writer,
// and an optional list of style parameter groups. The diagram will
// include all locally set styles belonging to one of the parameter groups.
// Deleted elements are drawn with a dashed outline.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Alignment
//     - Font
//     - Display
//
func ToGraphViz(doc *deck.Document, w io.Writer, styleGroups []string) {
	tmpl, err := template.New("deck").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("decknode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(deckNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("deckedge").Parse(deckEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	err = tmpl.Execute(w, gparams)
	if err != nil {
		panic(err)
	}
	dict := make(map[*deck.Element]string, 256)
	nodes(doc.Root(), w, dict, &gparams)
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a document and a testing.T, it will
// create a Graphiviz image of the deck and write it to a file in the
// current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(doc *deck.Document, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "deck.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing deck digraph to %s\n", tmpfile.Name())
	ToGraphViz(doc, tmpfile, nil)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing deck image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// Print returns an indented textual outline of a document, one line per
// element, listing locally set properties. Deleted elements are marked
// with a ✗.
func Print(doc *deck.Document) string {
	p := tp.New()
	p.SetValue(label(doc.Root()))
	for _, ch := range doc.Root().Children() {
		ppt(p, ch)
	}
	return p.String()
}

func ppt(p tp.Tree, e *deck.Element) {
	children := e.Children()
	if len(children) == 0 {
		p.AddNode(label(e))
		return
	}
	branch := p.AddBranch(label(e))
	for _, ch := range children {
		ppt(branch, ch)
	}
}

func label(e *deck.Element) string {
	var b strings.Builder
	b.WriteString(string(e.Kind().Name()))
	if e.Text() != "" {
		fmt.Fprintf(&b, " %q", e.Text())
	}
	if e.IsDeleted() {
		b.WriteString(" ✗")
	}
	if props := e.Styles().AsMap(); len(props) > 0 {
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		kvs := make([]string, len(keys))
		for i, k := range keys {
			kvs[i] = k + "=" + props[k]
		}
		fmt.Fprintf(&b, " {%s}", strings.Join(kvs, " "))
	}
	return b.String()
}

type node struct {
	E    *deck.Element
	Name string
}

func nodes(e *deck.Element, w io.Writer, dict map[*deck.Element]string, gparams *graphParamsType) {
	deckNode(e, w, dict, gparams)
	for _, ch := range e.Children() {
		nodes(ch, w, dict, gparams)
		deckEdge(e, ch, w, dict, gparams)
	}
}

func deckNode(e *deck.Element, w io.Writer, dict map[*deck.Element]string, gparams *graphParamsType) {
	name := dict[e]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[e] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{e, name}); err != nil {
		panic(err)
	}
	deckStyles(e, w, dict, gparams)
}

func deckStyles(e *deck.Element, w io.Writer, dict map[*deck.Element]string, gparams *graphParamsType) {
	pmap := e.Styles()
	var prev *style.PropertyGroup
	for _, s := range gparams.StyleGroups {
		pg := pmap.Group(s)
		if pg != nil {
			if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
				panic(err)
			}
			if prev == nil {
				pgEdge(e, pg, w, dict, gparams)
			} else {
				pgpgEdge(prev, pg, w, dict, gparams)
			}
			prev = pg
		}
	}
}

type edge struct {
	N1, N2 node
}

func deckEdge(e1 *deck.Element, e2 *deck.Element, w io.Writer, dict map[*deck.Element]string,
	gparams *graphParamsType) {
	//
	e := edge{node{e1, dict[e1]}, node{e2, dict[e2]}}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

func pgEdge(e *deck.Element, pg *style.PropertyGroup, w io.Writer, dict map[*deck.Element]string,
	gparams *graphParamsType) {
	//
	if err := gparams.PgedgeTmpl.Execute(w, pgedge{dict[e], pg}); err != nil {
		panic(err)
	}
}

func pgpgEdge(pg1 *style.PropertyGroup, pg2 *style.PropertyGroup, w io.Writer,
	dict map[*deck.Element]string, gparams *graphParamsType) {
	//
	if err := gparams.PgpgTmpl.Execute(w, []*style.PropertyGroup{pg1, pg2}); err != nil {
		panic(err)
	}
}

func shortText(e *deck.Element) string {
	s := e.Text()
	if len([]rune(s)) > 10 {
		s = string([]rune(s)[:10]) + "..."
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	s = strings.Replace(s, `"`, `\"`, -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const deckNodeTmpl = `{{ if .E.IsDeleted }}
{{ .Name }}	[ label="{{ .E.Kind.Name }}\n{{ shortstring .E }}" shape=ellipse style=dashed ] ;
{{ else }}
{{ .Name }}	[ label="{{ .E.Kind.Name }}\n{{ shortstring .E }}" shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const deckEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
