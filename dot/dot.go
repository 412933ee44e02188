/*
Package dot renders grown trees as Graphviz DOT documents, to be laid
out and drawn by an external graph-rendering engine.
*/
package dot

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sproutml/sprout/tree"
)

/*
Options holds the display toggles for a rendered tree: whether node
boxes have rounded corners and whether each node shows its sample
count, its class distribution and its majority label.
*/
type Options struct {
	Rounded          bool
	ShowSamples      bool
	ShowDistribution bool
	ShowLabel        bool
}

/*
Write takes an io.Writer, a pointer to a tree.Tree and rendering
options and writes a DOT digraph describing the tree onto the
io.Writer: one named node per tree node with its label text, and one
directed edge per parent-child relationship labeled with the child's
incoming feature-value condition. It returns an error if the tree has
not been grown or the document cannot be written.
*/
func Write(w io.Writer, t *tree.Tree, opts Options) error {
	if t == nil || t.Root == nil {
		return tree.ErrNotGrown
	}
	var b strings.Builder
	b.WriteString("digraph \"decision tree\" {\n")
	if opts.Rounded {
		b.WriteString("\tnode [shape=box style=rounded];\n")
	} else {
		b.WriteString("\tnode [shape=box];\n")
	}
	var counter int
	addNode(&b, t.Root, "", &counter, opts)
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

/*
WriteFile takes a filepath string, a pointer to a tree.Tree and
rendering options and uses Write to write the DOT document for the
tree to a file at the given filepath, creating it or truncating it
as needed.
*/
func WriteFile(filepath string, t *tree.Tree, opts Options) error {
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("writing dot file %s: %v", filepath, err)
	}
	defer f.Close()
	err = Write(f, t, opts)
	if err != nil {
		return fmt.Errorf("writing dot file %s: %v", filepath, err)
	}
	return nil
}

func addNode(b *strings.Builder, n *tree.Node, parentName string, counter *int, opts Options) {
	*counter++
	name := fmt.Sprintf("node%d", *counter)
	var content []string
	if n.SplitFeature != "" {
		content = append(content, escape(n.SplitFeature))
	}
	if opts.ShowSamples {
		content = append(content, fmt.Sprintf("samples = %d", n.Samples))
	}
	if opts.ShowDistribution {
		content = append(content, fmt.Sprintf("distribution: %v", n.Distribution))
	}
	if opts.ShowLabel {
		content = append(content, fmt.Sprintf("label = %s", escape(n.Label)))
	}
	fmt.Fprintf(b, "\t%s [label=\"%s\"];\n", name, strings.Join(content, "\\n"))
	if parentName != "" {
		fmt.Fprintf(b, "\t%s -> %s [label=\"%s\"];\n", parentName, name, escape(n.FeatureValue()))
	}
	for _, child := range n.Childs {
		addNode(b, child, name, counter, opts)
	}
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	return strings.ReplaceAll(s, "\"", "\\\"")
}
