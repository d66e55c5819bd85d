// Package taxonomy loads USAS tag-description trees from YAML.
//
// The source format nests tag codes arbitrarily deep; a node that carries
// both a "title" and a "description" key is a tag, and its other keys are
// child tags. The tree is flattened into a code -> description mapping
// usable as a validation set for the corpus parsers.
package taxonomy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrBadTaxonomy indicates a malformed tag-description tree.
var ErrBadTaxonomy = errors.New("taxonomy: malformed tag tree")

// Descriptions maps a USAS tag code to its formatted "title: <t>
// description: <d>" string.
type Descriptions map[string]string

// Codes returns the tag codes in sorted order, suitable for
// usas.WithTagValidation.
func (d Descriptions) Codes() []string {
	codes := make([]string, 0, len(d))
	for c := range d {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Without returns a copy with the given tag codes removed.
func (d Descriptions) Without(tags ...string) Descriptions {
	drop := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		drop[t] = struct{}{}
	}
	out := make(Descriptions, len(d))
	for c, desc := range d {
		if _, ok := drop[c]; !ok {
			out[c] = desc
		}
	}
	return out
}

// node is one pending tree entry during the flattening walk.
type node struct {
	name string
	data map[string]any
}

// Load reads a YAML tag tree and flattens it. A node with only one of
// "title"/"description", or a tag code flattening to a duplicate, is an
// error. The walk uses an explicit worklist, so arbitrarily deep trees do
// not grow the call stack. The taxonomy is tree-shaped; cycles cannot
// occur in decoded YAML mappings.
func Load(r io.Reader) (Descriptions, error) {
	var root map[string]any
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: decoding YAML: %w", ErrBadTaxonomy, err)
	}

	descriptions := make(Descriptions)
	var work []node
	for name, child := range root {
		childMap, ok := child.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: tag %q is not a mapping", ErrBadTaxonomy, name)
		}
		work = append(work, node{name: name, data: childMap})
	}

	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]

		title, hasTitle := n.data["title"]
		description, hasDescription := n.data["description"]
		switch {
		case hasTitle && hasDescription:
			if _, dup := descriptions[n.name]; dup {
				return nil, fmt.Errorf("%w: duplicate tag %q", ErrBadTaxonomy, n.name)
			}
			formatted := fmt.Sprintf("title: %v description: %v", title, description)
			descriptions[n.name] = strings.TrimSpace(formatted)
		case hasTitle:
			return nil, fmt.Errorf("%w: tag %q has a title but no description", ErrBadTaxonomy, n.name)
		case hasDescription:
			return nil, fmt.Errorf("%w: tag %q has a description but no title", ErrBadTaxonomy, n.name)
		}

		for name, child := range n.data {
			if name == "title" || name == "description" {
				continue
			}
			childMap, ok := child.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: tag %q under %q is not a mapping", ErrBadTaxonomy, name, n.name)
			}
			work = append(work, node{name: name, data: childMap})
		}
	}

	return descriptions, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (Descriptions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening taxonomy: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(bufio.NewReader(f))
}
