// Package export renders the item graph of a file as JSON or YAML.
package export

import (
	"encoding/json"

	"github.com/ghodss/yaml"

	"github.com/boynton/step"
)

type Document struct {
	Header  Header   `json:"header"`
	Schemas []string `json:"schemas"`
	Items   []*Node  `json:"items"`
}

type Header struct {
	Description         string `json:"description,omitempty"`
	ImplementationLevel string `json:"implementationLevel,omitempty"`
	Name                string `json:"name,omitempty"`
	Timestamp           string `json:"timestamp,omitempty"`
	Author              string `json:"author,omitempty"`
	Organization        string `json:"organization,omitempty"`
	PreprocessorVersion string `json:"preprocessorVersion,omitempty"`
	OriginatingSystem   string `json:"originatingSystem,omitempty"`
	Authorization       string `json:"authorization,omitempty"`
}

// Node is one item. ID matches the #id the item gets when the file is saved
// by reference.
type Node struct {
	ID         int    `json:"id"`
	Keyword    string `json:"keyword"`
	Name       string `json:"name,omitempty"`
	TopLevel   bool   `json:"topLevel"`
	References []int  `json:"references,omitempty"`
}

func Graph(f *step.File) *Document {
	doc := &Document{
		Header: Header{
			Description:         f.Description,
			ImplementationLevel: f.ImplementationLevel,
			Name:                f.Name,
			Timestamp:           step.FormatTimestamp(f.Timestamp),
			Author:              f.Author,
			Organization:        f.Organization,
			PreprocessorVersion: f.PreprocessorVersion,
			OriginatingSystem:   f.OriginatingSystem,
			Authorization:       f.Authorization,
		},
		Schemas: append(f.Schemas.Names(), f.UnsupportedSchemas...),
		Items:   []*Node{},
	}
	if doc.Schemas == nil {
		doc.Schemas = []string{}
	}
	ordered := f.OrderedItems()
	ids := make(map[step.Item]int, len(ordered))
	for i, item := range ordered {
		ids[item] = i + 1
	}
	top := make(map[step.Item]bool)
	for _, item := range f.TopLevelItems() {
		top[item] = true
	}
	for _, item := range ordered {
		node := &Node{
			ID:       ids[item],
			Keyword:  item.Keyword(),
			Name:     item.Name(),
			TopLevel: top[item],
		}
		for _, child := range item.ReferencedItems() {
			node.References = append(node.References, ids[child])
		}
		doc.Items = append(doc.Items, node)
	}
	return doc
}

func JSON(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

func YAML(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}
