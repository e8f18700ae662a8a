package exchange

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"qualitymap/core/quality"
)

type yamlDocument struct {
	Entries []Record `yaml:"entries"`
}

// WriteYAML writes an "entries:" list
func WriteYAML(w io.Writer, entries []quality.Entry) error {
	doc := yamlDocument{Entries: make([]Record, len(entries))}
	for i, e := range entries {
		doc.Entries[i] = RecordOf(e)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// ReadYAML reads an "entries:" list. Items are decoded one by one so a bad
// item is reported with its own line.
func ReadYAML(r io.Reader, source string) ([]quality.Entry, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	list, err := entriesNode(&root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	if list == nil {
		return nil, nil
	}

	var c collector
	for _, item := range list.Content {
		if key, code := unknownKey(item); key != "" {
			c.malformed(item.Line, code, fmt.Sprintf("unknown key %q", key))
			continue
		}
		var rec Record
		if err := item.Decode(&rec); err != nil {
			c.malformed(item.Line, "", err.Error())
			continue
		}
		c.add(item.Line, rec)
	}
	return c.result(source)
}

// unknownKey returns the first key of a mapping item that Record does not
// carry, with the item's code for the report.
func unknownKey(item *yaml.Node) (key, code string) {
	if item.Kind != yaml.MappingNode {
		return "", ""
	}
	for i := 0; i+1 < len(item.Content); i += 2 {
		switch k := item.Content[i].Value; k {
		case "code":
			code = item.Content[i+1].Value
		case "quality", "description":
		default:
			if key == "" {
				key = k
			}
		}
	}
	return key, code
}

func entriesNode(root *yaml.Node) (*yaml.Node, error) {
	doc := root
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, nil
		}
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping with an entries key", doc.Line)
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value != "entries" {
			continue
		}
		list := doc.Content[i+1]
		switch list.Kind {
		case yaml.SequenceNode:
			return list, nil
		case yaml.ScalarNode:
			if list.Tag == "!!null" {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("line %d: entries must be a list", list.Line)
	}
	return nil, errors.New("missing entries key")
}
