package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// rawFile is a description file as it appears on disk.
type rawFile struct {
	Schema   *rawSchema  `yaml:"schema"`
	Root     *rawRoot    `yaml:"root"`
	Elements rawElements `yaml:"elements"`
}

type rawSchema struct {
	Name    string  `yaml:"name"`
	Version literal `yaml:"version"`
}

type rawRoot struct {
	DisplayName  string            `yaml:"display_name"`
	Version      literal           `yaml:"version"`
	DataWidth    literal           `yaml:"data_width"`
	DefaultReset string            `yaml:"default_reset"`
	Children     []string          `yaml:"children"`
	Links        map[string]string `yaml:"links"`
}

// rawElement is one entry of the elements mapping.
type rawElement struct {
	ID           string            `yaml:"id"`
	Name         string            `yaml:"name"`
	DisplayName  string            `yaml:"display_name"`
	Type         string            `yaml:"type"` // "reg", "blk", "mem", "include"
	Offset       literal           `yaml:"offset"`
	DataWidth    literal           `yaml:"data_width"`
	DefaultReset string            `yaml:"default_reset"`
	Doc          string            `yaml:"doc"`
	Version      literal           `yaml:"version"`
	Children     []string          `yaml:"children"`
	Fields       []rawField        `yaml:"fields"`
	URL          string            `yaml:"url"` // include only
	Links        map[string]string `yaml:"links"`

	key string
}

type rawField struct {
	Name   string    `yaml:"name"`
	LSB    *int      `yaml:"lsb"`
	NBits  *int      `yaml:"nbits"`
	Access string    `yaml:"access"`
	Doc    string    `yaml:"doc"`
	Reset  *rawReset `yaml:"reset"`
	Enum   []rawEnum `yaml:"enum"`
}

type rawEnum struct {
	Name  string  `yaml:"name"`
	Value literal `yaml:"value"`
	Doc   string  `yaml:"doc"`
}

// literal keeps the source text of a scalar so numeric literals such as
// 0x1F or 0b1?0 reach the bits parser unchanged.
type literal struct {
	text string
	set  bool
}

func (l *literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar value", ErrSchema, node.Line)
	}
	l.text = node.Value
	l.set = true
	return nil
}

// rawReset accepts either a bare literal, which applies under the default
// reset state, or a mapping with a value and the reset states it belongs to.
type rawReset struct {
	Value string
	Names []string
}

func (r *rawReset) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		r.Value = node.Value
		return nil
	case yaml.MappingNode:
		var m struct {
			Value  literal  `yaml:"value"`
			Names  []string `yaml:"names"`
			Resets []string `yaml:"resets"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		if !m.Value.set {
			return fmt.Errorf("%w: line %d: reset is missing value", ErrSchema, node.Line)
		}
		r.Value = m.Value.text
		r.Names = append(m.Names, m.Resets...)
		return nil
	default:
		return fmt.Errorf("%w: line %d: reset must be a literal or a mapping", ErrSchema, node.Line)
	}
}

// rawElements decodes the elements mapping in document order.
type rawElements struct {
	list []rawElement
	set  bool
}

func (r *rawElements) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: elements must be a mapping", ErrSchema, node.Line)
	}
	r.set = true
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var e rawElement
		if err := node.Content[i+1].Decode(&e); err != nil {
			return fmt.Errorf("element %q: %w", key, err)
		}
		e.key = key
		r.list = append(r.list, e)
	}
	return nil
}

// parseFile decodes and schema-checks one description.
func parseFile(data []byte) (*rawFile, error) {
	var f rawFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing description: %w", err)
	}
	if err := validateSchema(&f); err != nil {
		return nil, err
	}
	return &f, nil
}
