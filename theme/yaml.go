package theme

import (
	"fmt"
	"io"

	"github.com/npillmayer/slidetheme/style"
	"gopkg.in/yaml.v3"
)

// LoadYAML reads a theme definition in YAML format and compiles it:
//
//     name: slide-center
//     include: [default]
//     rules:
//       - match: [TitleSlide]
//         set:
//           vertical-align: middle
//           align: center
//           font-size: x-large
//       - match: [Slide, HorizontalRule]
//         delete: true
//
// Properties of a rule are set in the order written down. If the
// definition does not carry a name, fallbackName is used.
func LoadYAML(r io.Reader, fallbackName string) (Theme, error) {
	def, err := ReadDefinition(r)
	if err != nil {
		return Theme{}, err
	}
	if def.Name == "" {
		def.Name = fallbackName
	}
	return def.Compile()
}

// ReadDefinition decodes a YAML theme definition without compiling it.
func ReadDefinition(r io.Reader) (Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		if err == io.EOF {
			return def, fmt.Errorf("%w: empty theme definition", ErrInvalidTheme)
		}
		return def, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	return def, nil
}

// UnmarshalYAML decodes a mapping of property keys to values, keeping
// the order of the keys.
func (props *Properties) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: properties must be a mapping", node.Line)
	}
	list := make(Properties, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: property %q must have a scalar value", k.Line, k.Value)
		}
		list = append(list, style.KeyValue{Key: k.Value, Value: style.Property(v.Value)})
	}
	*props = list
	return nil
}

// MarshalYAML encodes properties as an ordered mapping.
func (props Properties) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, kv := range props {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: kv.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: kv.Value.String()},
		)
	}
	return node, nil
}

// WriteYAML writes a definition in the format read by LoadYAML.
func (def Definition) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return err
	}
	return enc.Close()
}
