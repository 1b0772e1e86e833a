package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Dict is a string-keyed map that preserves insertion order through
// both YAML and JSON encoding. The inventory document's key order is
// part of its contract (hosts appear in provisioning order), so plain
// Go maps are not usable here.
type Dict struct {
	keys   []string
	values map[string]interface{}
}

// NewDict creates an empty ordered map.
func NewDict() *Dict {
	return &Dict{values: make(map[string]interface{})}
}

// Set inserts or replaces a key. Insertion order is kept on first
// insert; replacing a value does not move the key. Returns the Dict
// for chaining.
func (d *Dict) Set(key string, value interface{}) *Dict {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return d
}

// Get returns the value for key and whether it is present.
func (d *Dict) Get(key string) (interface{}, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Dict) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	return d.keys
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return len(d.keys)
}

// MarshalYAML encodes the Dict as a mapping node so the emitted keys
// follow insertion order.
func (d *Dict) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range d.keys {
		keyNode := &yaml.Node{}
		keyNode.SetString(k)
		valNode := &yaml.Node{}
		if err := valNode.Encode(d.values[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// UnmarshalYAML decodes a mapping node, keeping document order and
// decoding nested mappings as Dicts.
func (d *Dict) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping node, got kind %d", node.Kind)
	}
	d.keys = nil
	d.values = make(map[string]interface{})
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		valNode := node.Content[i+1]
		if valNode.Kind == yaml.MappingNode {
			sub := NewDict()
			if err := valNode.Decode(sub); err != nil {
				return err
			}
			d.Set(key, sub)
			continue
		}
		var val interface{}
		if err := valNode.Decode(&val); err != nil {
			return err
		}
		d.Set(key, val)
	}
	return nil
}

// MarshalJSON encodes the Dict as a JSON object in insertion order.
func (d *Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')
		valBytes, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(valBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Group is one named host group: its hosts and its group-level vars.
type Group struct {
	Hosts *Dict `yaml:"hosts" json:"hosts"`
	Vars  *Dict `yaml:"vars" json:"vars"`
}

// AllGroup is the root "all" group: global vars plus child groups.
type AllGroup struct {
	Vars     *Dict `yaml:"vars" json:"vars"`
	Children *Dict `yaml:"children" json:"children"`
}

// Inventory is the full document. Rebuilt from scratch on every run;
// never merged with a prior inventory.
type Inventory struct {
	All *AllGroup `yaml:"all" json:"all"`
}

// Group returns the named child group, or nil when missing or not a
// group.
func (inv *Inventory) Group(name string) *Group {
	if inv == nil || inv.All == nil || inv.All.Children == nil {
		return nil
	}
	v, ok := inv.All.Children.Get(name)
	if !ok {
		return nil
	}
	g, _ := v.(*Group)
	return g
}

// Webservers returns the webservers group, or nil.
func (inv *Inventory) Webservers() *Group {
	return inv.Group("webservers")
}
