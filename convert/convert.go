// Package convert bridges TOON syntax trees and plain Go values, and
// through them JSON and YAML.
package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/toon-format/go-toon/ast"
)

var ErrShape = errors.New("unconvertible document shape")

// ToAny lowers a document (or block) to nested plain values: pairs
// become string entries, blocks become maps, simple arrays become []any
// of strings and structured arrays become one map per row, cells keyed
// positionally by field name. Extra cells with no matching field are
// dropped.
func ToAny(doc *ast.Node) any {
	m := map[string]any{}
	for _, c := range doc.Children {
		switch c.Kind {
		case ast.KeyValueKind:
			m[c.Key] = c.Value
		case ast.BlockKind:
			m[c.Key] = ToAny(c)
		case ast.SimpleArrayKind:
			vals := make([]any, len(c.Values))
			for i, v := range c.Values {
				vals[i] = v.Value
			}
			m[c.Name] = vals
		case ast.StructuredArrayKind:
			rows := make([]any, len(c.Rows))
			for i, row := range c.Rows {
				rm := map[string]any{}
				for j, cell := range row.Values {
					if j >= len(c.Fields) {
						break
					}
					rm[c.Fields[j].Name] = cell.Value
				}
				rows[i] = rm
			}
			m[c.Name] = rows
		}
	}
	return m
}

// FromAny lifts nested plain values into a canonical document tree. Maps
// become blocks, homogeneous arrays of maps become structured arrays,
// other arrays become simple arrays, everything else becomes a pair.
// Declared sizes are the actual lengths; the resulting nodes carry no
// source ranges.
func FromAny(v any) (*ast.Node, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is %T, need a map", ErrShape, v)
	}
	children, err := entries(m)
	if err != nil {
		return nil, err
	}
	return ast.FromNodes(children...), nil
}

func entries(m map[string]any) ([]*ast.Node, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var res []*ast.Node
	for _, k := range keys {
		n, err := entry(k, m[k])
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

func entry(key string, v any) (*ast.Node, error) {
	switch x := v.(type) {
	case map[string]any:
		if len(x) == 0 {
			return ast.FromKeyValue(key, ""), nil
		}
		children, err := entries(x)
		if err != nil {
			return nil, err
		}
		return ast.FromBlock(key, children...), nil
	case []any:
		return arrayEntry(key, x)
	default:
		return ast.FromKeyValue(key, scalar(v)), nil
	}
}

func arrayEntry(key string, vals []any) (*ast.Node, error) {
	rows := make([]map[string]any, 0, len(vals))
	for _, v := range vals {
		m, ok := v.(map[string]any)
		if !ok {
			rows = nil
			break
		}
		rows = append(rows, m)
	}
	if len(rows) == len(vals) && len(rows) > 0 {
		fields := make([]string, 0, len(rows[0]))
		for f := range rows[0] {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		cells := make([][]string, len(rows))
		for i, row := range rows {
			cells[i] = make([]string, len(fields))
			for j, f := range fields {
				cells[i][j] = scalar(row[f])
			}
		}
		return ast.FromStructuredArray(key, fields, cells...), nil
	}
	flat := make([]string, len(vals))
	for i, v := range vals {
		flat[i] = scalar(v)
	}
	return ast.FromSimpleArray(key, flat...), nil
}

func scalar(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func ToJSON(doc *ast.Node) ([]byte, error) {
	return json.MarshalIndent(ToAny(doc), "", "  ")
}

func FromJSON(d []byte) (*ast.Node, error) {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("error decoding json: %w", err)
	}
	return FromAny(v)
}

func ToYAML(doc *ast.Node) ([]byte, error) {
	return yaml.Marshal(ToAny(doc))
}

func FromYAML(d []byte) (*ast.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("error decoding yaml: %w", err)
	}
	return FromAny(v)
}
