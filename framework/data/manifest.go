package data

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	o "github.com/mynotes/simple-test-runner/framework/opt"
	"github.com/mynotes/simple-test-runner/framework/quicktest"
)

// InlineDataManifest is the parsed form of an inline data file.
type InlineDataManifest struct {
	Suite   o.Maybe[string]              `json:"suite"`
	Methods map[string][][]ldvalue.Value `json:"methods"`
}

// ParseInlineDataManifest parses a manifest in JSON or YAML format.
func ParseInlineDataManifest(data []byte) (InlineDataManifest, error) {
	var m InlineDataManifest
	if err := ParseJSONOrYAML(data, &m); err != nil {
		return InlineDataManifest{}, fmt.Errorf("invalid inline data: %w", err)
	}
	for _, name := range m.MethodNames() {
		if _, err := m.ArgumentSets(name); err != nil {
			return InlineDataManifest{}, err
		}
	}
	return m, nil
}

// LoadInlineDataFile reads and parses a manifest from the file system.
func LoadInlineDataFile(path string) (InlineDataManifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return InlineDataManifest{}, fmt.Errorf("failed to read %q: %w", path, err)
	}
	m, err := ParseInlineDataManifest(data)
	if err != nil {
		return InlineDataManifest{}, fmt.Errorf("error reading %q: %w", path, err)
	}
	return m, nil
}

// LoadInlineDataFS is the same as LoadInlineDataFile but reads from fsys, such as an embed.FS.
func LoadInlineDataFS(fsys fs.FS, path string) (InlineDataManifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return InlineDataManifest{}, fmt.Errorf("failed to read %q: %w", path, err)
	}
	m, err := ParseInlineDataManifest(data)
	if err != nil {
		return InlineDataManifest{}, fmt.Errorf("error reading %q: %w", path, err)
	}
	return m, nil
}

// MethodNames returns the names of all methods that have data in the manifest, sorted.
func (m InlineDataManifest) MethodNames() []string {
	names := maps.Keys(m.Methods)
	slices.Sort(names)
	return names
}

// ArgumentSets returns the argument sets for a method, in file order.
func (m InlineDataManifest) ArgumentSets(method string) ([]quicktest.ArgumentSet, error) {
	rows := m.Methods[method]
	ret := make([]quicktest.ArgumentSet, 0, len(rows))
	for i, row := range rows {
		args := make(quicktest.ArgumentSet, 0, len(row))
		for j, v := range row {
			value, err := argumentValue(v)
			if err != nil {
				return nil, fmt.Errorf("method %q, argument set #%d, argument %d: %w", method, i+1, j+1, err)
			}
			args = append(args, value)
		}
		ret = append(ret, args)
	}
	return ret, nil
}

// ApplyTo attaches every argument set in the manifest to the method of the same name in the
// suite. If the manifest names a suite, it must be this one.
func ApplyTo[S any](m InlineDataManifest, suite *quicktest.Suite[S]) error {
	if m.Suite.IsDefined() && m.Suite.Value() != suite.Name() {
		return fmt.Errorf("inline data is for suite %q, not %q", m.Suite.Value(), suite.Name())
	}
	for _, name := range m.MethodNames() {
		sets, err := m.ArgumentSets(name)
		if err != nil {
			return err
		}
		suite.WithInlineData(name, sets...)
	}
	return suite.Err()
}

func argumentValue(v ldvalue.Value) (interface{}, error) {
	switch v.Type() {
	case ldvalue.NullType:
		return nil, nil
	case ldvalue.BoolType:
		return v.BoolValue(), nil
	case ldvalue.NumberType:
		if v.IsInt() {
			return v.IntValue(), nil
		}
		return v.Float64Value(), nil
	case ldvalue.StringType:
		return v.StringValue(), nil
	default:
		return nil, fmt.Errorf("unsupported value %s; only numbers, strings, booleans and null are allowed", v.JSONString())
	}
}
