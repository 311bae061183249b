// Package docload decodes YAML or JSON documents into host values: mappings
// become map[string]any (or *objectutil.KeyedMap when ordered), sequences
// []any, timestamps time.Time and null nil.
package docload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/reoring/objectutil"
	"github.com/reoring/objectutil/internal/jsonify"
)

// ErrNoDocument is returned when the input holds no YAML document.
var ErrNoDocument = errors.New("docload: no document in input")

// DuplicatePolicy controls how a mapping key seen twice is handled.
type DuplicatePolicy int

const (
	// DupIgnore keeps the last value.
	DupIgnore DuplicatePolicy = iota
	// DupWarn keeps the last value and reports the key through Options.Warn.
	DupWarn
	// DupError fails the load with a *DuplicateKeyError.
	DupError
)

// ParseDuplicatePolicy maps "ignore", "warn" and "error" to a policy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "ignore", "":
		return DupIgnore, nil
	case "warn":
		return DupWarn, nil
	case "error":
		return DupError, nil
	default:
		return DupIgnore, fmt.Errorf("docload: unknown duplicate key policy %q", s)
	}
}

// DuplicateKeyError reports a mapping key defined twice.
type DuplicateKeyError struct {
	Path string // JSON Pointer of the duplicated key
	Line int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("docload: line %d: duplicate key at %s", e.Line, e.Path)
}

// Options controls decoding.
type Options struct {
	// Ordered decodes mappings into *objectutil.KeyedMap, keeping key order.
	Ordered bool
	// OnDuplicateKey selects the duplicate key policy.
	OnDuplicateKey DuplicatePolicy
	// Warn receives duplicate keys under DupWarn.
	Warn func(err *DuplicateKeyError)
}

// Load decodes the first document read from r.
func Load(r io.Reader, opt Options) (any, error) {
	dec := yaml.NewDecoder(r)
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoDocument
		}
		return nil, err
	}
	return convert(&root, opt, nil)
}

// LoadFile decodes the first document of the named file; "-" reads stdin.
func LoadFile(name string, opt Options) (any, error) {
	if name == "-" {
		return Load(os.Stdin, opt)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	v, err := Load(f, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func convert(n *yaml.Node, opt Options, path []string) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return convert(n.Content[0], opt, path)
	case yaml.AliasNode:
		return convert(n.Alias, opt, path)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := convert(c, opt, append(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		return convertMapping(n, opt, path)
	case yaml.ScalarNode:
		return convertScalar(n)
	default:
		return nil, fmt.Errorf("docload: line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func convertMapping(n *yaml.Node, opt Options, path []string) (any, error) {
	var (
		ordered *objectutil.KeyedMap
		plain   map[string]any
	)
	if opt.Ordered {
		ordered = objectutil.NewKeyedMap()
	} else {
		plain = make(map[string]any, len(n.Content)/2)
	}
	seen := make(map[string]struct{}, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		if kn.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("docload: line %d: mapping keys must be scalars", kn.Line)
		}
		keyPath := append(path, kn.Value)
		if _, dup := seen[kn.Value]; dup {
			derr := &DuplicateKeyError{Path: jsonify.Pointer(keyPath), Line: kn.Line}
			switch opt.OnDuplicateKey {
			case DupError:
				return nil, derr
			case DupWarn:
				if opt.Warn != nil {
					opt.Warn(derr)
				}
			}
		}
		seen[kn.Value] = struct{}{}
		v, err := convert(vn, opt, keyPath)
		if err != nil {
			return nil, err
		}
		if ordered != nil {
			ordered.Set(kn.Value, v)
		} else {
			plain[kn.Value] = v
		}
	}
	if ordered != nil {
		return ordered, nil
	}
	return plain, nil
}

func convertScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return nil, fmt.Errorf("docload: line %d: %w", n.Line, err)
		}
		return t, nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("docload: line %d: %w", n.Line, err)
	}
	return v, nil
}
