package schema

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is wrapped by every catalog validation error.
var ErrInvalidCatalog = errors.New("schema: invalid catalog")

// CatalogInfo is the API metadata of a catalog.
type CatalogInfo struct {
	Title       string `yaml:"title"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// Definition is a named schema of a catalog.
type Definition struct {
	Name   string
	Schema Schema
}

// Input structures of a contract.
const (
	InputCompact  = "compact"
	InputDetailed = "detailed"
)

// Contract describes one API operation.
type Contract struct {
	Name           string
	Method         string
	Path           string
	Summary        string
	Description    string
	Tags           []string
	Deprecated     bool
	InputStructure string
	SuccessStatus  int
	Input          *Schema
	Output         *Schema
}

// Catalog is a set of named schemas and the contracts using them.
type Catalog struct {
	Info        CatalogInfo
	Definitions []Definition
	Contracts   []Contract
}

// Definition returns the schema named name.
func (c *Catalog) Definition(name string) (Schema, bool) {
	for _, d := range c.Definitions {
		if d.Name == name {
			return d.Schema, true
		}
	}
	return Schema{}, false
}

// LoadFile reads a catalog from a YAML or JSON file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open catalog")
	}
	defer f.Close()

	catalog, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return catalog, nil
}

type catalogFile struct {
	Info        CatalogInfo           `yaml:"info"`
	Definitions ordered[nodeSpec]     `yaml:"definitions"`
	Contracts   ordered[contractSpec] `yaml:"contracts"`
}

type contractSpec struct {
	Method         string    `yaml:"method"`
	Path           string    `yaml:"path"`
	Summary        string    `yaml:"summary"`
	Description    string    `yaml:"description"`
	Tags           []string  `yaml:"tags"`
	Deprecated     bool      `yaml:"deprecated"`
	InputStructure string    `yaml:"inputStructure"`
	SuccessStatus  int       `yaml:"successStatus"`
	Input          *nodeSpec `yaml:"input"`
	Output         *nodeSpec `yaml:"output"`
}

type nodeSpec struct {
	Kind           string            `yaml:"kind"`
	Title          string            `yaml:"title"`
	Description    string            `yaml:"description"`
	Examples       []any             `yaml:"examples"`
	Identifier     string            `yaml:"identifier"`
	JSONSchema     map[string]any    `yaml:"jsonSchema"`
	Checks         []checkSpec       `yaml:"checks"`
	Nullable       bool              `yaml:"nullable"`
	Optional       bool              `yaml:"optional"`
	Exact          bool              `yaml:"exact"`
	Ref            string            `yaml:"ref"`
	Values         []any             `yaml:"values"`
	Encoding       string            `yaml:"encoding"`
	Properties     ordered[nodeSpec] `yaml:"properties"`
	Key            *nodeSpec         `yaml:"key"`
	Value          *nodeSpec         `yaml:"value"`
	Items          *nodeSpec         `yaml:"items"`
	Elements       []nodeSpec        `yaml:"elements"`
	Rest           *nodeSpec         `yaml:"rest"`
	Members        []nodeSpec        `yaml:"members"`
	From           *nodeSpec         `yaml:"from"`
	To             *nodeSpec         `yaml:"to"`
	TypeParameters []nodeSpec        `yaml:"typeParameters"`
}

// named is one entry of a YAML mapping whose order matters.
type named[T any] struct {
	Name  string
	Value T
}

// ordered decodes a YAML mapping keeping key order.
type ordered[T any] []named[T]

func (o *ordered[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*o = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return errors.Errorf("line %d: expected a mapping", node.Line)
	}
	out := make(ordered[T], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var v T
		if err := node.Content[i+1].Decode(&v); err != nil {
			return errors.Wrapf(err, "key %q", node.Content[i].Value)
		}
		out = append(out, named[T]{Name: node.Content[i].Value, Value: v})
	}
	*o = out
	return nil
}

// checkSpec is either a bare check name ("int") or a single-key mapping
// from name to argument ({minLength: 1}, {between: [1, 10]}).
type checkSpec struct {
	Name string
	Args []any
}

func (c *checkSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		c.Name = node.Value
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return errors.Errorf("line %d: a check mapping needs exactly one key", node.Line)
		}
		c.Name = node.Content[0].Value
		arg := node.Content[1]
		if arg.Kind == yaml.SequenceNode {
			return arg.Decode(&c.Args)
		}
		var v any
		if err := arg.Decode(&v); err != nil {
			return err
		}
		c.Args = []any{v}
		return nil
	}
	return errors.Errorf("line %d: invalid check", node.Line)
}

func (c checkSpec) check() (Check, error) {
	switch c.Name {
	case "int":
		return Int(), nil
	case "positive":
		return Positive(), nil
	case "nonNegative":
		return NonNegative(), nil
	case "nonEmptyString":
		return NonEmptyString(), nil
	case "pattern":
		if len(c.Args) != 1 {
			return Check{}, c.arity(1)
		}
		expr, ok := c.Args[0].(string)
		if !ok {
			return Check{}, errors.Wrapf(ErrInvalidCatalog, "%s: expected a string argument", c.Name)
		}
		return Pattern(expr), nil
	case "between":
		if len(c.Args) != 2 {
			return Check{}, c.arity(2)
		}
		lo, err := c.number(0)
		if err != nil {
			return Check{}, err
		}
		hi, err := c.number(1)
		if err != nil {
			return Check{}, err
		}
		return Between(lo, hi), nil
	}

	numeric := map[string]func(float64) Check{
		"greaterThan":          GreaterThan,
		"greaterThanOrEqualTo": GreaterThanOrEqualTo,
		"lessThan":             LessThan,
		"lessThanOrEqualTo":    LessThanOrEqualTo,
		"multipleOf":           MultipleOf,
	}
	counts := map[string]func(int) Check{
		"minLength":  MinLength,
		"maxLength":  MaxLength,
		"minItems":   MinItems,
		"maxItems":   MaxItems,
		"itemsCount": ItemsCount,
	}

	if f, ok := numeric[c.Name]; ok {
		if len(c.Args) != 1 {
			return Check{}, c.arity(1)
		}
		n, err := c.number(0)
		if err != nil {
			return Check{}, err
		}
		return f(n), nil
	}
	if f, ok := counts[c.Name]; ok {
		if len(c.Args) != 1 {
			return Check{}, c.arity(1)
		}
		n, err := c.number(0)
		if err != nil {
			return Check{}, err
		}
		if n < 0 || n != float64(int(n)) {
			return Check{}, errors.Wrapf(ErrInvalidCatalog, "%s: expected a non-negative integer, got %v", c.Name, c.Args[0])
		}
		return f(int(n)), nil
	}
	return Check{}, errors.Wrapf(ErrInvalidCatalog, "unknown check %q", c.Name)
}

func (c checkSpec) arity(n int) error {
	return errors.Wrapf(ErrInvalidCatalog, "%s: expected %d argument(s), got %d", c.Name, n, len(c.Args))
}

func (c checkSpec) number(i int) (float64, error) {
	switch v := c.Args[i].(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return 0, errors.Wrapf(ErrInvalidCatalog, "%s: expected a number, got %v", c.Name, c.Args[i])
}

// Load reads a catalog from YAML (or JSON) data. References between
// definitions resolve lazily, so definitions may refer to themselves.
func Load(r io.Reader) (*Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrInvalidCatalog, "empty document")
		}
		return nil, errors.Wrap(err, "decode catalog")
	}

	l := &loader{defs: make(map[string]Schema, len(file.Definitions))}
	for _, def := range file.Definitions {
		if _, dup := l.defs[def.Name]; dup {
			return nil, errors.Wrapf(ErrInvalidCatalog, "duplicate definition %q", def.Name)
		}
		l.defs[def.Name] = Schema{}
	}

	catalog := &Catalog{Info: file.Info}
	for _, def := range file.Definitions {
		s, err := l.build(def.Value, "definitions."+def.Name)
		if err != nil {
			return nil, err
		}
		if _, ok := IdentifierOf(s); !ok {
			s = s.Identifier(def.Name)
		}
		l.defs[def.Name] = s
		catalog.Definitions = append(catalog.Definitions, Definition{Name: def.Name, Schema: s})
	}

	for _, c := range file.Contracts {
		contract, err := l.contract(c.Name, c.Value)
		if err != nil {
			return nil, err
		}
		catalog.Contracts = append(catalog.Contracts, contract)
	}
	return catalog, nil
}

type loader struct {
	defs map[string]Schema
}

func (l *loader) contract(name string, spec contractSpec) (Contract, error) {
	path := "contracts." + name
	if spec.Path == "" {
		return Contract{}, errors.Wrapf(ErrInvalidCatalog, "%s: missing path", path)
	}

	c := Contract{
		Name:           name,
		Method:         strings.ToUpper(spec.Method),
		Path:           spec.Path,
		Summary:        spec.Summary,
		Description:    spec.Description,
		Tags:           spec.Tags,
		Deprecated:     spec.Deprecated,
		InputStructure: spec.InputStructure,
		SuccessStatus:  spec.SuccessStatus,
	}
	if c.Method == "" {
		c.Method = "GET"
	}
	switch c.InputStructure {
	case "":
		c.InputStructure = InputCompact
	case InputCompact, InputDetailed:
	default:
		return Contract{}, errors.Wrapf(ErrInvalidCatalog, "%s: unknown input structure %q", path, spec.InputStructure)
	}

	if spec.Input != nil {
		s, err := l.build(*spec.Input, path+".input")
		if err != nil {
			return Contract{}, err
		}
		c.Input = &s
	}
	if spec.Output != nil {
		s, err := l.build(*spec.Output, path+".output")
		if err != nil {
			return Contract{}, err
		}
		c.Output = &s
	}
	return c, nil
}

// build turns a node description into a schema. path names the node in
// error messages.
func (l *loader) build(spec nodeSpec, path string) (Schema, error) {
	s, err := l.buildKind(spec, path)
	if err != nil {
		return Schema{}, err
	}

	for i, c := range spec.Checks {
		check, err := c.check()
		if err != nil {
			return Schema{}, errors.Wrapf(err, "%s.checks[%d]", path, i)
		}
		s = s.Pipe(check)
	}

	if spec.JSONSchema != nil {
		s = s.JSONSchema(spec.JSONSchema)
	}
	if spec.Identifier != "" {
		s = s.Identifier(spec.Identifier)
	}
	if spec.Title != "" {
		s = s.Title(spec.Title)
	}
	if spec.Description != "" {
		s = s.Description(spec.Description)
	}
	if spec.Examples != nil {
		s = s.Examples(spec.Examples...)
	}
	if spec.Nullable {
		s = NullOr(s)
	}
	return s, nil
}

func (l *loader) buildKind(spec nodeSpec, path string) (Schema, error) {
	switch spec.Kind {
	case "string":
		return String, nil
	case "number":
		return Number, nil
	case "integer":
		return Number.Pipe(Int()), nil
	case "boolean":
		return Boolean, nil
	case "void":
		return Void, nil
	case "undefined":
		return Undefined, nil
	case "null":
		return Null, nil
	case "literal", "enum":
		if len(spec.Values) == 0 {
			return Schema{}, errors.Wrapf(ErrInvalidCatalog, "%s: %s needs values", path, spec.Kind)
		}
		return Literal(spec.Values...), nil
	case "struct":
		props := make([]Property, 0, len(spec.Properties))
		for _, p := range spec.Properties {
			s, err := l.build(p.Value, path+".properties."+p.Name)
			if err != nil {
				return Schema{}, err
			}
			switch {
			case p.Value.Optional && p.Value.Exact:
				props = append(props, OptionalExact(p.Name, s))
			case p.Value.Optional:
				props = append(props, Optional(p.Name, s))
			default:
				props = append(props, Field(p.Name, s))
			}
		}
		return Struct(props...), nil
	case "record":
		key := String
		if spec.Key != nil {
			k, err := l.build(*spec.Key, path+".key")
			if err != nil {
				return Schema{}, err
			}
			key = k
		}
		value, err := l.required(spec.Value, path+".value")
		if err != nil {
			return Schema{}, err
		}
		return Record(key, value), nil
	case "array", "nonEmptyArray":
		item, err := l.required(spec.Items, path+".items")
		if err != nil {
			return Schema{}, err
		}
		if spec.Kind == "nonEmptyArray" {
			return NonEmptyArray(item), nil
		}
		return Array(item), nil
	case "tuple":
		elements := make([]TupleElement, 0, len(spec.Elements))
		for i, el := range spec.Elements {
			s, err := l.build(el, path+".elements["+strconv.Itoa(i)+"]")
			if err != nil {
				return Schema{}, err
			}
			if el.Optional {
				elements = append(elements, OptionalElement(s))
			} else {
				elements = append(elements, Element(s))
			}
		}
		if spec.Rest != nil {
			rest, err := l.build(*spec.Rest, path+".rest")
			if err != nil {
				return Schema{}, err
			}
			return TupleWithRest(rest, elements...), nil
		}
		return Tuple(elements...), nil
	case "union":
		if len(spec.Members) == 0 {
			return Schema{}, errors.Wrapf(ErrInvalidCatalog, "%s: union needs members", path)
		}
		members := make([]Schema, 0, len(spec.Members))
		for i, m := range spec.Members {
			s, err := l.build(m, path+".members["+strconv.Itoa(i)+"]")
			if err != nil {
				return Schema{}, err
			}
			members = append(members, s)
		}
		return Union(members...), nil
	case "ref":
		name := spec.Ref
		if _, ok := l.defs[name]; !ok {
			return Schema{}, errors.Wrapf(ErrInvalidCatalog, "%s: unknown definition %q", path, name)
		}
		return Suspend(func() Schema { return l.defs[name] }), nil
	case "datetime":
		switch spec.Encoding {
		case "", "millis":
			return Timestamp, nil
		case "number":
			return DateTimeUtcFromNumber, nil
		case "string":
			return DateTimeUtcFromString, nil
		case "any":
			return DateTime, nil
		}
		return Schema{}, errors.Wrapf(ErrInvalidCatalog, "%s: unknown datetime encoding %q", path, spec.Encoding)
	case "declaration":
		params := make([]Schema, 0, len(spec.TypeParameters))
		for i, p := range spec.TypeParameters {
			s, err := l.build(p, path+".typeParameters["+strconv.Itoa(i)+"]")
			if err != nil {
				return Schema{}, err
			}
			params = append(params, s)
		}
		return Declare(params...), nil
	case "transformation":
		from, err := l.required(spec.From, path+".from")
		if err != nil {
			return Schema{}, err
		}
		to, err := l.required(spec.To, path+".to")
		if err != nil {
			return Schema{}, err
		}
		return Transform(from, to), nil
	case "":
		return Schema{}, errors.Wrapf(ErrInvalidCatalog, "%s: missing kind", path)
	}
	return Schema{}, errors.Wrapf(ErrInvalidCatalog, "%s: unknown kind %q", path, spec.Kind)
}

func (l *loader) required(spec *nodeSpec, path string) (Schema, error) {
	if spec == nil {
		return Schema{}, errors.Wrapf(ErrInvalidCatalog, "%s: missing", path)
	}
	return l.build(*spec, path)
}
