package wsadmin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var ErrMalformedAttributes = errors.New("malformed attribute list")

// Value is either a scalar or a nested list of values.
type Value struct {
	Scalar string
	List   []Value
	IsList bool
}

// Attribute is one [name value...] entry of AdminConfig.show output.
type Attribute struct {
	Name  string
	Value Value
}

// document is the raw parse tree: a sequence of words, quoted strings and
// bracketed lists.
type document struct {
	Nodes []*node `parser:"@@*"`
}

type node struct {
	Quoted *string `parser:"( @String"`
	Word   *string `parser:"| @Word"`
	Open   bool    `parser:"| ( @\"[\""`
	Items  []*node `parser:"@@* \"]\" ) )"`
}

var attributeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\.|[^"])*"`},
	{Name: "Punct", Pattern: `[\[\]]`},
	{Name: "Word", Pattern: `[^\s\[\]"]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var attributeParser = participle.MustBuild[document](
	participle.Lexer(attributeLexer),
	participle.Elide("Whitespace"),
)

// ParseAttributes parses the attribute listing printed by AdminConfig.show,
// e.g. "[name server1]\n[ports [[a b] [c d]]]". The whole listing may also be
// wrapped in one extra pair of brackets.
func ParseAttributes(s string) ([]Attribute, error) {
	doc, err := attributeParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAttributes, err)
	}

	nodes := doc.Nodes
	if len(nodes) == 1 && nodes[0].Open && len(nodes[0].Items) == 0 {
		return []Attribute{}, nil
	}
	if len(nodes) == 1 && nodes[0].Open && allLists(nodes[0].Items) {
		nodes = nodes[0].Items
	}

	attrs := make([]Attribute, 0, len(nodes))
	for i, n := range nodes {
		if !n.Open || len(n.Items) == 0 || n.Items[0].Open {
			return nil, fmt.Errorf("%w: entry %d is not a [name value] pair", ErrMalformedAttributes, i)
		}

		attr := Attribute{Name: n.Items[0].scalar()}
		values := n.Items[1:]
		switch len(values) {
		case 0:
		case 1:
			attr.Value = values[0].value()
		default:
			attr.Value = listValue(values)
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

// Lookup returns the first attribute called name.
func Lookup(attrs []Attribute, name string) (Value, bool) {
	for _, attr := range attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return Value{}, false
}

// Tokens flattens a list value into ToList style tokens. A scalar yields
// itself unless it is empty.
func (v Value) Tokens() []string {
	if !v.IsList {
		if v.Scalar == "" {
			return []string{}
		}
		return []string{v.Scalar}
	}

	tokens := make([]string, 0, len(v.List))
	for _, item := range v.List {
		tokens = append(tokens, item.String())
	}
	return tokens
}

// String renders the value back in wsadmin syntax.
func (v Value) String() string {
	if !v.IsList {
		return quoteScalar(v.Scalar)
	}

	items := make([]string, 0, len(v.List))
	for _, item := range v.List {
		items = append(items, item.String())
	}
	return "[" + strings.Join(items, " ") + "]"
}

func (a Attribute) String() string {
	return "[" + quoteScalar(a.Name) + " " + a.Value.String() + "]"
}

// quoteScalar quotes s when it would not lex back as a single word. Only
// embedded quotes are escaped; backslashes are written as is.
func quoteScalar(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\r\n[]\"") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}

func allLists(nodes []*node) bool {
	if len(nodes) == 0 {
		return false
	}
	for _, n := range nodes {
		if !n.Open {
			return false
		}
	}
	return true
}

func listValue(nodes []*node) Value {
	v := Value{IsList: true, List: make([]Value, 0, len(nodes))}
	for _, n := range nodes {
		v.List = append(v.List, n.value())
	}
	return v
}

func (n *node) value() Value {
	if n.Open {
		return listValue(n.Items)
	}
	return Value{Scalar: n.scalar()}
}

func (n *node) scalar() string {
	switch {
	case n.Quoted != nil:
		return unquote(*n.Quoted)
	case n.Word != nil:
		return *n.Word
	}
	return ""
}

// unquote strips the quotes and decodes \" only. wsadmin prints backslashes
// raw, so "C:\temp\new" must keep its \t and \n.
func unquote(s string) string {
	return strings.ReplaceAll(s[1:len(s)-1], `\"`, `"`)
}
