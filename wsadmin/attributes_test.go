package wsadmin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalar(s string) Value {
	return Value{Scalar: s}
}

func list(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{IsList: true, List: items}
}

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Attribute
	}{
		{"empty", "", []Attribute{}},
		{"empty brackets", "[]", []Attribute{}},
		{
			"show output",
			"[name server1]\r\n[serverType APPLICATION_SERVER]\r\n",
			[]Attribute{
				{Name: "name", Value: scalar("server1")},
				{Name: "serverType", Value: scalar("APPLICATION_SERVER")},
			},
		},
		{
			"wrapped",
			"[[name server1] [developmentMode false]]",
			[]Attribute{
				{Name: "name", Value: scalar("server1")},
				{Name: "developmentMode", Value: scalar("false")},
			},
		},
		{
			"single wrapped pair",
			"[[name server1]]",
			[]Attribute{{Name: "name", Value: scalar("server1")}},
		},
		{
			"no value",
			"[components []]\n[description]",
			[]Attribute{
				{Name: "components", Value: list()},
				{Name: "description", Value: Value{}},
			},
		},
		{
			"multiple values",
			"[classpath a.jar b.jar]",
			[]Attribute{{Name: "classpath", Value: list(scalar("a.jar"), scalar("b.jar"))}},
		},
		{
			"nested lists",
			"[endPoint [[host *] [port 9080]]]",
			[]Attribute{{
				Name: "endPoint",
				Value: list(
					list(scalar("host"), scalar("*")),
					list(scalar("port"), scalar("9080")),
				),
			}},
		},
		{
			"config ids",
			"[server (cells/c1/nodes/n1/servers/server1|server.xml#Server_1)]",
			[]Attribute{{Name: "server", Value: scalar("(cells/c1/nodes/n1/servers/server1|server.xml#Server_1)")}},
		},
		{
			"quoted",
			`[description "my app server"] [path "C:\IBM\profiles"] [escaped "a\"b"]`,
			[]Attribute{
				{Name: "description", Value: scalar("my app server")},
				{Name: "path", Value: scalar(`C:\IBM\profiles`)},
				{Name: "escaped", Value: scalar(`a"b`)},
			},
		},
		{
			"windows paths keep backslashes",
			`[tmp "C:\temp\new"] [bin "C:\WebSphere\bin"] [share "\\host\share dir"]`,
			[]Attribute{
				{Name: "tmp", Value: scalar(`C:\temp\new`)},
				{Name: "bin", Value: scalar(`C:\WebSphere\bin`)},
				{Name: "share", Value: scalar(`\\host\share dir`)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAttributes(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAttributesMalformed(t *testing.T) {
	inputs := []string{
		"[name server1",
		"name server1]",
		"name server1",
		"[[a b] c]",
		"[[nested] value]",
		"[a b] []",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseAttributes(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedAttributes)
		})
	}
}

func TestLookup(t *testing.T) {
	attrs, err := ParseAttributes("[name server1] [name server2] [ports [9080 9443]]")
	require.NoError(t, err)

	v, ok := Lookup(attrs, "name")
	require.True(t, ok)
	assert.Equal(t, "server1", v.String())

	v, ok = Lookup(attrs, "ports")
	require.True(t, ok)
	assert.Equal(t, []string{"9080", "9443"}, v.Tokens())
	assert.Equal(t, v.Tokens(), ToList(v.String()))

	_, ok = Lookup(attrs, "missing")
	assert.False(t, ok)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "server1", scalar("server1").String())
	assert.Equal(t, `""`, scalar("").String())
	assert.Equal(t, `"my server"`, scalar("my server").String())
	assert.Equal(t, `"C:\Program Files\IBM"`, scalar(`C:\Program Files\IBM`).String())
	assert.Equal(t, `"say \"hi\""`, scalar(`say "hi"`).String())
	assert.Equal(t, "[]", list().String())
	assert.Equal(t, "[[host *] [port 9080]]", list(
		list(scalar("host"), scalar("*")),
		list(scalar("port"), scalar("9080")),
	).String())

	attr := Attribute{Name: "name", Value: scalar("server1")}
	assert.Equal(t, "[name server1]", attr.String())
}

func TestAttributesRoundTrip(t *testing.T) {
	input := "[name server1]\n[endPoint [[host *] [port 9080]]]\n[description \"my server\"]\n" +
		`[path "C:\temp\new dir"] [quote "a\"b"]`
	attrs, err := ParseAttributes(input)
	require.NoError(t, err)

	var rendered string
	for _, attr := range attrs {
		rendered += attr.String() + "\n"
	}

	again, err := ParseAttributes(rendered)
	require.NoError(t, err)
	assert.Equal(t, attrs, again)
}
