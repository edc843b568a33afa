package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aStarBYAML = `
states: [q0, q1]
start: q0
final: [q1]
transitions:
  - {from: q0, symbol: a, to: q0}
  - {from: q0, symbol: b, to: q1}
`

const aStarBJSON = `{
  "states": ["q0", "q1"],
  "start": "q0",
  "final": ["q1"],
  "transitions": [
    {"from": "q0", "symbol": "a", "to": "q0"},
    {"from": "q0", "symbol": "b", "to": "q1"}
  ]
}`

func TestParse(t *testing.T) {
	fromYAML, err := schema.Parse([]byte(aStarBYAML), schema.FormatYAML)
	require.NoError(t, err)
	fromJSON, err := schema.Parse([]byte(aStarBJSON), schema.FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
	assert.Equal(t, "q0", fromYAML.Start)
	assert.Len(t, fromYAML.Transitions, 2)

	_, err = schema.Parse([]byte("x"), "toml")
	assert.Error(t, err)
	_, err = schema.Parse([]byte("{"), schema.FormatJSON)
	assert.Error(t, err)
}

func TestParse_NumericSymbolInYAML(t *testing.T) {
	def, err := schema.Parse([]byte("states: [a]\nstart: a\ntransitions:\n  - {from: a, symbol: 0, to: a}\n"), schema.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "0", def.Transitions[0].Symbol)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "nfa.yaml")
	jsonPath := filepath.Join(dir, "nfa.json")
	require.NoError(t, os.WriteFile(yamlPath, []byte(aStarBYAML), 0o644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(aStarBJSON), 0o644))

	fromYAML, err := schema.Load(yamlPath)
	require.NoError(t, err)
	fromJSON, err := schema.Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, fromYAML, fromJSON)

	_, err = schema.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	raw := map[string]any{
		"states": []any{"a", "b"},
		"start":  "a",
		"final":  []any{"b"},
		"transitions": []any{
			map[string]any{"from": "a", "symbol": 1, "to": "b"},
		},
	}
	def, err := schema.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "1", def.Transitions[0].Symbol)

	_, err = schema.Decode(map[string]any{"unexpected": true})
	assert.Error(t, err)
}

func TestDefinition_Build(t *testing.T) {
	def, err := schema.Parse([]byte(aStarBYAML), schema.FormatYAML)
	require.NoError(t, err)

	n, err := def.Build()
	require.NoError(t, err)
	assert.Len(t, n.States(), 2)
	assert.Equal(t, []domain.Symbol{'a', 'b'}, n.Alphabet())

	d, err := n.DFA()
	require.NoError(t, err)
	assert.Equal(t, 2, d.NumStates())
}

func TestDefinition_BuildEpsilon(t *testing.T) {
	def := schema.Definition{
		Start:  "a",
		Final:  []string{"c"},
		States: []string{"b"},
		Transitions: []schema.TransitionDef{
			{From: "a", Symbol: "e", To: "b"},
			{From: "b", Symbol: "ε", To: "c"},
		},
	}
	n, err := def.Build()
	require.NoError(t, err)
	assert.Empty(t, n.Alphabet())
	assert.Equal(t, "[a, b, c]", n.EClosure(domain.NewState("a")).Name())
}

func TestDefinition_Validate(t *testing.T) {
	def := schema.Definition{
		States: []string{"a", ""},
		Start:  "a",
		Transitions: []schema.TransitionDef{
			{From: "a", Symbol: "ab", To: "a"},
			{From: "a", Symbol: "x", To: "ghost"},
		},
	}

	err := def.Validate()
	require.Error(t, err)
	assert.Len(t, schema.ValidationErrors(err), 3)
	assert.ErrorIs(t, err, domain.ErrUnknownState)

	_, err = def.Build()
	assert.Error(t, err)
}

func TestDefinition_BuildDFA(t *testing.T) {
	def := schema.Definition{
		Start: "a",
		Final: []string{"b"},
		Transitions: []schema.TransitionDef{
			{From: "a", Symbol: "x", To: "b"},
			{From: "a", Symbol: "x", To: "a"},
		},
	}
	_, err := def.BuildDFA()
	assert.ErrorIs(t, err, domain.ErrNondeterministic)

	def.Transitions = def.Transitions[:1]
	d, err := def.BuildDFA()
	require.NoError(t, err)
	assert.Equal(t, 2, d.NumStates())
}

func TestFromAutomaton_RoundTrip(t *testing.T) {
	def, err := schema.Parse([]byte(aStarBYAML), schema.FormatYAML)
	require.NoError(t, err)
	n, err := def.Build()
	require.NoError(t, err)
	d, err := n.DFA()
	require.NoError(t, err)

	out := schema.FromAutomaton(d)
	assert.Equal(t, "[q0]", out.Start)
	assert.Equal(t, []string{"[q1]"}, out.Final)

	rebuilt, err := out.BuildDFA()
	require.NoError(t, err)
	assert.Equal(t, d.String(), rebuilt.String())
}

func TestDefinition_Fingerprint(t *testing.T) {
	a := schema.Definition{
		States: []string{"q0", "q1"},
		Start:  "q0",
		Final:  []string{"q1"},
		Transitions: []schema.TransitionDef{
			{From: "q0", Symbol: "a", To: "q0"},
			{From: "q0", Symbol: "e", To: "q1"},
		},
	}
	b := schema.Definition{
		States: []string{"q1", "q0"},
		Start:  "q0",
		Final:  []string{"q1"},
		Transitions: []schema.TransitionDef{
			{From: "q0", Symbol: "ε", To: "q1"},
			{From: "q0", Symbol: "a", To: "q0"},
		},
	}
	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "order and epsilon spelling are irrelevant")

	b.Final = []string{"q0"}
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestMarshal(t *testing.T) {
	def, err := schema.Parse([]byte(aStarBJSON), schema.FormatJSON)
	require.NoError(t, err)

	for _, format := range []string{schema.FormatJSON, schema.FormatYAML} {
		data, err := schema.Marshal(def, format)
		require.NoError(t, err)
		back, err := schema.Parse(data, format)
		require.NoError(t, err)
		assert.Equal(t, def, back, format)
	}

	_, err = schema.Marshal(def, "xml")
	assert.Error(t, err)
}
