package cli

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/internal/testutils"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/aretw0/automata/pkg/service"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// endsInAB accepts words over {a,b} ending in "ab", reached through an epsilon hop.
const endsInAB = `
states: [q0, q1, q2, q3]
start: q0
final: [q3]
transitions:
  - {from: q0, symbol: a, to: q0}
  - {from: q0, symbol: b, to: q0}
  - {from: q0, symbol: e, to: q1}
  - {from: q1, symbol: a, to: q2}
  - {from: q2, symbol: b, to: q3}
`

func TestConvert_Formats(t *testing.T) {
	path := testutils.WriteDefinition(t, "ends.yaml", endsInAB)

	tests := []struct {
		format   string
		contains []string
	}{
		{format: FormatText, contains: []string{"[q0, q1]", "[q0, q1, q2]", "[q0, q1, q3]"}},
		{format: FormatTable, contains: []string{"state", "→", "[q0, q1, q3]"}},
		{format: FormatJSON, contains: []string{`"start": "[q0, q1]"`}},
		{format: FormatYAML, contains: []string{"start: '[q0, q1]'"}},
		{format: FormatMermaid, contains: []string{"graph LR", `"[q0, q1, q3]"`}},
		{format: FormatDOT, contains: []string{"digraph automaton", `"[q0, q1, q3]" [shape=doublecircle];`}},
		{format: FormatMarkdown, contains: []string{"# Automaton", "- **States:** 3"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := Convert(&buf, ConvertOptions{Path: path, Format: tt.format, Profile: termenv.Ascii})
			require.NoError(t, err)
			for _, c := range tt.contains {
				assert.Contains(t, buf.String(), c)
			}
		})
	}
}

func TestConvert_JSONRoundTrip(t *testing.T) {
	path := testutils.WriteDefinition(t, "ends.yaml", endsInAB)

	var buf bytes.Buffer
	require.NoError(t, Convert(&buf, ConvertOptions{Path: path, Format: FormatJSON, DeadState: true}))

	def, err := schema.Parse(buf.Bytes(), schema.FormatJSON)
	require.NoError(t, err)
	d, err := def.BuildDFA()
	require.NoError(t, err)

	assert.Equal(t, 3, d.NumStates(), "every subset already has both symbols, so no sink is needed")
}

func TestConvert_Errors(t *testing.T) {
	path := testutils.WriteDefinition(t, "ends.yaml", endsInAB)

	t.Run("Missing File", func(t *testing.T) {
		err := Convert(&bytes.Buffer{}, ConvertOptions{Path: filepath.Join(t.TempDir(), "nope.yaml")})
		assert.Error(t, err)
	})

	t.Run("State Limit", func(t *testing.T) {
		err := Convert(&bytes.Buffer{}, ConvertOptions{Path: path, MaxStates: 2})
		assert.ErrorIs(t, err, domain.ErrStateLimit)
	})

	t.Run("Unknown Format", func(t *testing.T) {
		err := Convert(&bytes.Buffer{}, ConvertOptions{Path: path, Format: "svg"})
		assert.ErrorContains(t, err, "unknown format")
	})

	t.Run("No Start", func(t *testing.T) {
		noStart := testutils.WriteDefinition(t, "nostart.yaml", "states: [q0]\n")
		err := Convert(&bytes.Buffer{}, ConvertOptions{Path: noStart})
		assert.ErrorIs(t, err, domain.ErrNoStartState)
	})
}

func TestConvert_Logs(t *testing.T) {
	path := testutils.WriteDefinition(t, "ends.yaml", endsInAB)

	var logs bytes.Buffer
	err := Convert(&bytes.Buffer{}, ConvertOptions{Path: path, Logger: logging.NewWithWriter(&logs, slog.LevelDebug)})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "dfa_states=3")
}

func TestGraph(t *testing.T) {
	path := testutils.WriteDefinition(t, "ends.yaml", endsInAB)

	var nfaOut, dfaOut bytes.Buffer
	require.NoError(t, Graph(&nfaOut, GraphOptions{Path: path}))
	require.NoError(t, Graph(&dfaOut, GraphOptions{Path: path, DFA: true, Format: FormatDOT}))

	assert.Contains(t, nfaOut.String(), `-- "ε" -->`)
	assert.Contains(t, dfaOut.String(), `__start -> "[q0, q1]";`)

	assert.Error(t, Graph(&bytes.Buffer{}, GraphOptions{Path: path, Format: FormatJSON}))
}

func TestValidate(t *testing.T) {
	t.Run("Valid With Warning", func(t *testing.T) {
		path := testutils.WriteDefinition(t, "island.yaml", `
states: [q0, island]
start: q0
final: [q0]
transitions:
  - {from: island, symbol: a, to: q0}
`)
		var buf bytes.Buffer
		require.NoError(t, Validate(&buf, path))
		assert.Contains(t, buf.String(), `state "island" is unreachable`)
	})

	t.Run("Dangling Transition", func(t *testing.T) {
		path := testutils.WriteDefinition(t, "broken.json", `{"states": ["q0"], "start": "q0", "transitions": [{"from": "q0", "symbol": "a", "to": "ghost"}]}`)
		err := Validate(&bytes.Buffer{}, path)
		assert.ErrorIs(t, err, domain.ErrUnknownState)
	})

	t.Run("Reserved Name", func(t *testing.T) {
		path := testutils.WriteDefinition(t, "reserved.yaml", "states: ['a,b']\nstart: 'a,b'\n")
		err := Validate(&bytes.Buffer{}, path)
		assert.ErrorIs(t, err, domain.ErrInvalidStateName)
	})
}

func TestValidateDFA(t *testing.T) {
	t.Run("Converted Output", func(t *testing.T) {
		src := testutils.WriteDefinition(t, "ends.yaml", endsInAB)
		var out bytes.Buffer
		require.NoError(t, Convert(&out, ConvertOptions{Path: src, Format: FormatYAML}))

		path := testutils.WriteDefinition(t, "ends.dfa.yaml", out.String())
		var buf bytes.Buffer
		require.NoError(t, ValidateDFA(&buf, path))
		assert.Empty(t, buf.String())

		assert.ErrorIs(t, Validate(&bytes.Buffer{}, path), domain.ErrInvalidStateName, "subset names are not valid NFA state names")
	})

	t.Run("Nondeterministic", func(t *testing.T) {
		path := testutils.WriteDefinition(t, "nd.yaml", `
states: [p, q]
start: p
transitions:
  - {from: p, symbol: a, to: p}
  - {from: p, symbol: a, to: q}
`)
		assert.ErrorIs(t, ValidateDFA(&bytes.Buffer{}, path), domain.ErrNondeterministic)
	})

	t.Run("Epsilon Move", func(t *testing.T) {
		path := testutils.WriteDefinition(t, "eps.yaml", "states: [p]\nstart: p\ntransitions:\n  - {from: p, symbol: e, to: p}\n")
		assert.ErrorIs(t, ValidateDFA(&bytes.Buffer{}, path), domain.ErrEpsilonSymbol)
	})

	t.Run("No Start", func(t *testing.T) {
		path := testutils.WriteDefinition(t, "nostart.yaml", "states: [p]\n")
		assert.ErrorIs(t, ValidateDFA(&bytes.Buffer{}, path), domain.ErrNoStartState)
	})
}

func TestNewConverter_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	conv, closeFn, err := NewConverter(ServeOptions{RedisURL: "redis://" + mr.Addr(), TTL: time.Minute}, nil)
	require.NoError(t, err)
	defer closeFn()

	def, err := schema.Parse([]byte(endsInAB), schema.FormatYAML)
	require.NoError(t, err)

	res, err := conv.Convert(context.Background(), service.Request{Definition: def})
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.True(t, mr.Exists("automata:dfa:"+res.Key))

	_, _, err = NewConverter(ServeOptions{RedisURL: "://bad"}, nil)
	assert.Error(t, err)
}

func TestNewConverter_StoreDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")

	conv, closeFn, err := NewConverter(ServeOptions{StoreDir: dir}, nil)
	require.NoError(t, err)
	defer closeFn()

	def, err := schema.Parse([]byte(endsInAB), schema.FormatYAML)
	require.NoError(t, err)

	res, err := conv.Convert(context.Background(), service.Request{Definition: def})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, res.Key+".md"))

	again, err := conv.Convert(context.Background(), service.Request{Definition: def})
	require.NoError(t, err)
	assert.True(t, again.Cached)
}

func TestServe_Shutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, ServeOptions{Addr: "127.0.0.1:0"})
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestCreateLogger(t *testing.T) {
	logger, err := CreateLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = CreateLogger("loud")
	assert.Error(t, err)
}
