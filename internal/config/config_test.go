package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/rangen/internal/config"
	"github.com/funvibe/rangen/pkg/rangen"
)

func TestLoadPreservesOrderAndNesting(t *testing.T) {
	doc := `
user:
  first: "'Ada'"
  full: string('{} Lovelace', $first)
id: uuid()
score: random(1..100)
`
	defs, err := config.Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, []rangen.Definition{
		{Name: "user.first", Expr: "'Ada'"},
		{Name: "user.full", Expr: "string('{} Lovelace', $first)"},
		{Name: "id", Expr: "uuid()"},
		{Name: "score", Expr: "random(1..100)"},
	}, defs)
}

func TestLoadValuesSection(t *testing.T) {
	doc := `
values:
  a: circular([1, 2, 3])
`
	defs, err := config.Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, []rangen.Definition{{Name: "a", Expr: "circular([1, 2, 3])"}}, defs)
}

func TestLoadRejectsNonMapping(t *testing.T) {
	_, err := config.Load(strings.NewReader("- a\n- b\n"))
	require.Error(t, err)

	_, err = config.Load(strings.NewReader("a:\n  - 1\n"))
	require.Error(t, err)
}

func TestLoadedDefinitionsBuild(t *testing.T) {
	doc := `
user:
  first: "'Ada'"
  full: string('{} Lovelace', $first)
`
	defs, err := config.Load(strings.NewReader(doc))
	require.NoError(t, err)

	gen, err := rangen.Build(defs, rangen.WithSeed(1))
	require.NoError(t, err)

	record, err := gen.Next()
	require.NoError(t, err)
	user := record["user"].(map[string]any)
	require.Equal(t, "Ada Lovelace", user["full"])
}
