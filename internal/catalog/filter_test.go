package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildFilterEmpty(t *testing.T) {
	require.Nil(t, BuildFilter(DatasetKind, Query{}))
}

func TestBuildFilterTagOnly(t *testing.T) {
	f := BuildFilter(DatasetKind, Query{Tag: "nlp"})
	require.Equal(t, Equals{Field: "tags", Value: "nlp"}, f)
}

func TestBuildFilterTextOnly(t *testing.T) {
	f := BuildFilter(ToolKind, Query{Text: "json"})
	or, ok := f.(Or)
	require.True(t, ok, "text-only filter should be an Or across text fields")
	require.Equal(t, []Expr{
		Contains{Field: "name", Substring: "json"},
		Contains{Field: "description", Substring: "json"},
	}, or.Exprs)
}

func TestBuildFilterTagAndText(t *testing.T) {
	f := BuildFilter(DatasetKind, Query{Tag: "nlp", Text: "corpus"})
	and, ok := f.(And)
	require.True(t, ok)
	require.Len(t, and.Exprs, 2)
	require.Equal(t, Equals{Field: "tags", Value: "nlp"}, and.Exprs[0])
	or, ok := and.Exprs[1].(Or)
	require.True(t, ok)
	require.Len(t, or.Exprs, 2)
}

func TestBuildFilterSnippetLanguage(t *testing.T) {
	f := BuildFilter(SnippetKind, Query{Language: "python"})
	require.Equal(t, Equals{Field: "language", Value: "python"}, f)

	// snippets search title, description and code
	f = BuildFilter(SnippetKind, Query{Language: "python", Text: "def"})
	and, ok := f.(And)
	require.True(t, ok)
	require.Equal(t, Equals{Field: "language", Value: "python"}, and.Exprs[0])
	or := and.Exprs[1].(Or)
	require.Len(t, or.Exprs, 3)
}

func TestBuildFilterLanguageIgnoredForOtherKinds(t *testing.T) {
	// the language parameter only applies to kinds that declare it
	require.Nil(t, BuildFilter(DatasetKind, Query{Language: "python"}))
	require.Nil(t, BuildFilter(ToolKind, Query{Language: "go"}))
}
