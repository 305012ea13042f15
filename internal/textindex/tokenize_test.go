package textindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_Lowercases(t *testing.T) {
	tokens := Tokenize("Python REACT Sql", nil)

	assert.Equal(t, []string{"python", "react", "sql"}, tokens)
}

func TestTokenize_KeepsSymbolSkills(t *testing.T) {
	tokens := Tokenize("C++ and CI/CD plus C# on Node.js", nil)

	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "ci/cd")
	assert.Contains(t, tokens, "c#")
	assert.Contains(t, tokens, "node.js")
}

func TestTokenize_DropsStopWords(t *testing.T) {
	tokens := Tokenize("the quick engineer and the database", EnglishStopWords())

	assert.Equal(t, []string{"quick", "engineer", "database"}, tokens)
}

func TestTokenize_KeepsStopWordsWhenNilSet(t *testing.T) {
	tokens := Tokenize("the database", nil)

	assert.Equal(t, []string{"the", "database"}, tokens)
}

func TestTokenize_DropsPureSymbolFragments(t *testing.T) {
	tokens := Tokenize("go -- / ++ rust", nil)

	assert.Equal(t, []string{"go", "rust"}, tokens)
}

func TestTokenize_TrimsEdgePunctuation(t *testing.T) {
	tokens := Tokenize("testing, e.g. pipelines.", nil)

	assert.Equal(t, []string{"testing", "e.g", "pipelines"}, tokens)
}

func TestTokenize_EmptyText(t *testing.T) {
	assert.Empty(t, Tokenize("", nil))
	assert.Empty(t, Tokenize("   ", nil))
}
