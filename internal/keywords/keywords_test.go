package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_LowercasesWordRuns(t *testing.T) {
	tokens := Tokenize("Built REST APIs in Go, café-style!")
	assert.Equal(t, []string{"built", "rest", "apis", "in", "go", "café", "style"}, tokens)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  ,.; "))
}

func TestKeywordDensity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 0.0},
		{"whitespace only", " \n\t ", 0.0},
		{"stop words and short words", "the cat sat on the mat", 0.5},
		{"all meaningful", "Designed scalable services", 1.0},
		{"case folded stop words", "THE AND Python", 1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, KeywordDensity(tt.text), 1e-9)
		})
	}
}

func TestFold_FindWord(t *testing.T) {
	f := Fold("I did it. Didn't? DID")
	assert.Equal(t, []int{2, 18}, f.FindWord("did"))
	assert.Equal(t, 2, f.CountWord("did"))
	assert.Equal(t, "DID", f.Slice(18, 21))
}

func TestFold_FindWord_UnicodeBoundaries(t *testing.T) {
	f := Fold("café did naïve")
	assert.False(t, f.ContainsWord("caf"))
	assert.True(t, f.ContainsWord("café"))
	assert.True(t, f.ContainsWord("did"))
	assert.False(t, f.ContainsWord("na"))
}

func TestFold_FindWord_NonWordSuffix(t *testing.T) {
	assert.True(t, Fold("ci/cd pipelines").ContainsWord("ci/cd"))
	// A boundary after '+' needs a word character to follow.
	assert.False(t, Fold("c++ code").ContainsWord("c++"))
	assert.True(t, Fold("c++x").ContainsWord("c++"))
	assert.Empty(t, Fold("abc").FindWord(""))
}

func TestExtractDomain_OrderedByFirstOccurrence(t *testing.T) {
	set := ExtractDomain("Python developer using React.js and AWS")
	assert.Equal(t, []string{"python", "r", "react", "aws"}, set.Terms())
}

func TestExtractDomain_Acronyms(t *testing.T) {
	set := ExtractDomain("Led NASA and IBM teams; NLP work. Not an ACRONYMS or A1B")
	assert.True(t, set.Contains("nasa"))
	assert.True(t, set.Contains("ibm"))
	assert.True(t, set.Contains("nlp"))
	assert.False(t, set.Contains("acronyms"), "six capitals is not an acronym")
	assert.False(t, set.Contains("a1b"))
}

func TestExtractDomain_CompoundTerms(t *testing.T) {
	set := ExtractDomain("Strong Machine Learning background")
	assert.True(t, set.Contains("machine learning"))
	assert.True(t, set.Contains("machine_learning"))
	idx := indexOf(set.Terms(), "machine learning")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, "machine_learning", set.Terms()[idx+1], "ties are broken lexically")
}

func TestExtractDomain_ExtensionMentions(t *testing.T) {
	set := ExtractDomain("Shipped Vue.js, Express.ts and main.py; not foo.bar")
	assert.True(t, set.Contains("vue"))
	assert.True(t, set.Contains("express"))
	assert.True(t, set.Contains("main"))
	assert.False(t, set.Contains("foo"))
}

func TestExtensionMentions_DoNotOverlap(t *testing.T) {
	assert.Equal(t, []string{"Node.js", "app.py"}, ExtensionMentions("Node.js.py and app.py"))
}

func TestExtractGeneral_DisjointFromDomain(t *testing.T) {
	text := "Led NASA and IBM teams; NLP work"
	domain, general := Extract(text)
	assert.Equal(t, []string{"led", "teams"}, general.Terms())
	for _, term := range general.Terms() {
		assert.False(t, domain.Contains(term), term)
	}
}

func TestExtractGeneral_FiltersStopWordsAndTaxonomy(t *testing.T) {
	_, general := Extract("Python developer using React.js and AWS")
	assert.Equal(t, []string{"developer", "using"}, general.Terms())
}

func TestSet_IntersectAndDifference(t *testing.T) {
	a := ExtractDomain("python docker kafka")
	b := ExtractDomain("kafka and python")
	assert.Equal(t, []string{"python", "kafka"}, a.Intersect(b))
	assert.Equal(t, []string{"docker", "r"}, a.Difference(b))

	var empty *Set
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Intersect(a))
}

func TestAcronyms_DistinctInOrder(t *testing.T) {
	assert.Equal(t, []string{"SQL", "AWS"}, Acronyms("SQL, AWS and SQL again. Sql"))
}

func indexOf(items []string, want string) int {
	for i, item := range items {
		if item == want {
			return i
		}
	}
	return -1
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"machine learning": "Machine Learning",
		"ci/cd":            "Ci/Cd",
		"3d modeling":      "3D Modeling",
		"TECHNICAL skills": "Technical Skills",
		"c++":              "C++",
		"":                 "",
	}
	for in, want := range tests {
		assert.Equal(t, want, TitleCase(in), in)
	}
}

func TestIsUpperText(t *testing.T) {
	assert.True(t, IsUpperText("EXPERIENCE"))
	assert.True(t, IsUpperText("SKILLS & TOOLS 2024"))
	assert.False(t, IsUpperText("Experience"))
	assert.False(t, IsUpperText("2024 - 2025"))
	assert.False(t, IsUpperText(""))
}
