package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePattern_EmptyQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "empty", query: ""},
		{name: "blank", query: "   "},
		{name: "bare operators", query: "! ^ $ '"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePattern(CaseSmart, false, tt.query, true)
			require.Nil(t, p)
			require.ErrorIs(t, err, ErrEmptyQuery)
		})
	}
}

func TestParsePattern_Operators(t *testing.T) {
	tests := []struct {
		token   string
		kind    termKind
		text    string
		inverse bool
	}{
		{token: "fuzz", kind: termFuzzy, text: "fuzz"},
		{token: "'lit", kind: termSubstring, text: "lit"},
		{token: "^pre", kind: termPrefix, text: "pre"},
		{token: "suf$", kind: termSuffix, text: "suf"},
		{token: "^eq$", kind: termEqual, text: "eq"},
		{token: "!no", kind: termFuzzy, text: "no", inverse: true},
		{token: "!'no", kind: termSubstring, text: "no", inverse: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			p, err := ParsePattern(CaseSmart, false, tt.token, true)
			require.NoError(t, err)
			require.Len(t, p.terms, 1)
			require.Equal(t, tt.kind, p.terms[0].kind)
			require.Equal(t, tt.text, p.terms[0].text)
			require.Equal(t, tt.inverse, p.terms[0].inverse)
		})
	}
}

func TestParsePattern_CaseModes(t *testing.T) {
	// Smart: lowercase term folds case, uppercase term respects it.
	p, err := ParsePattern(CaseSmart, false, "abc Abc", true)
	require.NoError(t, err)
	require.True(t, p.terms[0].ignoreCase)
	require.False(t, p.terms[1].ignoreCase)

	p, err = ParsePattern(CaseIgnore, false, "ABC", true)
	require.NoError(t, err)
	require.True(t, p.terms[0].ignoreCase)
	require.Equal(t, "abc", p.terms[0].text)

	p, err = ParsePattern(CaseRespect, false, "abc", true)
	require.NoError(t, err)
	require.False(t, p.terms[0].ignoreCase)
}

func TestParsePattern_ExactModeDowngradesFuzzy(t *testing.T) {
	p, err := ParsePattern(CaseSmart, false, "term ^pre", false)
	require.NoError(t, err)
	require.Equal(t, termSubstring, p.terms[0].kind)
	// anchors survive exact mode
	require.Equal(t, termPrefix, p.terms[1].kind)
}

func TestParsePattern_NormalizesTerm(t *testing.T) {
	p, err := ParsePattern(CaseSmart, true, "übér", true)
	require.NoError(t, err)
	require.Equal(t, "uber", p.terms[0].text)
}

func TestCaseMode_String(t *testing.T) {
	require.Equal(t, "smart", CaseSmart.String())
	require.Equal(t, "ignore", CaseIgnore.String())
	require.Equal(t, "respect", CaseRespect.String())
}
