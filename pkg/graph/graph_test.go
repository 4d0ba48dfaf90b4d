package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etzhaim/netivot/pkg/lexicon"
)

func TestNormalizationValidate(t *testing.T) {
	assert.NoError(t, NormalizationRaw.Validate())
	assert.NoError(t, NormalizationLog.Validate())

	err := Normalization("sqrt").Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownNormalization)
}

func TestBuildRejectsUnknownMethod(t *testing.T) {
	b := NewBuilder(nil)
	_, err := b.Build("אבג", Normalization("zscore"))
	assert.ErrorIs(t, err, ErrUnknownNormalization)
}

func TestBuildAlwaysCanonicalShape(t *testing.T) {
	b := NewBuilder(nil)
	for _, text := range []string{"", "אבגדה", "hello world", "בראשית ברא אלהים"} {
		g, err := b.Build(text, NormalizationRaw)
		require.NoError(t, err, text)
		require.Len(t, g.Edges, lexicon.NumLetters)
		require.Len(t, g.Activity, lexicon.NumSefirot)
		for i, e := range g.Edges {
			assert.Equal(t, lexicon.Letters()[i].Rune, e.Letter.Rune)
			assert.GreaterOrEqual(t, e.Weight, 0.0)
		}
		for _, a := range g.Activity {
			assert.GreaterOrEqual(t, a, 0.0)
		}
	}
}

func TestEmptyTextYieldsZeroActivity(t *testing.T) {
	b := NewBuilder(nil)
	g, err := b.Build("", NormalizationRaw)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Activity.NonZero())
	assert.Empty(t, g.ActiveEdges())
}

func TestUnknownRunesIgnored(t *testing.T) {
	b := NewBuilder(nil)
	plain, err := b.Build("שלום", NormalizationRaw)
	require.NoError(t, err)
	noisy, err := b.Build("שָׁלוֹם, world! 42", NormalizationRaw)
	require.NoError(t, err)
	assert.Equal(t, plain.Activity, noisy.Activity)
}

func TestLetterCountsSumEqualsHebrewRunes(t *testing.T) {
	text := "שלום עולם, the אמן 3 פעמים ץ"
	counts := LetterCounts(text)

	sum := 0
	for _, c := range counts {
		sum += c
	}

	hebrew := 0
	for _, r := range text {
		if lexicon.IsHebrewLetter(r) {
			hebrew++
		}
	}
	assert.Equal(t, hebrew, sum)
}

func TestFinalFormsFoldIntoBaseCount(t *testing.T) {
	counts := LetterCounts("מם") // mem plus final mem
	assert.Equal(t, 2, counts['מ'])
	_, hasFinal := counts['ם']
	assert.False(t, hasFinal)
}

func TestActivitySumsIncidentEdgeWeights(t *testing.T) {
	b := NewBuilder(nil)
	g, err := b.Build("אאא", NormalizationRaw)
	require.NoError(t, err)

	aleph, ok := lexicon.LetterByRune('א')
	require.True(t, ok)
	assert.Equal(t, 3.0, g.Activity[aleph.From])
	assert.Equal(t, 3.0, g.Activity[aleph.To])
	assert.Equal(t, 2, g.Activity.NonZero())
}

func TestRawAndLogShareSupport(t *testing.T) {
	b := NewBuilder(nil)
	raw, err := b.Build("אבגדה", NormalizationRaw)
	require.NoError(t, err)
	logged, err := b.Build("אבגדה", NormalizationLog)
	require.NoError(t, err)

	// Five distinct letters whose endpoints span keter, chokhmah, binah and
	// tiferet.
	wantActive := 0
	seen := map[int]bool{}
	for _, r := range "אבגדה" {
		l, ok := lexicon.LetterByRune(r)
		require.True(t, ok)
		seen[l.From] = true
		seen[l.To] = true
	}
	wantActive = len(seen)

	assert.Equal(t, wantActive, raw.Activity.NonZero())
	assert.Equal(t, wantActive, logged.Activity.NonZero())
	for i := range raw.Activity {
		assert.Equal(t, raw.Activity[i] > 0, logged.Activity[i] > 0, "sefira %d", i)
	}
	assert.NotEqual(t, raw.Activity, logged.Activity)
}
