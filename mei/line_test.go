package mei_test

import (
	"testing"

	"github.com/fwojciec/carspec/mei"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	lines := mei.Classify([]string{
		"A",
		"Ferrari SF90 Stradale",
		"⭐⭐⭐⭐",
		"⛽ 5 fuels",
		"🔑/40/45/60",
		"Stock [2735]",
		"⭐⭐ [2900]",
		"Max w/o epics [3150]",
		"Gold [3300]",
		"Epics:",
		"= 68,200",
		"Total: 2,500,000",
		"AB",
	})

	kinds := make([]mei.LineKind, len(lines))
	for i, l := range lines {
		kinds[i] = l.Kind
	}
	assert.Equal(t, []mei.LineKind{
		mei.LineClass,
		mei.LinePlain,
		mei.LineStars,
		mei.LineFuel,
		mei.LineUnlock,
		mei.LineStatHeader,
		mei.LineStatHeader,
		mei.LineStatHeader,
		mei.LineStatHeader,
		mei.LineEpics,
		mei.LineStarTotal,
		mei.LineGrandTotal,
		mei.LinePlain,
	}, kinds)

	assert.Equal(t, 4, lines[2].Stars)
	assert.Equal(t, []int{40, 45, 60}, lines[4].Run)
	assert.Equal(t, mei.StatHeader{Kind: mei.KindStock, Label: "Stock", Rank: 2735}, lines[5].Header)
	assert.Equal(t, mei.StatHeader{Kind: mei.KindStar, Label: "⭐⭐", Rank: 2900, Stars: 2}, lines[6].Header)
	assert.Equal(t, mei.KindMaxWithoutEpics, lines[7].Header.Kind)
	assert.Equal(t, mei.KindGold, lines[8].Header.Kind)
}

func TestClassify_Unlock(t *testing.T) {
	t.Parallel()

	t.Run("accepts a two-stage run spanning the whole line", func(t *testing.T) {
		t.Parallel()

		lines := mei.Classify([]string{"5/8"})

		require.Len(t, lines, 1)
		assert.Equal(t, mei.LineUnlock, lines[0].Kind)
		assert.Equal(t, []int{5, 8}, lines[0].Run)
	})

	t.Run("ignores plus signs around the run", func(t *testing.T) {
		t.Parallel()

		lines := mei.Classify([]string{"5/8/30 + (43)"})

		assert.Equal(t, []int{5, 8, 30}, lines[0].Run)
	})

	t.Run("does not treat text fractions as runs", func(t *testing.T) {
		t.Parallel()

		lines := mei.Classify([]string{"win 1/2 races"})

		assert.Equal(t, mei.LinePlain, lines[0].Kind)
	})
}

func TestLineKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "stat_header", mei.LineStatHeader.String())
	assert.Equal(t, "LineKind(99)", mei.LineKind(99).String())
}
