package bas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo_AllClasses(t *testing.T) {
	for c := ClassAssets; c <= ClassExtraordinary; c++ {
		info, err := Info(c)
		require.NoError(t, err)
		assert.Equal(t, c, info.Class)
		assert.NotEmpty(t, info.NameSV)
		assert.NotEmpty(t, info.NameEN)
	}
}

func TestInfo_UnknownClass(t *testing.T) {
	_, err := Info(0)
	assert.Error(t, err)
	_, err = Info(9)
	assert.Error(t, err)
}

func TestNumberRange(t *testing.T) {
	min, max := ClassRevenue.NumberRange()
	assert.Equal(t, 4000, min)
	assert.Equal(t, 4999, max)

	min, max = ClassAssets.NumberRange()
	assert.Equal(t, 1000, min)
	assert.Equal(t, 1999, max)
}

func TestSeedChart_CoversAllClasses(t *testing.T) {
	chart := SeedChart()
	byClass := make(map[Class]int)
	for _, e := range chart {
		byClass[e.Class]++
		min, max := e.Class.NumberRange()
		assert.GreaterOrEqual(t, e.Number, min, "account %d", e.Number)
		assert.LessOrEqual(t, e.Number, max, "account %d", e.Number)
	}
	for c := ClassAssets; c <= ClassExtraordinary; c++ {
		assert.GreaterOrEqual(t, byClass[c], 1, "class %d needs a seed account", c)
	}
}

func TestSeedChart_ParentsResolvable(t *testing.T) {
	chart := SeedChart()
	numbers := make(map[int]bool, len(chart))
	for _, e := range chart {
		numbers[e.Number] = true
	}
	for _, e := range chart {
		if e.ParentNumber != 0 {
			assert.True(t, numbers[e.ParentNumber], "parent %d of %d", e.ParentNumber, e.Number)
			assert.NotEqual(t, e.Number, e.ParentNumber, "account cannot parent itself")
		}
	}
}

func TestPhrases_AllClasses(t *testing.T) {
	for c := ClassAssets; c <= ClassExtraordinary; c++ {
		p, err := Phrases(c)
		require.NoError(t, err)
		assert.NotEmpty(t, p, "class %d", c)
	}
	_, err := Phrases(12)
	assert.Error(t, err)
}

func TestBalance_Convention(t *testing.T) {
	tests := []struct {
		class Class
		want  NormalBalance
	}{
		{ClassAssets, NormalDebit},
		{ClassCostOfSales, NormalDebit},
		{ClassOperatingCost, NormalDebit},
		{ClassLiabilities, NormalCredit},
		{ClassEquity, NormalCredit},
		{ClassRevenue, NormalCredit},
		{ClassFinancial, NormalEither},
		{ClassExtraordinary, NormalEither},
	}
	for _, tt := range tests {
		got, err := Balance(tt.class)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "class %d", tt.class)
	}
	_, err := Balance(0)
	assert.Error(t, err)
}

func TestAmountBand_PositiveAndClassDependent(t *testing.T) {
	seen := make(map[[2]int64]bool)
	for c := ClassAssets; c <= ClassExtraordinary; c++ {
		lo, hi, err := AmountBand(c)
		require.NoError(t, err)
		assert.Greater(t, lo, int64(0), "class %d", c)
		assert.GreaterOrEqual(t, hi, lo, "class %d", c)
		seen[[2]int64{lo, hi}] = true
	}
	assert.Greater(t, len(seen), 1, "bands must differ by class")
	_, _, err := AmountBand(99)
	assert.Error(t, err)
}

func TestVATRates(t *testing.T) {
	assert.Equal(t, []int{0, 6, 12, 25}, VATRates)
	for _, r := range NonZeroVATRates {
		assert.True(t, ValidVATRate(r))
		assert.NotZero(t, r)
	}
	assert.False(t, ValidVATRate(19))
}

func TestVATProbability(t *testing.T) {
	assert.Greater(t, VATProbability(ClassRevenue), VATProbability(ClassCostOfSales))
	assert.Greater(t, VATProbability(ClassOperatingCost), VATProbability(ClassCostOfSales))
	for _, c := range []Class{ClassAssets, ClassLiabilities, ClassEquity, ClassFinancial, ClassExtraordinary} {
		assert.Zero(t, VATProbability(c), "class %d never carries VAT", c)
	}
}
