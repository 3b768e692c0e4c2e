// Package bas holds the static Swedish bookkeeping reference tables: the
// BAS account-class catalog, legal VAT rates, the seed chart of accounts,
// and the word lists the transaction generator draws descriptions from.
package bas

import "fmt"

// Class is a BAS account class, 1 through 8.
type Class int

const (
	ClassAssets        Class = 1
	ClassLiabilities   Class = 2
	ClassEquity        Class = 3
	ClassRevenue       Class = 4
	ClassCostOfSales   Class = 5
	ClassOperatingCost Class = 6
	ClassFinancial     Class = 7
	ClassExtraordinary Class = 8
)

// Valid reports whether c is a defined BAS class.
func (c Class) Valid() bool {
	return c >= ClassAssets && c <= ClassExtraordinary
}

// NumberRange returns the inclusive 4-digit account-number range for the
// class: class 1 owns 1000-1999, class 2 owns 2000-2999, and so on.
func (c Class) NumberRange() (min, max int) {
	return int(c) * 1000, int(c)*1000 + 999
}

// ClassInfo describes one BAS class.
type ClassInfo struct {
	Class  Class
	NameSV string
	NameEN string
}

var classInfos = [...]ClassInfo{
	{ClassAssets, "Tillgångar", "Assets"},
	{ClassLiabilities, "Skulder", "Liabilities"},
	{ClassEquity, "Eget kapital", "Equity"},
	{ClassRevenue, "Intäkter", "Revenue"},
	{ClassCostOfSales, "Varukostnader", "Cost of sales"},
	{ClassOperatingCost, "Övriga rörelsekostnader", "Operating expenses"},
	{ClassFinancial, "Finansiella poster", "Financial items"},
	{ClassExtraordinary, "Extraordinära poster", "Extraordinary items"},
}

// Info returns the catalog entry for a class, or an error for anything
// outside 1-8. Unknown classes are never silently defaulted.
func Info(c Class) (ClassInfo, error) {
	if !c.Valid() {
		return ClassInfo{}, fmt.Errorf("unknown BAS class %d", c)
	}
	return classInfos[c-1], nil
}

// Classes returns all eight classes in order.
func Classes() []ClassInfo {
	out := make([]ClassInfo, len(classInfos))
	copy(out, classInfos[:])
	return out
}

// VATRates are the legal Swedish VAT rates, in percent.
var VATRates = []int{0, 6, 12, 25}

// NonZeroVATRates are the rates a VAT-carrying transaction may use.
var NonZeroVATRates = []int{6, 12, 25}

// ValidVATRate reports whether rate is one of the four legal rates.
func ValidVATRate(rate int) bool {
	for _, r := range VATRates {
		if r == rate {
			return true
		}
	}
	return false
}

// NormalBalance is the side on which a class conventionally increases.
type NormalBalance int

const (
	NormalDebit NormalBalance = iota
	NormalCredit
	NormalEither
)

// Balance returns the normal balance for a class per standard Swedish
// double-entry convention. Financial and extraordinary items swing both
// ways; the generator breaks the tie randomly.
func Balance(c Class) (NormalBalance, error) {
	switch c {
	case ClassAssets, ClassCostOfSales, ClassOperatingCost:
		return NormalDebit, nil
	case ClassLiabilities, ClassEquity, ClassRevenue:
		return NormalCredit, nil
	case ClassFinancial, ClassExtraordinary:
		return NormalEither, nil
	default:
		return 0, fmt.Errorf("unknown BAS class %d", c)
	}
}

// AmountBand returns the inclusive öre range for pseudo-realistic amounts
// in a class. The bands are flavor, not contract: the only hard rules are
// class dependence and strict positivity.
func AmountBand(c Class) (lo, hi int64, err error) {
	switch c {
	case ClassAssets:
		return 50_000, 550_000, nil
	case ClassLiabilities:
		return 20_000, 420_000, nil
	case ClassEquity:
		return 100_000, 1_100_000, nil
	case ClassRevenue:
		return 25_000, 525_000, nil
	case ClassCostOfSales:
		return 15_000, 315_000, nil
	case ClassOperatingCost:
		return 1_000, 26_000, nil
	case ClassFinancial:
		return 500, 50_500, nil
	case ClassExtraordinary:
		return 10_000, 510_000, nil
	default:
		return 0, 0, fmt.Errorf("unknown BAS class %d", c)
	}
}

// VATProbability returns the chance that a transaction in the class carries
// VAT when VAT generation is enabled. Revenue and operating expenses carry
// it most often, cost of sales sometimes, the rest never.
func VATProbability(c Class) float64 {
	switch c {
	case ClassRevenue:
		return 0.8
	case ClassOperatingCost:
		return 0.7
	case ClassCostOfSales:
		return 0.4
	default:
		return 0
	}
}
