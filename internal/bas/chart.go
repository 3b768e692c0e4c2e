package bas

// ChartEntry is one row of the seed chart of accounts. ParentNumber links
// a sub-account to its parent; 0 means top-level.
type ChartEntry struct {
	Number       int
	NameSV       string
	NameEN       string
	Class        Class
	ParentNumber int
}

// SeedChart returns the fixed chart of accounts the account generator maps
// into Account records. Every BAS class has at least one entry, and every
// number sits inside its class's range.
func SeedChart() []ChartEntry {
	return []ChartEntry{
		{Number: 1510, NameSV: "Kundfordringar", NameEN: "Accounts receivable", Class: ClassAssets},
		{Number: 1900, NameSV: "Kassa och bank", NameEN: "Cash and bank", Class: ClassAssets},
		{Number: 1910, NameSV: "Kassa", NameEN: "Cash on hand", Class: ClassAssets, ParentNumber: 1900},
		{Number: 1930, NameSV: "Företagskonto", NameEN: "Business account", Class: ClassAssets, ParentNumber: 1900},
		{Number: 2440, NameSV: "Leverantörsskulder", NameEN: "Accounts payable", Class: ClassLiabilities},
		{Number: 2610, NameSV: "Utgående moms", NameEN: "Output VAT", Class: ClassLiabilities},
		{Number: 3010, NameSV: "Aktiekapital", NameEN: "Share capital", Class: ClassEquity},
		{Number: 3020, NameSV: "Balanserat resultat", NameEN: "Retained earnings", Class: ClassEquity},
		{Number: 4010, NameSV: "Försäljning tjänster", NameEN: "Service revenue", Class: ClassRevenue},
		{Number: 4020, NameSV: "Försäljning varor", NameEN: "Goods revenue", Class: ClassRevenue},
		{Number: 5010, NameSV: "Varuinköp", NameEN: "Purchases of goods", Class: ClassCostOfSales},
		{Number: 6110, NameSV: "Kontorsmateriel", NameEN: "Office supplies", Class: ClassOperatingCost},
		{Number: 6212, NameSV: "Telefon och internet", NameEN: "Phone and internet", Class: ClassOperatingCost},
		{Number: 6570, NameSV: "Banktjänster", NameEN: "Bank services", Class: ClassOperatingCost},
		{Number: 7310, NameSV: "Ränteintäkter", NameEN: "Interest income", Class: ClassFinancial},
		{Number: 7410, NameSV: "Räntekostnader", NameEN: "Interest expense", Class: ClassFinancial},
		{Number: 8010, NameSV: "Extraordinära intäkter", NameEN: "Extraordinary income", Class: ClassExtraordinary},
		{Number: 8020, NameSV: "Extraordinära kostnader", NameEN: "Extraordinary expenses", Class: ClassExtraordinary},
	}
}
