package bas

import "fmt"

var phrasesByClass = map[Class][]string{
	ClassAssets:        {"Kundinbetalning", "Banköverföring", "Insättning"},
	ClassLiabilities:   {"Leverantörsbetalning", "Momsinbetalning", "Amortering"},
	ClassEquity:        {"Kapitalinsättning", "Utdelning"},
	ClassRevenue:       {"Fakturerad försäljning", "Konsultarvode", "Produktförsäljning", "Abonnemangsintäkt"},
	ClassCostOfSales:   {"Varuinköp", "Fraktkostnad", "Emballage"},
	ClassOperatingCost: {"Kontorsmaterial", "Telefonabonnemang", "Programvarulicens", "Bankavgift", "Lokalhyra"},
	ClassFinancial:     {"Ränteintäkt", "Räntekostnad", "Valutakursdifferens"},
	ClassExtraordinary: {"Extraordinär intäkt", "Extraordinär kostnad"},
}

// Phrases returns the description phrases for a class. Every class has at
// least one; an unknown class is a reference-data bug and errors out.
func Phrases(c Class) ([]string, error) {
	p, ok := phrasesByClass[c]
	if !ok {
		return nil, fmt.Errorf("no description phrases for BAS class %d", c)
	}
	return p, nil
}

// CompanyNames are the synthetic counterparties used to build composite
// descriptions ("<phrase> - <company>").
var CompanyNames = []string{
	"Nordström Bygg AB",
	"Lindqvist Konsult AB",
	"Svea Handel AB",
	"Fjällström Logistik AB",
	"Bergman & Söner AB",
	"Kungsholmen Tech AB",
	"Malmö Verkstad AB",
	"Dalarna Trä AB",
	"Göta Finans AB",
	"Öresund Import AB",
	"Birka Design AB",
	"Vasa Revision AB",
	"Norrland Energi AB",
	"Skåne Frukt AB",
	"Wik Entreprenad AB",
}

// ReferencePrefixes seed the synthetic reference/invoice codes.
var ReferencePrefixes = []string{"INV", "FAK", "REF", "VER"}
