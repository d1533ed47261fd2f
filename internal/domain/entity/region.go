package entity

import "slices"

// Region is one of the twelve administrative regions of Morocco.
type Region string

// The fixed list of selectable regions.
const (
	RegionCasablancaSettat     Region = "Casablanca-Settat"
	RegionRabatSaleKenitra     Region = "Rabat-Salé-Kénitra"
	RegionFesMeknes            Region = "Fès-Meknès"
	RegionMarrakechSafi        Region = "Marrakech-Safi"
	RegionTangerTetouan        Region = "Tanger-Tétouan-Al Hoceïma"
	RegionSoussMassa           Region = "Souss-Massa"
	RegionBeniMellalKhenifra   Region = "Béni Mellal-Khénifra"
	RegionOriental             Region = "Oriental"
	RegionDraaTafilalet        Region = "Drâa-Tafilalet"
	RegionLaayouneSakiaElHamra Region = "Laâyoune-Sakia El Hamra"
	RegionGuelmimOuedNoun      Region = "Guelmim-Oued Noun"
	RegionDakhlaOuedEdDahab    Region = "Dakhla-Oued Ed-Dahab"
)

var regions = []Region{
	RegionCasablancaSettat,
	RegionRabatSaleKenitra,
	RegionFesMeknes,
	RegionMarrakechSafi,
	RegionTangerTetouan,
	RegionSoussMassa,
	RegionBeniMellalKhenifra,
	RegionOriental,
	RegionDraaTafilalet,
	RegionLaayouneSakiaElHamra,
	RegionGuelmimOuedNoun,
	RegionDakhlaOuedEdDahab,
}

// Regions returns the selectable regions in display order.
func Regions() []Region {
	return slices.Clone(regions)
}

// IsValid reports whether r is one of the twelve regions.
func (r Region) IsValid() bool {
	return slices.Contains(regions, r)
}

func (r Region) String() string {
	return string(r)
}
