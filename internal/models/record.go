package models

// Row is one data row of the sheet, read from columns A, B and C.
type Row struct {
	Name     string
	Region   string
	Locality string
}

// Record pairs a normalized name with the address built from its region and locality.
type Record struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ResultSet is the payload returned by /api/get_data.
type ResultSet struct {
	Values []Record `json:"values"`
}

// Place groups every name that shares one address.
type Place struct {
	Address string   `json:"address"`
	Names   []string `json:"names"`
}

// PlaceSet is the payload returned by /api/get_places.
type PlaceSet struct {
	Places []Place `json:"places"`
}
