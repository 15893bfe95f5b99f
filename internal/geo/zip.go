package geo

import "strconv"

type zipRange struct {
	lo, hi int
	code   string
}

// zipRanges covers the contiguous prefix blocks assigned to each state.
// Ordered low to high so lookup can stop at the first match.
var zipRanges = []zipRange{
	{300, 999, "PR"},
	{1000, 2799, "MA"},
	{2800, 2999, "RI"},
	{3000, 3899, "NH"},
	{3900, 4999, "ME"},
	{5000, 5999, "VT"},
	{6000, 6999, "CT"},
	{7000, 8999, "NJ"},
	{10000, 14999, "NY"},
	{15000, 19699, "PA"},
	{19700, 19999, "DE"},
	{20000, 20599, "DC"},
	{20600, 21999, "MD"},
	{22000, 24699, "VA"},
	{24700, 26999, "WV"},
	{27000, 28999, "NC"},
	{29000, 29999, "SC"},
	{30000, 31999, "GA"},
	{32000, 34999, "FL"},
	{35000, 36999, "AL"},
	{37000, 38599, "TN"},
	{38600, 39999, "MS"},
	{40000, 42999, "KY"},
	{43000, 45999, "OH"},
	{46000, 47999, "IN"},
	{48000, 49999, "MI"},
	{50000, 52999, "IA"},
	{53000, 54999, "WI"},
	{55000, 56999, "MN"},
	{57000, 57999, "SD"},
	{58000, 58999, "ND"},
	{59000, 59999, "MT"},
	{60000, 62999, "IL"},
	{63000, 65999, "MO"},
	{66000, 67999, "KS"},
	{68000, 69999, "NE"},
	{70000, 71599, "LA"},
	{71600, 72999, "AR"},
	{73000, 74999, "OK"},
	{75000, 79999, "TX"},
	{80000, 81999, "CO"},
	{82000, 83199, "WY"},
	{83200, 83999, "ID"},
	{84000, 84999, "UT"},
	{85000, 86999, "AZ"},
	{87000, 88499, "NM"},
	{88900, 89999, "NV"},
	{90000, 96699, "CA"},
	{96700, 96899, "HI"},
	{97000, 97999, "OR"},
	{98000, 99499, "WA"},
	{99500, 99999, "AK"},
}

// StateFromZip resolves a 5-digit ZIP code (ZIP+4 accepted) to its state
// code. Returns "" when the ZIP does not parse or falls in an unassigned
// block.
func StateFromZip(zip string) string {
	if len(zip) > 5 {
		zip = zip[:5]
	}
	n, err := strconv.Atoi(zip)
	if err != nil {
		return ""
	}
	for _, r := range zipRanges {
		if n < r.lo {
			break
		}
		if n <= r.hi {
			return r.code
		}
	}
	return ""
}
