package address

type state struct {
	name string // lowercase full name
	code string
}

// states is ordered; substring matches resolve to the first entry.
var states = []state{
	{"alabama", "AL"},
	{"alaska", "AK"},
	{"arizona", "AZ"},
	{"arkansas", "AR"},
	{"california", "CA"},
	{"colorado", "CO"},
	{"connecticut", "CT"},
	{"delaware", "DE"},
	{"florida", "FL"},
	{"georgia", "GA"},
	{"hawaii", "HI"},
	{"idaho", "ID"},
	{"illinois", "IL"},
	{"indiana", "IN"},
	{"iowa", "IA"},
	{"kansas", "KS"},
	{"kentucky", "KY"},
	{"louisiana", "LA"},
	{"maine", "ME"},
	{"maryland", "MD"},
	{"massachusetts", "MA"},
	{"michigan", "MI"},
	{"minnesota", "MN"},
	{"mississippi", "MS"},
	{"missouri", "MO"},
	{"montana", "MT"},
	{"nebraska", "NE"},
	{"nevada", "NV"},
	{"new hampshire", "NH"},
	{"new jersey", "NJ"},
	{"new mexico", "NM"},
	{"new york", "NY"},
	{"north carolina", "NC"},
	{"north dakota", "ND"},
	{"ohio", "OH"},
	{"oklahoma", "OK"},
	{"oregon", "OR"},
	{"pennsylvania", "PA"},
	{"rhode island", "RI"},
	{"south carolina", "SC"},
	{"south dakota", "SD"},
	{"tennessee", "TN"},
	{"texas", "TX"},
	{"utah", "UT"},
	{"vermont", "VT"},
	{"virginia", "VA"},
	{"washington", "WA"},
	{"west virginia", "WV"},
	{"wisconsin", "WI"},
	{"wyoming", "WY"},
	{"district of columbia", "DC"},
	{"american samoa", "AS"},
	{"guam", "GU"},
	{"northern mariana islands", "MP"},
	{"puerto rico", "PR"},
	{"united states minor outlying islands", "UM"},
	{"u.s. virgin islands", "VI"},
}

var codes = func() map[string]struct{} {
	m := make(map[string]struct{}, len(states))
	for _, s := range states {
		m[s.code] = struct{}{}
	}
	return m
}()

// IsCode reports whether code is one of the canonical uppercase codes.
func IsCode(code string) bool {
	_, ok := codes[code]
	return ok
}

// Codes returns the canonical codes in table order.
func Codes() []string {
	out := make([]string, 0, len(states))
	for _, s := range states {
		out = append(out, s.code)
	}
	return out
}
