package refdata

import "strings"

// Attraction is one entry in the attraction catalog.
type Attraction struct {
	ID            int
	Name          string
	Location      string
	State         string
	Lat           float64
	Lon           float64
	Category      string
	Description   string
	EstimatedTime string
}

// Attractions returns the full attraction catalog. The returned slice is
// shared; callers must not modify it.
func Attractions() []Attraction {
	return attractionCatalog
}

// AttractionByID returns the catalog entry with the given id and whether it
// exists.
func AttractionByID(id int) (Attraction, bool) {
	for _, a := range attractionCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return Attraction{}, false
}

// FilterAttractions returns the catalog entries in the given state and/or
// category. Empty arguments match everything.
func FilterAttractions(state, category string) []Attraction {
	out := []Attraction{}
	for _, a := range attractionCatalog {
		if state != "" && a.State != state {
			continue
		}
		if category != "" && a.Category != category {
			continue
		}
		out = append(out, a)
	}
	return out
}

// attractionRoute is one row of the fixed route table: when the trip's
// origin matches any origin substring and the destination matches any
// destination substring, attractions in the listed states are "along the
// route". A row with Either set matches when either endpoint contains one
// of those substrings instead.
type attractionRoute struct {
	Origins []string
	Dests   []string
	Either  []string
	States  []string
}

// attractionRoutes holds the known corridors, checked in order.
// The first matching row wins.
var attractionRoutes = []attractionRoute{
	// Bangalore → Kashmir: the long haul up the west side of the country.
	{
		Origins: []string{"bangalore", "bengaluru"},
		Dests:   []string{"kashmir", "srinagar"},
		States: []string{"Maharashtra", "Rajasthan", "Delhi", "Uttar Pradesh",
			"Punjab", "Himachal Pradesh", "Jammu and Kashmir"},
	},
	// Mumbai → Kashmir.
	{
		Origins: []string{"mumbai"},
		Dests:   []string{"kashmir"},
		States:  []string{"Rajasthan", "Delhi", "Punjab", "Jammu and Kashmir"},
	},
	// Delhi → Kashmir.
	{
		Origins: []string{"delhi"},
		Dests:   []string{"kashmir"},
		States:  []string{"Punjab", "Himachal Pradesh", "Jammu and Kashmir"},
	},
	// Any route touching Rajasthan.
	{
		Either: []string{"rajasthan", "jaipur"},
		States: []string{"Rajasthan", "Delhi", "Uttar Pradesh"},
	},
}

// defaultAttractionCategories is the fallback bucket when no corridor
// matches: the crowd-pleaser categories.
var defaultAttractionCategories = map[string]bool{
	"Monument": true,
	"Fort":     true,
	"Palace":   true,
}

// flightResultLimit caps suggestions for flights, where only the
// destination itself is reachable. roadResultLimit caps every other travel
// mode; long corridors can match more catalog entries than a suggestion
// list should carry.
const (
	flightResultLimit = 6
	roadResultLimit   = 12
)

// AttractionsAlongRoute returns the catalog subset considered "along the
// route" between origin and destination. Matching is a fixed substring
// lookup table with a default bucket; no geography involved.
//
// For flight trips only attractions at the destination are returned, capped
// at flightResultLimit; every other mode is capped at roadResultLimit.
func AttractionsAlongRoute(origin, destination, travelMode string) []Attraction {
	var matched []Attraction

	if route, ok := matchAttractionRoute(origin, destination); ok {
		states := map[string]bool{}
		for _, s := range route.States {
			states[s] = true
		}
		for _, a := range attractionCatalog {
			if states[a.State] {
				matched = append(matched, a)
			}
		}
	} else {
		for _, a := range attractionCatalog {
			if defaultAttractionCategories[a.Category] {
				matched = append(matched, a)
			}
		}
	}

	if travelMode == "flight" {
		dest := strings.ToLower(destination)
		atDest := []Attraction{}
		for _, a := range matched {
			if strings.Contains(strings.ToLower(a.Location), dest) {
				atDest = append(atDest, a)
			}
		}
		if len(atDest) > flightResultLimit {
			atDest = atDest[:flightResultLimit]
		}
		return atDest
	}

	if matched == nil {
		matched = []Attraction{}
	}
	if len(matched) > roadResultLimit {
		matched = matched[:roadResultLimit]
	}
	return matched
}

// matchAttractionRoute returns the first route-table row matching the pair.
func matchAttractionRoute(origin, destination string) (attractionRoute, bool) {
	for _, r := range attractionRoutes {
		if len(r.Either) > 0 {
			if containsAny(origin, r.Either) || containsAny(destination, r.Either) {
				return r, true
			}
			continue
		}
		if containsAny(origin, r.Origins) && containsAny(destination, r.Dests) {
			return r, true
		}
	}
	return attractionRoute{}, false
}

var attractionCatalog = []Attraction{
	// Karnataka
	{1, "Mysore Palace", "Mysore, Karnataka", "Karnataka", 12.3052, 76.6551, "Historical", "Magnificent royal palace with Indo-Saracenic architecture", "2-3 hours"},
	{2, "Hampi Ruins", "Hampi, Karnataka", "Karnataka", 15.3350, 76.4600, "Historical", "UNESCO World Heritage Site with ancient temples", "1-2 days"},

	// Maharashtra
	{3, "Gateway of India", "Mumbai, Maharashtra", "Maharashtra", 18.9220, 72.8347, "Monument", "Iconic arch monument overlooking Arabian Sea", "1-2 hours"},
	{4, "Ajanta Caves", "Aurangabad, Maharashtra", "Maharashtra", 20.5519, 75.7033, "Historical", "Ancient Buddhist cave monuments with paintings", "3-4 hours"},
	{5, "Ellora Caves", "Aurangabad, Maharashtra", "Maharashtra", 20.0269, 75.1793, "Historical", "Rock-cut temples of Hindu, Buddhist, and Jain faiths", "3-4 hours"},

	// Uttar Pradesh / Rajasthan
	{6, "Taj Mahal", "Agra, Uttar Pradesh", "Uttar Pradesh", 27.1751, 78.0421, "Monument", "Iconic white marble mausoleum, Wonder of the World", "2-3 hours"},
	{7, "Amber Fort", "Jaipur, Rajasthan", "Rajasthan", 26.9855, 75.8513, "Fort", "Majestic fort with stunning architecture and views", "2-3 hours"},
	{8, "Hawa Mahal", "Jaipur, Rajasthan", "Rajasthan", 26.9239, 75.8267, "Palace", "Palace of Winds with unique honeycomb design", "1 hour"},
	{9, "City Palace Jaipur", "Jaipur, Rajasthan", "Rajasthan", 26.9258, 75.8237, "Palace", "Royal residence with museums and courtyards", "2-3 hours"},
	{10, "Mehrangarh Fort", "Jodhpur, Rajasthan", "Rajasthan", 26.2989, 73.0189, "Fort", "One of the largest forts in India with panoramic views", "2-3 hours"},
	{11, "Lake Palace", "Udaipur, Rajasthan", "Rajasthan", 24.5760, 73.6819, "Palace", "Floating palace on Lake Pichola", "1-2 hours"},
	{12, "Jaisalmer Fort", "Jaisalmer, Rajasthan", "Rajasthan", 26.9157, 70.9083, "Fort", "Golden fort in the Thar Desert", "2-3 hours"},

	// Delhi
	{13, "Red Fort", "Delhi", "Delhi", 28.6562, 77.2410, "Fort", "Historic Mughal fort and UNESCO World Heritage Site", "2 hours"},
	{14, "Qutub Minar", "Delhi", "Delhi", 28.5244, 77.1855, "Monument", "Tallest brick minaret in the world", "1-2 hours"},
	{15, "India Gate", "Delhi", "Delhi", 28.6129, 77.2295, "Monument", "War memorial and iconic landmark", "1 hour"},
	{16, "Lotus Temple", "Delhi", "Delhi", 28.5535, 77.2588, "Temple", "Baháʼí House of Worship shaped like a lotus", "1 hour"},

	// Uttar Pradesh
	{17, "Agra Fort", "Agra, Uttar Pradesh", "Uttar Pradesh", 27.1795, 78.0211, "Fort", "UNESCO World Heritage Site, Mughal fort", "2 hours"},
	{18, "Fatehpur Sikri", "Agra, Uttar Pradesh", "Uttar Pradesh", 27.0945, 77.6661, "Historical", "Abandoned Mughal city with stunning architecture", "2-3 hours"},
	{19, "Varanasi Ghats", "Varanasi, Uttar Pradesh", "Uttar Pradesh", 25.3176, 82.9739, "Religious", "Sacred ghats on the Ganges River", "3-4 hours"},

	// Madhya Pradesh
	{20, "Khajuraho Temples", "Khajuraho, Madhya Pradesh", "Madhya Pradesh", 24.8318, 79.9199, "Temple", "UNESCO site famous for erotic sculptures", "3-4 hours"},
	{21, "Sanchi Stupa", "Sanchi, Madhya Pradesh", "Madhya Pradesh", 23.4793, 77.7398, "Buddhist", "Ancient Buddhist monument", "2 hours"},

	// Gujarat
	{22, "Somnath Temple", "Somnath, Gujarat", "Gujarat", 20.8880, 70.4013, "Temple", "One of the twelve Jyotirlinga shrines", "1-2 hours"},
	{23, "Rann of Kutch", "Kutch, Gujarat", "Gujarat", 23.8340, 69.6669, "Natural", "White salt desert, stunning during full moon", "4-5 hours"},

	// Himachal Pradesh & Jammu and Kashmir
	{24, "Rohtang Pass", "Manali, Himachal Pradesh", "Himachal Pradesh", 32.3726, 77.2493, "Natural", "High mountain pass with snow-capped peaks", "3-4 hours"},
	{25, "Solang Valley", "Manali, Himachal Pradesh", "Himachal Pradesh", 32.3082, 77.1537, "Adventure", "Adventure sports and skiing destination", "4-5 hours"},
	{26, "Dal Lake", "Srinagar, Kashmir", "Jammu and Kashmir", 34.1205, 74.8370, "Natural", "Iconic lake with houseboats and shikaras", "2-3 hours"},
	{27, "Gulmarg", "Gulmarg, Kashmir", "Jammu and Kashmir", 34.0484, 74.3805, "Adventure", "Ski resort and meadow of flowers", "1 day"},
	{28, "Pahalgam", "Pahalgam, Kashmir", "Jammu and Kashmir", 34.0161, 75.3150, "Natural", "Valley with rivers, lakes, and mountains", "1 day"},
	{29, "Vaishno Devi Temple", "Katra, Jammu", "Jammu and Kashmir", 33.0308, 74.9489, "Religious", "Sacred Hindu temple in the mountains", "1 day"},

	// Punjab
	{30, "Golden Temple", "Amritsar, Punjab", "Punjab", 31.6200, 74.8765, "Religious", "Holiest Sikh gurdwara with golden dome", "2-3 hours"},
	{31, "Wagah Border", "Amritsar, Punjab", "Punjab", 31.6044, 74.5726, "Cultural", "India-Pakistan border ceremony", "2 hours"},
}
