package refdata

import "sort"

// Room is a bookable room type within a hotel.
type Room struct {
	Type     string
	Capacity int
	Price    float64
}

// Hotel is one entry in the accommodation catalog.
// Category is one of "budget", "mid-range", "luxury". Price is the nightly
// rate of the cheapest displayed room.
type Hotel struct {
	ID          string
	Name        string
	Location    string
	State       string
	Category    string
	Rating      float64
	Price       float64
	Description string
	Amenities   []string
	Rooms       []Room
}

// Hotels returns the full hotel catalog. The returned slice is shared;
// callers must not modify it.
func Hotels() []Hotel {
	return hotelCatalog
}

// HotelByID returns the catalog entry with the given id and whether it exists.
func HotelByID(id string) (Hotel, bool) {
	for _, h := range hotelCatalog {
		if h.ID == id {
			return h, true
		}
	}
	return Hotel{}, false
}

// FilterHotels returns the catalog entries in the given state and/or
// category. Empty arguments match everything.
func FilterHotels(state, category string) []Hotel {
	out := []Hotel{}
	for _, h := range hotelCatalog {
		if state != "" && h.State != state {
			continue
		}
		if category != "" && h.Category != category {
			continue
		}
		out = append(out, h)
	}
	return out
}

// HotelGroup is the hotels of one state along a route, ordered by that
// state's fixed distance from the origin.
type HotelGroup struct {
	State      string
	DistanceKM int
	Hotels     []Hotel
}

// hotelRoute mirrors attractionRoute for the hotel corridors. The hotel
// table has one extra row (Karnataka origins) and a different default.
type hotelRoute struct {
	Origins []string
	Dests   []string
	Either  []string
	States  []string
}

var hotelRoutes = []hotelRoute{
	{
		Origins: []string{"bangalore", "bengaluru"},
		Dests:   []string{"kashmir", "srinagar"},
		States: []string{"Maharashtra", "Rajasthan", "Delhi", "Punjab",
			"Himachal Pradesh", "Jammu & Kashmir"},
	},
	{
		Origins: []string{"mumbai"},
		Dests:   []string{"kashmir"},
		States:  []string{"Maharashtra", "Rajasthan", "Delhi", "Punjab", "Jammu & Kashmir"},
	},
	{
		Origins: []string{"delhi"},
		Dests:   []string{"kashmir"},
		States:  []string{"Delhi", "Punjab", "Himachal Pradesh", "Jammu & Kashmir"},
	},
	{
		Either: []string{"rajasthan", "jaipur"},
		States: []string{"Rajasthan", "Delhi"},
	},
	// Karnataka origins heading anywhere else stay regional.
	{
		Origins: []string{"bangalore", "bengaluru", "karnataka"},
		Dests:   []string{""},
		States:  []string{"Karnataka", "Maharashtra", "Goa"},
	},
}

// defaultHotelStates is the fallback bucket: hotels in the major cities.
var defaultHotelStates = []string{"Maharashtra", "Delhi", "Karnataka", "Rajasthan"}

// stateDistances is the fixed approximate distance (km) of each state from
// a generic origin, used only to order route groups. Karnataka is 0 for
// Bangalore origins and 500 otherwise.
var stateDistances = map[string]int{
	"Maharashtra":      400,
	"Goa":              300,
	"Rajasthan":        800,
	"Delhi":            1000,
	"Punjab":           1200,
	"Himachal Pradesh": 1300,
	"Jammu & Kashmir":  1500,
}

const defaultStateDistance = 500

// HotelsAlongRoute returns hotels grouped by state for the route between
// origin and destination, ordered nearest-state first. attractionStates are
// the states of the trip's selected attractions; their hotels are included
// even when off the matched corridor.
func HotelsAlongRoute(origin, destination string, attractionStates []string) []HotelGroup {
	states := map[string]bool{}
	for _, s := range matchHotelStates(origin, destination) {
		states[s] = true
	}
	for _, s := range attractionStates {
		if s != "" {
			states[s] = true
		}
	}

	groups := []HotelGroup{}
	for state := range states {
		hotels := FilterHotels(state, "")
		if len(hotels) == 0 {
			continue
		}
		groups = append(groups, HotelGroup{
			State:      state,
			DistanceKM: stateDistance(state, origin),
			Hotels:     hotels,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].DistanceKM != groups[j].DistanceKM {
			return groups[i].DistanceKM < groups[j].DistanceKM
		}
		return groups[i].State < groups[j].State
	})
	return groups
}

// matchHotelStates walks the hotel route table in order; first match wins,
// otherwise the default bucket applies.
func matchHotelStates(origin, destination string) []string {
	for _, r := range hotelRoutes {
		if len(r.Either) > 0 {
			if containsAny(origin, r.Either) || containsAny(destination, r.Either) {
				return r.States
			}
			continue
		}
		// A route row with the empty-string destination matches any
		// destination (the Karnataka-origin row).
		if containsAny(origin, r.Origins) && containsAny(destination, r.Dests) {
			return r.States
		}
	}
	return defaultHotelStates
}

// stateDistance returns the fixed ordering distance for a state.
func stateDistance(state, origin string) int {
	if state == "Karnataka" {
		if containsAny(origin, []string{"bangalore", "bengaluru"}) {
			return 0
		}
		return defaultStateDistance
	}
	if d, ok := stateDistances[state]; ok {
		return d
	}
	return defaultStateDistance
}

var hotelCatalog = []Hotel{
	// Maharashtra (Mumbai-Pune corridor)
	{
		ID: "hotel-001", Name: "Grand Plaza Hotel", Location: "Mumbai, Maharashtra",
		State: "Maharashtra", Category: "luxury", Rating: 4.5, Price: 150,
		Description: "Luxurious hotel in the heart of Mumbai with stunning city views.",
		Amenities:   []string{"WiFi", "Pool", "Gym", "Restaurant", "Spa", "Parking"},
		Rooms: []Room{
			{"Standard Room", 2, 150},
			{"Deluxe Suite", 3, 250},
			{"Presidential Suite", 4, 400},
		},
	},
	{
		ID: "hotel-002", Name: "Budget Inn Express", Location: "Pune, Maharashtra",
		State: "Maharashtra", Category: "budget", Rating: 3.8, Price: 40,
		Description: "Affordable and comfortable stay for budget travelers.",
		Amenities:   []string{"WiFi", "AC", "Breakfast", "Parking"},
		Rooms: []Room{
			{"Single Room", 1, 30},
			{"Double Room", 2, 40},
			{"Family Room", 4, 60},
		},
	},

	// Rajasthan
	{
		ID: "hotel-003", Name: "Heritage Palace Hotel", Location: "Jaipur, Rajasthan",
		State: "Rajasthan", Category: "luxury", Rating: 4.7, Price: 180,
		Description: "Experience royal hospitality in a heritage property.",
		Amenities:   []string{"WiFi", "Pool", "Restaurant", "Cultural Shows", "Spa", "Parking"},
		Rooms: []Room{
			{"Royal Room", 2, 180},
			{"Maharaja Suite", 3, 300},
			{"Palace Suite", 4, 500},
		},
	},
	{
		ID: "hotel-004", Name: "Desert Comfort Inn", Location: "Udaipur, Rajasthan",
		State: "Rajasthan", Category: "mid-range", Rating: 4.0, Price: 80,
		Description: "Comfortable accommodation with lake views.",
		Amenities:   []string{"WiFi", "Restaurant", "Rooftop Terrace", "Parking"},
		Rooms: []Room{
			{"Standard Room", 2, 80},
			{"Lake View Room", 2, 120},
		},
	},

	// Delhi
	{
		ID: "hotel-005", Name: "Capital Grand Hotel", Location: "New Delhi, Delhi",
		State: "Delhi", Category: "luxury", Rating: 4.6, Price: 200,
		Description: "Premium hotel near major attractions in Delhi.",
		Amenities:   []string{"WiFi", "Pool", "Gym", "Multiple Restaurants", "Spa", "Concierge"},
		Rooms: []Room{
			{"Deluxe Room", 2, 200},
			{"Executive Suite", 3, 350},
		},
	},
	{
		ID: "hotel-006", Name: "Delhi Budget Stay", Location: "New Delhi, Delhi",
		State: "Delhi", Category: "budget", Rating: 3.5, Price: 35,
		Description: "Clean and affordable rooms in central Delhi.",
		Amenities:   []string{"WiFi", "AC", "Breakfast"},
		Rooms: []Room{
			{"Standard Room", 2, 35},
			{"Triple Room", 3, 50},
		},
	},

	// Punjab
	{
		ID: "hotel-007", Name: "Punjab Heritage Hotel", Location: "Amritsar, Punjab",
		State: "Punjab", Category: "mid-range", Rating: 4.2, Price: 90,
		Description: "Traditional Punjabi hospitality near Golden Temple.",
		Amenities:   []string{"WiFi", "Restaurant", "Cultural Programs", "Parking"},
		Rooms: []Room{
			{"Standard Room", 2, 90},
			{"Family Suite", 4, 140},
		},
	},

	// Himachal Pradesh
	{
		ID: "hotel-008", Name: "Mountain View Resort", Location: "Shimla, Himachal Pradesh",
		State: "Himachal Pradesh", Category: "mid-range", Rating: 4.3, Price: 100,
		Description: "Scenic mountain resort with breathtaking views.",
		Amenities:   []string{"WiFi", "Restaurant", "Bonfire", "Trekking", "Parking"},
		Rooms: []Room{
			{"Valley View Room", 2, 100},
			{"Mountain Suite", 3, 150},
		},
	},

	// Jammu & Kashmir
	{
		ID: "hotel-009", Name: "Kashmir Paradise Hotel", Location: "Srinagar, Jammu & Kashmir",
		State: "Jammu & Kashmir", Category: "luxury", Rating: 4.8, Price: 160,
		Description: "Luxury accommodation with Dal Lake views.",
		Amenities:   []string{"WiFi", "Restaurant", "Shikara Rides", "Garden", "Spa"},
		Rooms: []Room{
			{"Lake View Room", 2, 160},
			{"Houseboat Suite", 3, 250},
		},
	},
	{
		ID: "hotel-010", Name: "Valley Budget Inn", Location: "Srinagar, Jammu & Kashmir",
		State: "Jammu & Kashmir", Category: "budget", Rating: 3.9, Price: 45,
		Description: "Affordable stay in the beautiful Kashmir valley.",
		Amenities:   []string{"WiFi", "Heating", "Breakfast", "Parking"},
		Rooms: []Room{
			{"Standard Room", 2, 45},
			{"Family Room", 4, 70},
		},
	},

	// Karnataka
	{
		ID: "hotel-011", Name: "Tech City Hotel", Location: "Bangalore, Karnataka",
		State: "Karnataka", Category: "mid-range", Rating: 4.1, Price: 85,
		Description: "Modern hotel in the IT capital of India.",
		Amenities:   []string{"WiFi", "Gym", "Restaurant", "Business Center", "Parking"},
		Rooms: []Room{
			{"Standard Room", 2, 85},
			{"Business Suite", 2, 130},
		},
	},

	// Goa
	{
		ID: "hotel-012", Name: "Beach Paradise Resort", Location: "Goa",
		State: "Goa", Category: "luxury", Rating: 4.6, Price: 170,
		Description: "Beachfront resort with water sports and nightlife.",
		Amenities:   []string{"WiFi", "Pool", "Beach Access", "Water Sports", "Restaurant", "Bar"},
		Rooms: []Room{
			{"Sea View Room", 2, 170},
			{"Beach Villa", 4, 300},
		},
	},
}
