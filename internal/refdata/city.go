package refdata

import "strings"

// City is one entry in the destination catalog.
// Cost is one of "budget", "moderate", "expensive"; Popularity is one of
// "popular", "trending", "hidden". CostIndex is the display form ($..$$$).
type City struct {
	ID          int
	Name        string
	Country     string
	Region      string
	Cost        string
	Popularity  string
	CostIndex   string
	Description string
	Highlights  []string
}

// CityFilter narrows the city catalog. Zero-valued fields match everything.
// Query is a free-text search over name, country and description.
type CityFilter struct {
	Query      string
	Region     string
	Cost       string
	Popularity string
}

// Cities returns the full city catalog. The returned slice is shared;
// callers must not modify it.
func Cities() []City {
	return cityCatalog
}

// FilterCities returns the catalog entries matching every set field of f.
func FilterCities(f CityFilter) []City {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := []City{}
	for _, c := range cityCatalog {
		if f.Region != "" && c.Region != f.Region {
			continue
		}
		if f.Cost != "" && c.Cost != f.Cost {
			continue
		}
		if f.Popularity != "" && c.Popularity != f.Popularity {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(strings.ToLower(c.Country), query) &&
			!strings.Contains(strings.ToLower(c.Description), query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

var cityCatalog = []City{
	// India
	{1, "Mumbai", "India", "Asia", "moderate", "popular", "$$", "Financial capital with vibrant culture and Bollywood", []string{"Gateway of India", "Marine Drive", "Bollywood"}},
	{2, "Delhi", "India", "Asia", "moderate", "popular", "$$", "Historic capital with Mughal architecture", []string{"Red Fort", "India Gate", "Qutub Minar"}},
	{3, "Bangalore", "India", "Asia", "moderate", "trending", "$$", "Silicon Valley of India with pleasant weather", []string{"Lalbagh", "Cubbon Park", "Tech Hub"}},
	{4, "Jaipur", "India", "Asia", "budget", "popular", "$", "Pink City with royal palaces and forts", []string{"Amber Fort", "Hawa Mahal", "City Palace"}},
	{5, "Goa", "India", "Asia", "moderate", "popular", "$$", "Beach paradise with Portuguese heritage", []string{"Beaches", "Churches", "Nightlife"}},
	{6, "Varanasi", "India", "Asia", "budget", "hidden", "$", "Spiritual capital on the Ganges River", []string{"Ghats", "Temples", "Spirituality"}},
	{7, "Udaipur", "India", "Asia", "moderate", "trending", "$$", "City of Lakes with romantic palaces", []string{"Lake Palace", "City Palace", "Lakes"}},

	// Asia
	{8, "Tokyo", "Japan", "Asia", "expensive", "popular", "$$$", "Modern metropolis blending tradition and innovation", []string{"Shibuya", "Temples", "Technology"}},
	{9, "Bangkok", "Thailand", "Asia", "budget", "popular", "$", "Vibrant city with temples and street food", []string{"Grand Palace", "Street Food", "Markets"}},
	{10, "Singapore", "Singapore", "Asia", "expensive", "popular", "$$$", "Garden city with futuristic architecture", []string{"Marina Bay", "Gardens", "Food"}},
	{11, "Bali", "Indonesia", "Asia", "budget", "popular", "$", "Tropical paradise with temples and beaches", []string{"Beaches", "Temples", "Rice Terraces"}},
	{12, "Dubai", "UAE", "Asia", "expensive", "popular", "$$$", "Luxury destination with modern wonders", []string{"Burj Khalifa", "Shopping", "Desert"}},
	{13, "Seoul", "South Korea", "Asia", "moderate", "trending", "$$", "K-pop capital with ancient palaces", []string{"Palaces", "K-pop", "Food"}},
	{14, "Kyoto", "Japan", "Asia", "expensive", "popular", "$$$", "Ancient capital with temples and gardens", []string{"Temples", "Gardens", "Geishas"}},

	// Europe
	{15, "Paris", "France", "Europe", "expensive", "popular", "$$$", "City of Light with iconic landmarks", []string{"Eiffel Tower", "Louvre", "Cuisine"}},
	{16, "London", "UK", "Europe", "expensive", "popular", "$$$", "Historic capital with royal heritage", []string{"Big Ben", "Museums", "Culture"}},
	{17, "Rome", "Italy", "Europe", "moderate", "popular", "$$", "Eternal City with ancient ruins", []string{"Colosseum", "Vatican", "History"}},
	{18, "Barcelona", "Spain", "Europe", "moderate", "popular", "$$", "Artistic city with Gaudí architecture", []string{"Sagrada Familia", "Beaches", "Art"}},
	{19, "Amsterdam", "Netherlands", "Europe", "expensive", "popular", "$$$", "Canal city with liberal culture", []string{"Canals", "Museums", "Bikes"}},
	{20, "Prague", "Czech Republic", "Europe", "budget", "trending", "$", "Fairy-tale city with medieval charm", []string{"Castle", "Old Town", "Beer"}},
	{21, "Santorini", "Greece", "Europe", "expensive", "trending", "$$$", "Island paradise with white-washed buildings", []string{"Sunsets", "Beaches", "Architecture"}},

	// North America
	{22, "New York", "USA", "North America", "expensive", "popular", "$$$", "The city that never sleeps", []string{"Statue of Liberty", "Times Square", "Broadway"}},
	{23, "Los Angeles", "USA", "North America", "expensive", "popular", "$$$", "Entertainment capital with beaches", []string{"Hollywood", "Beaches", "Entertainment"}},
	{24, "San Francisco", "USA", "North America", "expensive", "popular", "$$$", "Tech hub with iconic Golden Gate Bridge", []string{"Golden Gate", "Tech", "Hills"}},
	{25, "Cancun", "Mexico", "North America", "moderate", "popular", "$$", "Beach resort with Mayan ruins", []string{"Beaches", "Ruins", "Nightlife"}},
	{26, "Toronto", "Canada", "North America", "moderate", "trending", "$$", "Multicultural city with CN Tower", []string{"CN Tower", "Culture", "Food"}},

	// South America
	{27, "Rio de Janeiro", "Brazil", "South America", "moderate", "popular", "$$", "Carnival city with stunning beaches", []string{"Christ Redeemer", "Beaches", "Carnival"}},
	{28, "Buenos Aires", "Argentina", "South America", "budget", "trending", "$", "Paris of South America with tango", []string{"Tango", "Steak", "Culture"}},
	{29, "Lima", "Peru", "South America", "budget", "hidden", "$", "Gateway to Machu Picchu with cuisine", []string{"Cuisine", "History", "Coast"}},

	// Africa
	{30, "Cape Town", "South Africa", "Africa", "moderate", "trending", "$$", "Coastal city with Table Mountain", []string{"Table Mountain", "Beaches", "Wine"}},
	{31, "Marrakech", "Morocco", "Africa", "budget", "popular", "$", "Red City with souks and palaces", []string{"Souks", "Palaces", "Desert"}},
	{32, "Cairo", "Egypt", "Africa", "budget", "popular", "$", "Ancient city with pyramids", []string{"Pyramids", "Sphinx", "History"}},

	// Oceania
	{33, "Sydney", "Australia", "Oceania", "expensive", "popular", "$$$", "Harbor city with Opera House", []string{"Opera House", "Beaches", "Harbor"}},
	{34, "Melbourne", "Australia", "Oceania", "expensive", "trending", "$$$", "Cultural capital with coffee culture", []string{"Coffee", "Art", "Sports"}},
	{35, "Auckland", "New Zealand", "Oceania", "expensive", "hidden", "$$$", "City of Sails with natural beauty", []string{"Nature", "Sailing", "Volcanoes"}},
}
