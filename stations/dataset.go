package stations

// DefaultStations is the static city→station dataset loaded at process start.
// IDs follow the NOAA GSOD "stn-wban" convention. Priority is a fixed
// population-based rank used only to break fuzzy-match ties.
var DefaultStations = []Station{
	{ID: "476620-99999", Name: "Tokyo", Country: "JP", Latitude: 35.683, Longitude: 139.767, Aliases: []string{"Tōkyō"}, Priority: 1},
	{ID: "421820-99999", Name: "Delhi", Country: "IN", Latitude: 28.583, Longitude: 77.200, Aliases: []string{"New Delhi"}, Priority: 2},
	{ID: "545110-99999", Name: "Beijing", Country: "CN", Latitude: 39.933, Longitude: 116.283, Aliases: []string{"Peking"}, Priority: 3},
	{ID: "837800-99999", Name: "São Paulo", Country: "BR", Latitude: -23.627, Longitude: -46.655, Priority: 4},
	{ID: "766790-99999", Name: "Mexico City", Country: "MX", Latitude: 19.433, Longitude: -99.133, Aliases: []string{"Ciudad de México", "CDMX"}, Priority: 5},
	{ID: "623660-99999", Name: "Cairo", Country: "EG", Latitude: 30.133, Longitude: 31.400, Aliases: []string{"Al Qahirah"}, Priority: 6},
	{ID: "725053-94728", Name: "New York", Country: "US", Latitude: 40.779, Longitude: -73.969, Aliases: []string{"New York City", "NYC"}, Priority: 7},
	{ID: "875760-99999", Name: "Buenos Aires", Country: "AR", Latitude: -34.822, Longitude: -58.536, Priority: 8},
	{ID: "170600-99999", Name: "Istanbul", Country: "TR", Latitude: 40.967, Longitude: 28.817, Priority: 9},
	{ID: "276120-99999", Name: "Moscow", Country: "RU", Latitude: 55.833, Longitude: 37.617, Aliases: []string{"Moskva"}, Priority: 10},
	{ID: "722950-23174", Name: "Los Angeles", Country: "US", Latitude: 33.938, Longitude: -118.389, Aliases: []string{"LA"}, Priority: 11},
	{ID: "037720-99999", Name: "London", Country: "GB", Latitude: 51.478, Longitude: -0.461, Priority: 12},
	{ID: "071570-99999", Name: "Paris", Country: "FR", Latitude: 49.017, Longitude: 2.533, Priority: 13},
	{ID: "486980-99999", Name: "Singapore", Country: "SG", Latitude: 1.350, Longitude: 103.994, Priority: 14},
	{ID: "725300-94846", Name: "Chicago", Country: "US", Latitude: 41.995, Longitude: -87.934, Priority: 15},
	{ID: "411940-99999", Name: "Dubai", Country: "AE", Latitude: 25.255, Longitude: 55.364, Priority: 16},
	{ID: "404380-99999", Name: "Riyadh", Country: "SA", Latitude: 24.707, Longitude: 46.726, Aliases: []string{"Ar Riyad"}, Priority: 17},
	{ID: "712650-99999", Name: "Toronto", Country: "CA", Latitude: 43.677, Longitude: -79.631, Priority: 18},
	{ID: "947670-99999", Name: "Sydney", Country: "AU", Latitude: -33.946, Longitude: 151.177, Priority: 19},
	{ID: "103840-99999", Name: "Berlin", Country: "DE", Latitude: 52.467, Longitude: 13.400, Priority: 20},
	{ID: "082210-99999", Name: "Madrid", Country: "ES", Latitude: 40.467, Longitude: -3.550, Priority: 21},
	{ID: "162420-99999", Name: "Rome", Country: "IT", Latitude: 41.800, Longitude: 12.233, Aliases: []string{"Roma"}, Priority: 22},
	{ID: "637400-99999", Name: "Nairobi", Country: "KE", Latitude: -1.317, Longitude: 36.917, Priority: 23},
	{ID: "405820-99999", Name: "Kuwait City", Country: "KW", Latitude: 29.217, Longitude: 47.967, Aliases: []string{"Kuwait", "Al Kuwayt"}, Priority: 24},
	{ID: "411700-99999", Name: "Doha", Country: "QA", Latitude: 25.250, Longitude: 51.567, Aliases: []string{"Ad Dawhah"}, Priority: 25},
	{ID: "066700-99999", Name: "Zurich", Country: "CH", Latitude: 47.383, Longitude: 8.567, Aliases: []string{"Zürich"}, Priority: 26},
}
