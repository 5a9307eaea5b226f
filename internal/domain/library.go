package domain

// CityGroup is the display grouping of the saved library: one group per
// city, cities ordered by first save, items in save order within the group.
// Groups are derived on demand from the library slice and never persisted.
type CityGroup struct {
	City  string `json:"city"`
	Items []POI  `json:"items"`
}

// GroupByCity partitions the saved library into city groups.
func GroupByCity(library []POI) []CityGroup {
	groups := []CityGroup{}
	index := map[string]int{}
	for _, poi := range library {
		i, ok := index[poi.City]
		if !ok {
			i = len(groups)
			index[poi.City] = i
			groups = append(groups, CityGroup{City: poi.City})
		}
		groups[i].Items = append(groups[i].Items, poi)
	}
	return groups
}
