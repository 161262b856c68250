package metrics

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period          string            `json:"period"`
	EventCounts     map[EventType]int `json:"event_counts"`
	PropertyViews   map[int]int       `json:"property_views"`
	SearchesByCity  map[string]int    `json:"searches_by_city"`
	Logins          int               `json:"logins"`
	Signups         int               `json:"signups"`
	TotalPageViews  int               `json:"total_page_views"`
	PropertyViewSum int               `json:"property_view_sum"`
}

// CalculateStats aggregates usage events since the given time.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:         since.Format("2006-01-02"),
		EventCounts:    make(map[EventType]int),
		PropertyViews:  make(map[int]int),
		SearchesByCity: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventPageView:
			stats.TotalPageViews++
		case EventPropertyView:
			if id, ok := metadata["property_id"].(float64); ok {
				stats.PropertyViews[int(id)]++
				stats.PropertyViewSum++
			}
		case EventSearch:
			if city, ok := metadata["city"].(string); ok && city != "" {
				stats.SearchesByCity[city]++
			}
		case EventLogin:
			stats.Logins++
		case EventSignup:
			stats.Signups++
		}
	}

	return stats, nil
}
