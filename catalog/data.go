package catalog

import (
	"fmt"
	"time"
)

// records is the seeded table, in display order. Mumbai shares the
// Asia/Kolkata zone; its identity differs from a Kolkata entry by city.
var records = []Record{
	{ID: "UTC", Name: "Coordinated Universal Time", City: "UTC", Country: "Universal", OffsetLabel: "+00:00", Coordinates: Coordinates{Lat: 0, Lng: 0}},
	{ID: "America/New_York", Name: "Eastern Time", City: "New York", Country: "United States", OffsetLabel: "-05:00", Coordinates: Coordinates{Lat: 40.7128, Lng: -74.0060}},
	{ID: "America/Chicago", Name: "Central Time", City: "Chicago", Country: "United States", OffsetLabel: "-06:00", Coordinates: Coordinates{Lat: 41.8781, Lng: -87.6298}},
	{ID: "America/Denver", Name: "Mountain Time", City: "Denver", Country: "United States", OffsetLabel: "-07:00", Coordinates: Coordinates{Lat: 39.7392, Lng: -104.9903}},
	{ID: "America/Los_Angeles", Name: "Pacific Time", City: "Los Angeles", Country: "United States", OffsetLabel: "-08:00", Coordinates: Coordinates{Lat: 34.0522, Lng: -118.2437}},
	{ID: "Europe/London", Name: "Greenwich Mean Time", City: "London", Country: "United Kingdom", OffsetLabel: "+00:00", Coordinates: Coordinates{Lat: 51.5074, Lng: -0.1278}},
	{ID: "Europe/Paris", Name: "Central European Time", City: "Paris", Country: "France", OffsetLabel: "+01:00", Coordinates: Coordinates{Lat: 48.8566, Lng: 2.3522}},
	{ID: "Europe/Berlin", Name: "Central European Time", City: "Berlin", Country: "Germany", OffsetLabel: "+01:00", Coordinates: Coordinates{Lat: 52.5200, Lng: 13.4050}},
	{ID: "Asia/Tokyo", Name: "Japan Standard Time", City: "Tokyo", Country: "Japan", OffsetLabel: "+09:00", Coordinates: Coordinates{Lat: 35.6762, Lng: 139.6503}},
	{ID: "Asia/Dubai", Name: "Gulf Standard Time", City: "Dubai", Country: "UAE", OffsetLabel: "+04:00", Coordinates: Coordinates{Lat: 25.2048, Lng: 55.2708}},
	{ID: "Australia/Sydney", Name: "Australian Eastern Time", City: "Sydney", Country: "Australia", OffsetLabel: "+11:00", Coordinates: Coordinates{Lat: -33.8688, Lng: 151.2093}},
	{ID: "Asia/Singapore", Name: "Singapore Standard Time", City: "Singapore", Country: "Singapore", OffsetLabel: "+08:00", Coordinates: Coordinates{Lat: 1.3521, Lng: 103.8198}},
	{ID: "America/Sao_Paulo", Name: "Brasília Time", City: "São Paulo", Country: "Brazil", OffsetLabel: "-03:00", Coordinates: Coordinates{Lat: -23.5505, Lng: -46.6333}},
	{ID: "Africa/Cairo", Name: "Eastern European Time", City: "Cairo", Country: "Egypt", OffsetLabel: "+02:00", Coordinates: Coordinates{Lat: 30.0444, Lng: 31.2357}},
	{ID: "Asia/Kolkata", Name: "India Standard Time", City: "Mumbai", Country: "India", OffsetLabel: "+05:30", Coordinates: Coordinates{Lat: 19.0760, Lng: 72.8777}},
}

func init() {
	// Seeded zones must resolve; a failure here is a build defect, not a
	// runtime condition.
	for i := range records {
		loc, err := time.LoadLocation(records[i].ID)
		if err != nil {
			panic(fmt.Sprintf("catalog: invalid seeded zone %q: %v", records[i].ID, err))
		}
		records[i].loc = loc
	}
}
