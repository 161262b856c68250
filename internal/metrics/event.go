package metrics

import "time"

type EventType string

const (
	EventPageView     EventType = "page_view"
	EventPropertyView EventType = "property_view"
	EventSearch       EventType = "search"
	EventLogin        EventType = "login"
	EventSignup       EventType = "signup"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
