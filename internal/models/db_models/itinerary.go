package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ItineraryDocument is the typed day-by-day plan stored as jsonb on trips
// and trip_versions. It is parsed once at the boundary (planner output or
// DB scan); everything downstream works on the typed tree.
type ItineraryDocument struct {
	Title             string         `json:"title"`
	Summary           string         `json:"summary,omitempty"`
	StartDate         string         `json:"start_date,omitempty"`
	EndDate           string         `json:"end_date,omitempty"`
	Tags              []string       `json:"tags,omitempty"`
	FairnessExplainer string         `json:"fairness_explainer,omitempty"`
	Days              []ItineraryDay `json:"days"`
}

type ItineraryDay struct {
	Day           int              `json:"day"`
	Themes        []string         `json:"themes,omitempty"`
	Location      string           `json:"location,omitempty"`
	SeasonalNotes string           `json:"seasonal_notes,omitempty"`
	Blocks        []ItineraryBlock `json:"blocks"`
	LocalTips     []string         `json:"local_tips,omitempty"`
	Pace          string           `json:"pace,omitempty"`
	BudgetBand    string           `json:"budget_band,omitempty"`
}

type ItineraryBlock struct {
	ID         string      `json:"id"`
	TimeOfDay  string      `json:"time_of_day,omitempty"`
	Main       Activity    `json:"main"`
	Parallel   *Activity   `json:"parallel,omitempty"`
	Rendezvous *Rendezvous `json:"rendezvous,omitempty"`
}

type Rendezvous struct {
	Time  string `json:"time"`
	Place string `json:"place"`
}

type Activity struct {
	Name          string   `json:"name"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	BestTime      string   `json:"best_time,omitempty"`
	CostPerPerson *float64 `json:"cost_per_person,omitempty"`
	MapHint       string   `json:"map_hint,omitempty"`

	// Enrichment fields, attached after a successful place lookup.
	Rating     *float64 `json:"rating,omitempty"`
	PriceLevel *int     `json:"price_level,omitempty"`
	PhotoURL   string   `json:"photo_url,omitempty"`

	// Suggested marks an activity whose name could not be matched against
	// a real place. The name also carries a " (suggested)" suffix so the
	// rendered itinerary keeps the historical look.
	Suggested bool `json:"suggested,omitempty"`
}

func (d ItineraryDocument) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *ItineraryDocument) Scan(value interface{}) error {
	if value == nil {
		*d = ItineraryDocument{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("unsupported itinerary column type %T", value)
	}
}

// ParseItineraryDocument parses planner output into the typed tree. An
// itinerary without days is rejected; the planner contract requires at
// least one.
func ParseItineraryDocument(raw string) (*ItineraryDocument, error) {
	var doc ItineraryDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, err
	}
	if len(doc.Days) == 0 {
		return nil, errors.New("itinerary has no days")
	}
	return &doc, nil
}
