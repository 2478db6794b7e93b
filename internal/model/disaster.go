package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Unknown is stored for any disaster attribute the caller left empty.
const Unknown = "Unknown"

// Text is a string that also accepts JSON numbers, so coordinates posted as
// numbers and as strings both decode.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

// Disaster is a disaster record kept in the disaster store.
// JSON names follow the payloads produced by the NASA feed route.
type Disaster struct {
	ID        string    `json:"id,omitempty"`
	Name      Text      `json:"DISASTER_NAME"`
	Type      Text      `json:"DISASTER_TYPE"`
	Latitude  Text      `json:"LATITUDE"`
	Longitude Text      `json:"LONGITUDE"`
	DateTime  Text      `json:"DATE_TIME"`
	County    Text      `json:"county"`
	State     Text      `json:"state"`
	Country   Text      `json:"country"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Normalize replaces every empty attribute with Unknown.
func (d *Disaster) Normalize() {
	for _, f := range []*Text{&d.Name, &d.Type, &d.Latitude, &d.Longitude, &d.DateTime, &d.County, &d.State, &d.Country} {
		if *f == "" {
			*f = Unknown
		}
	}
}

// DisasterDeclaration is one FEMA disaster declaration summary.
type DisasterDeclaration struct {
	DisasterNumber    int        `json:"disasterNumber"`
	State             string     `json:"state"`
	DeclarationType   string     `json:"declarationType"`
	DeclarationDate   time.Time  `json:"declarationDate"`
	IncidentType      string     `json:"incidentType"`
	DeclarationTitle  string     `json:"declarationTitle"`
	IncidentBeginDate *time.Time `json:"incidentBeginDate"`
	IncidentEndDate   *time.Time `json:"incidentEndDate"`
	DesignatedArea    string     `json:"designatedArea"`
	FIPSStateCode     string     `json:"fipsStateCode"`
	FIPSCountyCode    string     `json:"fipsCountyCode"`
}

// DeclarationList is the response of the active-declarations lookup.
type DeclarationList struct {
	Declarations []DisasterDeclaration `json:"DisasterDeclarationsSummaries"`
}

// CountyFIPS identifies a US county by its census FIPS codes.
// County holds the five-digit code (state prefix included).
type CountyFIPS struct {
	State  string
	County string
}

// NaturalEvent is a single event of the NASA EONET feed, reduced to one point.
type NaturalEvent struct {
	Title      string
	Categories []string
	Latitude   float64
	Longitude  float64
	Date       time.Time
}

// Location is a reverse-geocoded place description.
type Location struct {
	County  string `json:"county,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// RecentDisaster is a NASA event enriched with its location.
type RecentDisaster struct {
	Name      string  `json:"DISASTER_NAME"`
	Type      string  `json:"DISASTER_TYPE"`
	Latitude  float64 `json:"LATITUDE"`
	Longitude float64 `json:"LONGITUDE"`
	DateTime  string  `json:"DATE_TIME"`
	Location
}
