// Package model defines the core data types shared across the application.
package model

import "strings"

// Card represents a single checklist entry fetched from a catalog table.
// All fields are free text as stored upstream; absent columns decode to "".
// Cards are never mutated after fetch.
type Card struct {
	SetName        string `json:"set"`
	CardNumber     string `json:"card"`
	Description    string `json:"player"` // possibly multi-valued ("A/B")
	TeamCity       string `json:"team_city"`
	TeamName       string `json:"team_name"` // possibly multi-valued ("Bruins/Leafs")
	Rookie         string `json:"rookie,omitempty"`
	Auto           string `json:"auto,omitempty"`
	Mem            string `json:"mem,omitempty"`
	SerialNumbered string `json:"serial,omitempty"`
	ShortPrints    string `json:"sps,omitempty"`
	Odds           string `json:"odds,omitempty"`
	PointValue     string `json:"points,omitempty"`
}

// HasMarker reports whether a boolean-ish marker field carries a meaningful
// value. Blank, "0" and case-insensitive "no" all count as absent.
func HasMarker(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" || v == "0" {
		return false
	}
	return !strings.EqualFold(v, "no")
}

// HasValue reports whether a numeric-ish field (serial numbering, points)
// carries a meaningful value. "no" is a legitimate value here, so only blank
// and "0" count as absent.
func HasValue(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}

// IsRookie reports whether the card is marked as a rookie card.
func (c Card) IsRookie() bool { return HasMarker(c.Rookie) }

// HasAuto reports whether the card carries an autograph marker.
func (c Card) HasAuto() bool { return HasMarker(c.Auto) }

// HasMem reports whether the card carries a memorabilia marker.
func (c Card) HasMem() bool { return HasMarker(c.Mem) }

// IsSerialNumbered reports whether the card is serial numbered.
func (c Card) IsSerialNumbered() bool { return HasValue(c.SerialNumbered) }

// FullTeam returns the city-qualified team string ("Boston Bruins").
func (c Card) FullTeam() string {
	return strings.TrimSpace(strings.TrimSpace(c.TeamCity) + " " + strings.TrimSpace(c.TeamName))
}

// SearchText returns the lowercased haystack used by free-text search: the
// fixed field set joined with spaces. The field list is part of the search
// contract and deliberately excludes nothing that is user-visible.
func (c Card) SearchText() string {
	return strings.ToLower(strings.Join([]string{
		c.SetName,
		c.CardNumber,
		c.Description,
		c.TeamCity,
		c.TeamName,
		c.Rookie,
		c.Auto,
		c.Mem,
		c.SerialNumbered,
		c.ShortPrints,
		c.Odds,
		c.PointValue,
	}, " "))
}
