// Package flights describes the input contract of the external one-way
// flight search tool the agent is allowed to call.
//
// Information Hiding:
// - Default parameter values hidden behind DefaultParams
// - Schema reflection settings hidden

package flights

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

const (
	// Toolkit is the tool-provider name registered with the gateway.
	Toolkit = "GoogleFlights"
	// SearchOneWayTool is the only tool the agent invokes.
	SearchOneWayTool = Toolkit + "_SearchOneWayFlights"
)

// Defaults the prompt documents for optional inputs.
const (
	DefaultCurrency    = "USD"
	DefaultTravelClass = TravelClassEconomy
	DefaultNumAdults   = 1
	DefaultNumChildren = 0
	DefaultMaxStops    = "ANY"
	DefaultSortBy      = "TOP_FLIGHTS"
)

// TravelClass values accepted by the tool.
const (
	TravelClassEconomy        = "ECONOMY"
	TravelClassPremiumEconomy = "PREMIUM_ECONOMY"
	TravelClassBusiness       = "BUSINESS"
	TravelClassFirst          = "FIRST"
)

// SearchParams is the Action Input for SearchOneWayTool.
type SearchParams struct {
	DepartureAirportCode string `json:"departure_airport_code" jsonschema:"required,minLength=3,maxLength=3" jsonschema_description:"3-letter uppercase IATA code of the departure airport"`
	ArrivalAirportCode   string `json:"arrival_airport_code" jsonschema:"required,minLength=3,maxLength=3" jsonschema_description:"3-letter uppercase IATA code of the arrival airport"`
	OutboundDate         string `json:"outbound_date" jsonschema:"required" jsonschema_description:"Departure date in YYYY-MM-DD format"`
	CurrencyCode         string `json:"currency_code,omitempty" jsonschema:"default=USD" jsonschema_description:"ISO currency code for prices"`
	TravelClass          string `json:"travel_class,omitempty" jsonschema:"enum=ECONOMY,enum=PREMIUM_ECONOMY,enum=BUSINESS,enum=FIRST,default=ECONOMY"`
	NumAdults            int    `json:"num_adults,omitempty" jsonschema:"minimum=1,default=1"`
	NumChildren          int    `json:"num_children" jsonschema:"minimum=0,default=0"`
	MaxStops             string `json:"max_stops,omitempty" jsonschema:"default=ANY" jsonschema_description:"Maximum number of stops: a number or ANY"`
	SortBy               string `json:"sort_by,omitempty" jsonschema:"default=TOP_FLIGHTS" jsonschema_description:"Server-side sort order such as TOP_FLIGHTS or PRICE"`
}

// DefaultParams returns params for a route and date with every optional
// input set to its documented default. Inputs are not checked.
func DefaultParams(from, to, date string) SearchParams {
	return SearchParams{
		DepartureAirportCode: from,
		ArrivalAirportCode:   to,
		OutboundDate:         date,
		CurrencyCode:         DefaultCurrency,
		TravelClass:          DefaultTravelClass,
		NumAdults:            DefaultNumAdults,
		NumChildren:          DefaultNumChildren,
		MaxStops:             DefaultMaxStops,
		SortBy:               DefaultSortBy,
	}
}

// ActionInput renders params the way the prompt's Action Input blocks do.
func (p SearchParams) ActionInput() (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal action input: %w", err)
	}
	return string(data), nil
}

func reflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		DoNotReference:             true,
	}
}

// Schema returns the JSON schema of SearchParams.
func Schema() *jsonschema.Schema {
	s := reflector().Reflect(&SearchParams{})
	s.Title = SearchOneWayTool
	s.Description = "Search one-way flights between two airports on a date."
	return s
}
