package server

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/iwvelando/mr-compare/internal/awardsearch"
)

// searchLinksSchema describes the POST /api/search-links body. Every field is
// optional; missing fields take the configured search defaults.
var searchLinksSchema = map[string]interface{}{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]interface{}{
		"origin":      map[string]interface{}{"type": "string", "maxLength": 100},
		"destination": map[string]interface{}{"type": "string", "maxLength": 100},
		"dateFrom":    map[string]interface{}{"type": "string", "maxLength": 32},
		"dateTo":      map[string]interface{}{"type": "string", "maxLength": 32},
		"routeType":   map[string]interface{}{"type": "string", "maxLength": 32},
		"cabin":       map[string]interface{}{"type": "string", "maxLength": 32},
		"stops": map[string]interface{}{
			"type":    "integer",
			"minimum": 0,
			"maximum": awardsearch.MaxStops,
		},
	},
}

var searchLinksSchemaLoader = gojsonschema.NewGoLoader(searchLinksSchema)

// validateSearchLinksBody checks a raw request body against searchLinksSchema.
func validateSearchLinksBody(body []byte) error {
	result, err := gojsonschema.Validate(searchLinksSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("invalid search: %s", strings.Join(errs, "; "))
	}
	return nil
}

// searchLinksRequest distinguishes absent fields from empty ones.
type searchLinksRequest struct {
	Origin      *string `json:"origin"`
	Destination *string `json:"destination"`
	DateFrom    *string `json:"dateFrom"`
	DateTo      *string `json:"dateTo"`
	RouteType   *string `json:"routeType"`
	Cabin       *string `json:"cabin"`
	Stops       *int    `json:"stops"`
}

// apply overlays the request on base.
func (req searchLinksRequest) apply(base awardsearch.SearchParams) (awardsearch.SearchParams, error) {
	p := base
	if req.Origin != nil {
		p.Origin = *req.Origin
	}
	if req.Destination != nil {
		p.Destination = *req.Destination
	}
	if req.DateFrom != nil {
		p.DateFrom = *req.DateFrom
	}
	if req.DateTo != nil {
		p.DateTo = *req.DateTo
	}
	if req.RouteType != nil {
		rt, err := awardsearch.ParseRouteType(*req.RouteType)
		if err != nil {
			return p, err
		}
		p.RouteType = rt
	}
	if req.Cabin != nil {
		c, err := awardsearch.ParseCabin(*req.Cabin)
		if err != nil {
			return p, err
		}
		p.Cabin = c
	}
	if req.Stops != nil {
		p.Stops = *req.Stops
	}
	return p, nil
}
