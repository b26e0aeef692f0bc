// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/mr-compare/internal/awardsearch"
	"github.com/iwvelando/mr-compare/internal/report"
)

// FindEntry finds a partner entry by id in the report.
// Returns a pointer to the entry if found, nil otherwise.
func FindEntry(r report.Report, id string) *report.Entry {
	for i := range r.Partners {
		if r.Partners[i].Partner.ID == id {
			return &r.Partners[i]
		}
	}
	return nil
}

// FindLink finds a search link by tool id.
// Returns a pointer to the link if found, nil otherwise.
func FindLink(links []awardsearch.Link, id string) *awardsearch.Link {
	for i := range links {
		if links[i].ID == id {
			return &links[i]
		}
	}
	return nil
}
