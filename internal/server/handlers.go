package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/iwvelando/mr-compare/internal/airport"
	"github.com/iwvelando/mr-compare/internal/awardsearch"
	"github.com/iwvelando/mr-compare/internal/observability"
	"github.com/iwvelando/mr-compare/internal/partner"
	"github.com/iwvelando/mr-compare/internal/report"
	"github.com/iwvelando/mr-compare/pkg/constants"
)

// maxAirportSearchLimit caps the limit query parameter of /api/airports.
const maxAirportSearchLimit = 50

type partnersResponse struct {
	Balance        int64                  `json:"balance"`
	GiftRate       float64                `json:"giftRate"`
	GiftValue      float64                `json:"giftValue"`
	Category       partner.CategoryFilter `json:"category"`
	SortBy         partner.SortKey        `json:"sortBy,omitempty"`
	Direction      partner.Direction      `json:"sortDir"`
	AboveGiftCount int                    `json:"aboveGiftCount"`
	Rows           []report.Entry         `json:"rows"`
}

type partnerResponse struct {
	report.Entry
	Balance  int64              `json:"balance"`
	Strategy string             `json:"strategy,omitempty"`
	Regions  []regionalStrategy `json:"regions,omitempty"`
}

type regionalStrategy struct {
	Region   partner.Region `json:"region"`
	Label    string         `json:"label"`
	Strategy string         `json:"strategy"`
}

type searchLinksResponse struct {
	Search awardsearch.SearchParams `json:"search"`
	Links  []awardsearch.Link       `json:"links"`
}

type searchLinkResponse struct {
	Search awardsearch.SearchParams `json:"search"`
	Link   awardsearch.Link         `json:"link"`
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"mapToken": h.app.Map.Token,
	})
}

// balance reads the balance query parameter, falling back to the configured
// balance when it is absent.
func (h *handler) balance(r *http.Request) int64 {
	q := r.URL.Query()
	if !q.Has("balance") {
		return h.app.BalanceValue()
	}
	return partner.ParseBalance(q.Get("balance"))
}

func (h *handler) handlePartners(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePartners"
	q := r.URL.Query()

	category, err := partner.ParseCategory(q.Get("category"))
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}
	sortBy, err := partner.ParseSortKey(q.Get("sortBy"))
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}
	direction, err := partner.ParseDirection(q.Get("sortDir"))
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	rep := report.Build(h.partners, nil, report.Request{
		Balance: h.balance(r),
		Query:   partner.Query{Category: category, SortBy: sortBy, Direction: direction},
	})

	h.writeJSON(w, http.StatusOK, partnersResponse{
		Balance:        rep.Balance,
		GiftRate:       rep.GiftRate,
		GiftValue:      rep.GiftValue,
		Category:       rep.Category,
		SortBy:         rep.SortBy,
		Direction:      rep.Direction,
		AboveGiftCount: rep.AboveGiftCount(),
		Rows:           rep.Partners,
	})
}

func (h *handler) handlePartner(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePartner"
	id := chi.URLParam(r, "id")

	p, ok := partner.Lookup(id)
	if !ok {
		h.respondError(w, r, http.StatusNotFound, fmt.Sprintf("unknown partner %q", id), op)
		return
	}

	balance := h.balance(r)
	rep := report.Build([]partner.Partner{p}, nil, report.Request{Balance: balance})
	if len(rep.Partners) != 1 {
		h.respondError(w, r, http.StatusInternalServerError, "failed to compute partner row", op)
		return
	}

	resp := partnerResponse{Entry: rep.Partners[0], Balance: balance}
	if p.HasRegionalStrategy() {
		for _, region := range p.RegionalStrategies() {
			resp.Regions = append(resp.Regions, regionalStrategy{
				Region:   region,
				Label:    region.Label(),
				Strategy: p.StrategyByRegion[region],
			})
		}
	} else {
		resp.Strategy = p.Strategy
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// readSearch decodes and validates a search-links body. It writes the error
// response itself and reports whether the caller may continue.
func (h *handler) readSearch(w http.ResponseWriter, r *http.Request, op string) (awardsearch.SearchParams, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
			return awardsearch.SearchParams{}, false
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to read request body: %v", err), op)
		return awardsearch.SearchParams{}, false
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}
	if err := validateSearchLinksBody(body); err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return awardsearch.SearchParams{}, false
	}

	var req searchLinksRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err), op)
		return awardsearch.SearchParams{}, false
	}
	params, err := req.apply(h.app.SearchParams())
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return awardsearch.SearchParams{}, false
	}
	return params, true
}

func (h *handler) builder(r *http.Request) *awardsearch.Builder {
	return awardsearch.NewBuilder(
		awardsearch.WithResolver(h.directory.Resolver(r.Context())),
		awardsearch.WithClock(h.clock),
		awardsearch.WithGrayPaneBase(h.app.Tools.GrayPaneBase),
	)
}

func (h *handler) handleSearchLinks(w http.ResponseWriter, r *http.Request) {
	params, ok := h.readSearch(w, r, "server.handleSearchLinks")
	if !ok {
		return
	}

	links := h.builder(r).Links(params)
	for _, l := range links {
		observability.ObserveLink(l.ID)
	}
	h.writeJSON(w, http.StatusOK, searchLinksResponse{Search: params, Links: links})
}

func (h *handler) handleSearchLink(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSearchLink"
	params, ok := h.readSearch(w, r, op)
	if !ok {
		return
	}

	link, err := h.builder(r).Link(chi.URLParam(r, "tool"), params)
	if err != nil {
		h.respondError(w, r, http.StatusNotFound, err.Error(), op)
		return
	}
	observability.ObserveLink(link.ID)
	h.writeJSON(w, http.StatusOK, searchLinkResponse{Search: params, Link: link})
}

func (h *handler) handleAirports(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleAirports"
	q := r.URL.Query()

	limit := constants.DefaultAirportSearchLimit
	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxAirportSearchLimit {
			h.respondError(w, r, http.StatusBadRequest,
				fmt.Sprintf("limit must be an integer between 1 and %d", maxAirportSearchLimit), op)
			return
		}
		limit = n
	}

	matches := airport.Search(h.directory.List(r.Context()), q.Get("q"), limit)
	if matches == nil {
		matches = []airport.Record{}
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"query":    q.Get("q"),
		"airports": matches,
	})
}

func (h *handler) handleResolveAirport(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("q")
	iata := h.directory.Resolver(r.Context()).ResolveIATA(text)
	h.logger.Debug("resolved airport",
		zap.String("op", "server.handleResolveAirport"),
		zap.String("query", text),
		zap.String("iata", iata),
	)
	h.writeJSON(w, http.StatusOK, map[string]string{
		"query": text,
		"iata":  iata,
	})
}
