package airport

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Directory serves the bundled list until the full list has been loaded from
// disk. The full list is read at most once; failed loads are retried on the
// next call.
type Directory struct {
	path   string
	logger *zap.Logger
	onLoad func(error)

	group singleflight.Group
	mu    sync.RWMutex
	full  []Record
}

// DirectoryOption configures a Directory.
type DirectoryOption func(*Directory)

// WithLoadObserver registers fn to be called after every load attempt.
func WithLoadObserver(fn func(error)) DirectoryOption {
	return func(d *Directory) { d.onLoad = fn }
}

// NewDirectory returns a directory backed by the JSON file at path. An empty
// path means only the bundled list is available.
func NewDirectory(path string, logger *zap.Logger, opts ...DirectoryOption) *Directory {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Directory{path: path, logger: logger}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Full returns the full list, loading it on first use. Concurrent callers
// share a single load.
func (d *Directory) Full(ctx context.Context) ([]Record, error) {
	d.mu.RLock()
	cached := d.full
	d.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}
	if d.path == "" {
		return nil, fmt.Errorf("no airport file configured")
	}

	ch := d.group.DoChan(d.path, func() (interface{}, error) {
		d.mu.RLock()
		cached := d.full
		d.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		list, err := LoadFile(d.path)
		if d.onLoad != nil {
			d.onLoad(err)
		}
		if err != nil {
			return nil, err
		}
		d.mu.Lock()
		d.full = list
		d.mu.Unlock()
		d.logger.Info("loaded airport list",
			zap.String("op", "airport.Directory.Full"),
			zap.String("file", d.path),
			zap.Int("airports", len(list)),
		)
		return list, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]Record), nil
	}
}

// List returns the full list when it can be loaded and the bundled list
// otherwise.
func (d *Directory) List(ctx context.Context) []Record {
	if d.path == "" {
		return Bundled
	}
	list, err := d.Full(ctx)
	if err != nil {
		d.logger.Warn("falling back to bundled airport list",
			zap.String("op", "airport.Directory.List"),
			zap.Error(err),
		)
		return Bundled
	}
	return list
}

// Resolver returns a resolver over whatever List returns.
func (d *Directory) Resolver(ctx context.Context) *Resolver {
	return NewResolver(d.List(ctx))
}

type rawRecord struct {
	IATA      string    `json:"iata"`
	ICAO      string    `json:"icao"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Latitude  flexFloat `json:"latitude"`
	Longitude flexFloat `json:"longitude"`
}

// flexFloat accepts coordinates encoded either as numbers or as strings.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" || s == `\\N` {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %s: %w", b, err)
	}
	*f = flexFloat(v)
	return nil
}

// LoadFile reads an airport array from a JSON file, dropping entries without
// a usable IATA code.
func LoadFile(path string) ([]Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read airport file %s: %w", path, err)
	}
	return Decode(b)
}

// Decode parses an airport array. Codes are upper-cased and entries whose
// code is not three letters are dropped.
func Decode(b []byte) ([]Record, error) {
	var raw []rawRecord
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode airport list: %w", err)
	}
	out := make([]Record, 0, len(raw))
	for _, r := range raw {
		iata := strings.ToUpper(strings.TrimSpace(r.IATA))
		if !threeLetters.MatchString(iata) {
			continue
		}
		icao := r.ICAO
		if icao == `\N` {
			icao = ""
		}
		out = append(out, Record{
			IATA:      iata,
			ICAO:      icao,
			Name:      r.Name,
			City:      r.City,
			Country:   r.Country,
			Latitude:  float64(r.Latitude),
			Longitude: float64(r.Longitude),
		})
	}
	return out, nil
}
