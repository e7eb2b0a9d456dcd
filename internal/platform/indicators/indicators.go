// Package indicators exposes the fixed catalog of World Development
// Indicator codes and their display labels.
package indicators

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Indicator codes referenced directly by the dashboard.
const (
	CO2Total      = "EN.ATM.CO2E.KT"
	CO2PerCapita  = "EN.ATM.CO2E.PC"
	Population    = "SP.POP.TOTL"
	UrbanShare    = "SP.URB.TOTL.IN.ZS"
	GDPPerCapita  = "NY.GDP.PCAP.PP.KD"
	Electricity   = "EG.ELC.ACCS.ZS"
	Agriculture   = "AG.LND.AGRI.ZS"
	ResourceRents = "NY.GDP.TOTL.RT.ZS"
	Renewables    = "EG.FEC.RNEW.ZS"
)

// ErrUnknownIndicator reports a key that is not part of the catalog.
var ErrUnknownIndicator = errors.New("unknown indicator")

//go:embed indicators.yaml
var embeddedCatalog []byte

var defaultCatalog = mustParse(embeddedCatalog)

// Indicator is one catalog entry.
type Indicator struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
}

// Catalog is an ordered, read-only indicator mapping.
type Catalog struct {
	entries []Indicator
	byKey   map[string]int
}

type catalogFile struct {
	Indicators []Indicator `yaml:"indicators"`
}

// Default returns the embedded catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Parse decodes a YAML catalog.
func Parse(r io.Reader) (*Catalog, error) {
	if r == nil {
		return nil, fmt.Errorf("catalog reader is required")
	}
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode indicator catalog: %w", err)
	}
	return New(file.Indicators)
}

// New builds a catalog from entries, preserving their order.
func New(entries []Indicator) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("indicator catalog is empty")
	}
	c := &Catalog{
		entries: make([]Indicator, 0, len(entries)),
		byKey:   make(map[string]int, len(entries)),
	}
	for i, entry := range entries {
		key := strings.TrimSpace(entry.Key)
		label := strings.TrimSpace(entry.Label)
		if key == "" {
			return nil, fmt.Errorf("indicator %d: key is required", i)
		}
		if label == "" {
			return nil, fmt.Errorf("indicator %q: label is required", key)
		}
		if _, dup := c.byKey[key]; dup {
			return nil, fmt.Errorf("indicator %q: duplicate key", key)
		}
		c.byKey[key] = len(c.entries)
		c.entries = append(c.entries, Indicator{Key: key, Label: label})
	}
	return c, nil
}

// Lookup returns the indicator for key.
func (c *Catalog) Lookup(key string) (Indicator, bool) {
	if c == nil {
		return Indicator{}, false
	}
	idx, ok := c.byKey[key]
	if !ok {
		return Indicator{}, false
	}
	return c.entries[idx], true
}

// Label resolves the display label for key.
func (c *Catalog) Label(key string) (string, error) {
	entry, ok := c.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownIndicator, key)
	}
	return entry.Label, nil
}

// Has reports whether key is part of the catalog.
func (c *Catalog) Has(key string) bool {
	_, ok := c.Lookup(key)
	return ok
}

// All returns a copy of the entries in catalog order.
func (c *Catalog) All() []Indicator {
	if c == nil {
		return nil
	}
	out := make([]Indicator, len(c.entries))
	copy(out, c.entries)
	return out
}

// Keys returns the indicator keys in catalog order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, len(c.entries))
	for i, entry := range c.entries {
		keys[i] = entry.Key
	}
	return keys
}

func mustParse(data []byte) *Catalog {
	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("load embedded indicator catalog: %v", err))
	}
	return c
}
