package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so that identical
// records always map to the same key.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// AvailabilityEverywhere marks an ETF as universally available.
// Such a record passes every availability filter regardless of the
// requested markets.
const AvailabilityEverywhere = "everywhere"

// ETF represents a single exchange-traded fund in the catalog.
//
// Optional numeric attributes are pointers: a nil pointer means the
// value is absent from the record, which is distinct from a present
// zero (an ETF with Fees pointing at 0 is a fee-free fund, not a fund
// with unknown fees). The match engine and the validator rely on this
// distinction.
type ETF struct {
	Id   ID     `json:"-"`
	Name string `json:"name"`
	ISIN string `json:"isin"`
	// Category is a free-text bucket such as "Tech" or "Obligations".
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Sectors     []string `json:"sectors,omitempty"`
	Region      string   `json:"region,omitempty"`
	Type        string   `json:"type,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	// Replication is the index replication method, e.g. "physical" or "synthetic".
	Replication string `json:"replication,omitempty"`
	// Availability names the market the fund is sold in, or the
	// AvailabilityEverywhere sentinel.
	Availability string   `json:"availability,omitempty"`
	Strategies   []string `json:"strategies,omitempty"`
	Issuer       string   `json:"emetteur,omitempty"`
	// Symbol is the exchange ticker, used for quote enrichment.
	Symbol string `json:"symbol,omitempty"`

	Fees        *float64 `json:"fees,omitempty"`
	Performance *float64 `json:"performance,omitempty"`
	Risk        *int     `json:"risk,omitempty"`
	ESGScore    *float64 `json:"esgScore,omitempty"`
	Price       *float64 `json:"price,omitempty"`

	InsertedAt time.Time `json:"-"` // When the record was inserted into the catalog store
	UpdatedAt  time.Time `json:"-"` // When the record was last updated
}

// ContentID returns the content-based ID for the ETF, derived from its ISIN.
func (e *ETF) ContentID() ID {
	return IDFromContent(e.ISIN)
}

// SearchCriteria is the canonical, fully-typed form of the structured
// criteria returned by the semantic-analysis service.
//
// Every field is optional. A nil slice, nil pointer, or empty string
// means "no constraint on this dimension" and is satisfied by every
// candidate.
type SearchCriteria struct {
	Sectors        []string
	FeesMax        *float64
	MinPerformance *float64
	Region         []string
	Type           []string
	Replication    string
	Availability   []string
	Risk           *int
	Strategy       string
	ESG            *float64
	Issuers        []string
}

// IsUnconstrained reports whether every criteria field is at its default,
// i.e. filtering with the criteria is a pure validity pass-through.
func (c *SearchCriteria) IsUnconstrained() bool {
	return len(c.Sectors) == 0 &&
		c.FeesMax == nil &&
		c.MinPerformance == nil &&
		len(c.Region) == 0 &&
		len(c.Type) == 0 &&
		c.Replication == "" &&
		len(c.Availability) == 0 &&
		c.Risk == nil &&
		c.Strategy == "" &&
		c.ESG == nil &&
		len(c.Issuers) == 0
}

// SearchResult pairs an ETF with its relevance score for one query.
// It is transient and never stored.
type SearchResult struct {
	ETF   *ETF
	Score int
}
