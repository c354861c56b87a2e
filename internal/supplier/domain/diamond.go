// Package domain defines the supplier-side entities: diamonds, certificates,
// and the search filter that selects them.
package domain

// Certificate holds the grading attributes of a specific diamond. All fields
// are optional; absent values stay nil and are never synthesized.
type Certificate struct {
	Carats     *float64 `json:"carats,omitempty"`
	Shape      *string  `json:"shape,omitempty"`
	Color      *string  `json:"color,omitempty"`
	Clarity    *string  `json:"clarity,omitempty"`
	Cut        *string  `json:"cut,omitempty"`
	CertNumber *string  `json:"certNumber,omitempty"`
}

// DiamondRecord is the normalized shape of one supplier inventory item.
// PriceCents is in integer minor currency units; a diamond without a usable
// price carries nil, never zero.
type DiamondRecord struct {
	ID          string       `json:"id"`
	PriceCents  *int64       `json:"priceCents,omitempty"`
	ImageURL    *string      `json:"imageUrl,omitempty"`
	Certificate *Certificate `json:"certificate,omitempty"`
}

// CaratRange is an inclusive carat weight range; either bound may be absent.
type CaratRange struct {
	Min *float64
	Max *float64
}

// DiamondFilter selects diamonds from the supplier inventory. It exists only
// to build one supplier query and is discarded afterwards.
type DiamondFilter struct {
	// Shape is the storefront label (e.g., "Brilliant Round"); it is mapped to
	// a supplier shape code, and unmapped labels simply omit the shape filter.
	Shape string
	Carat *CaratRange
	Sort  string
	Limit int
}

// DefaultSearchLimit bounds the supplier result count when the caller does not
// specify one.
const DefaultSearchLimit = 24

// shapeCodes maps storefront shape labels to supplier shape codes.
var shapeCodes = map[string]string{
	"Brilliant Round": "ROUND",
	"Round":           "ROUND",
	"Oval":            "OVAL",
	"Princess":        "PRINCESS",
	"Cushion":         "CUSHION",
	"Emerald":         "EMERALD",
	"Pear":            "PEAR",
	"Marquise":        "MARQUISE",
	"Radiant":         "RADIANT",
	"Asscher":         "ASSCHER",
	"Heart":           "HEART",
}

// ShapeCode resolves a storefront shape label to the supplier's shape code.
// The second return value reports whether the label is known.
func ShapeCode(label string) (string, bool) {
	code, ok := shapeCodes[label]
	return code, ok
}
