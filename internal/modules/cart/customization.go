package cart

import (
	"encoding/json"

	"github.com/gowebpki/jcs"
)

// Customization holds the optional personalization a buyer can request for a
// customizable product. A nil *Customization (no customization requested) is
// distinct from a zero-valued one: the two produce different line keys.
type Customization struct {
	Text  string `json:"text,omitempty"`
	Color string `json:"color,omitempty"`
	Size  string `json:"size,omitempty"`
}

// canonical returns the RFC 8785 canonical JSON form of the customization,
// or "" for nil. Using a canonical serialization makes line identity immune
// to field ordering.
func (c *Customization) canonical() string {
	if c == nil {
		return ""
	}
	raw, err := json.Marshal(c)
	if err != nil {
		// a struct of strings cannot fail to marshal
		panic(err)
	}
	canon, err := jcs.Transform(raw)
	if err != nil {
		panic(err)
	}
	return string(canon)
}

// Equal reports field-wise equality, treating nil as equal only to nil.
func (c *Customization) Equal(other *Customization) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}

// lineKey identifies a cart line: the product plus the exact customization.
type lineKey struct {
	productID     string
	customization string
}

func keyFor(productID string, c *Customization) lineKey {
	return lineKey{productID: productID, customization: c.canonical()}
}
