package types

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// namedElement keeps Name nil when the attribute is missing
type namedElement struct {
	Name *string `xml:"name,attr"`
}

// rawType mirrors the children of a <type> element. Slices keep the first
// occurrence reachable when an element repeats.
type rawType struct {
	Nominal  []string       `xml:"nominal"`
	Lifetime []string       `xml:"lifetime"`
	Restock  []string       `xml:"restock"`
	Min      []string       `xml:"min"`
	QuantMin []string       `xml:"quantmin"`
	QuantMax []string       `xml:"quantmax"`
	Cost     []string       `xml:"cost"`
	Category []namedElement `xml:"category"`
	Usage    []namedElement `xml:"usage"`
}

// Extract decodes every <type> element of the document, in document order
func Extract(r io.Reader) ([]Item, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	items := make([]Item, 0)
	seen := make(map[string]struct{})
	sawRoot := false

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		sawRoot = true
		if start.Name.Local != "type" {
			continue
		}

		name, ok := attr(start, "name")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w (type #%d)", ErrMissingName, len(items)+1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}

		var raw rawType
		if err := decoder.DecodeElement(&raw, &start); err != nil {
			return nil, fmt.Errorf("%w: type %q: %v", ErrMalformedDocument, name, err)
		}

		item, err := raw.toItem(name)
		if err != nil {
			return nil, err
		}

		seen[name] = struct{}{}
		items = append(items, item)
	}

	if !sawRoot {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedDocument)
	}

	return items, nil
}

func (raw rawType) toItem(name string) (Item, error) {
	item := Item{Name: name}

	values := map[string][]string{
		FieldNominal:  raw.Nominal,
		FieldLifetime: raw.Lifetime,
		FieldRestock:  raw.Restock,
		FieldMin:      raw.Min,
		FieldQuantMin: raw.QuantMin,
		FieldQuantMax: raw.QuantMax,
		FieldCost:     raw.Cost,
	}

	for _, f := range numericFields {
		texts := values[f.name]
		if len(texts) == 0 {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(texts[0]))
		if err != nil {
			return Item{}, fmt.Errorf("%w: type %q field %s: %q", ErrInvalidField, name, f.name, texts[0])
		}
		*f.ref(&item) = &n
	}

	if len(raw.Category) > 0 && raw.Category[0].Name != nil {
		category := *raw.Category[0].Name
		item.Category = &category
	}

	for _, usage := range raw.Usage {
		if usage.Name != nil && *usage.Name != "" {
			item.Usages = append(item.Usages, *usage.Name)
		}
	}

	return item, nil
}

func attr(start xml.StartElement, local string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}
