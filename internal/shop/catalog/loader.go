package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// Load decodes a YAML catalog document and builds a Store from it.
//
// The document has a single top-level "products" list:
//
//	products:
//	  - id: m1
//	    title: Regular Fit T-Shirt
//	    category: mens
//	    price: 899
//	    currency: INR
//	    image_url: https://example.com/m1.jpg
//	    detail_url: https://example.com/dp/m1
//	    description: Everyday essential.
func Load(r io.Reader) (*Store, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc catalogFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewStore(nil)
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewStore(doc.Products)
}

// LoadFile reads the catalog document at path.
func LoadFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	store, err := Load(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return store, nil
}
