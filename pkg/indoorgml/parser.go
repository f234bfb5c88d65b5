package indoorgml

import (
	"fmt"
	"os"

	"github.com/beetlebugorg/indoorgml/internal/parser"
)

// Parser parses IndoorGML JSON building descriptions.
//
// Create a parser with NewParser and use Parse or ParseWithOptions to build
// models.
type Parser interface {
	// Parse reads an IndoorGML JSON document and returns the parsed model.
	//
	// The document must follow the single-layer, single-graph shape
	// produced by IndoorGML XML→JSON conversion. Returns
	// ErrMalformedDocument when a required path is missing or has the
	// wrong shape; no partial model is returned.
	Parse(data []byte) (*Model, error)

	// ParseWithOptions parses a document with custom options.
	//
	// Use ParseOptions to control bounding-box seeding, geometry
	// validation, and spatial index construction.
	ParseWithOptions(data []byte, opts ParseOptions) (*Model, error)

	// ParseFile reads the document from disk and parses it with default
	// options.
	ParseFile(filename string) (*Model, error)
}

// NewParser creates a new IndoorGML parser with default settings.
//
// Example:
//
//	parser := indoorgml.NewParser()
//	model, err := parser.ParseFile("FJK-Haus.json")
func NewParser() Parser {
	return &parserWrapper{}
}

// parserWrapper delegates to the internal extractor and converts types
type parserWrapper struct{}

func (p *parserWrapper) Parse(data []byte) (*Model, error) {
	return p.ParseWithOptions(data, DefaultParseOptions())
}

func (p *parserWrapper) ParseWithOptions(data []byte, opts ParseOptions) (*Model, error) {
	internalOpts := parser.ExtractOptions{
		SeedBoundsFromData: opts.SeedBoundsFromData,
		ValidateGeometry:   opts.ValidateGeometry,
	}
	internalModel, err := parser.Extract(data, internalOpts)
	if err != nil {
		return nil, err
	}
	return convertModel(internalModel, opts), nil
}

func (p *parserWrapper) ParseFile(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return p.Parse(data)
}
