package search

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/Dan9191/finance-sage/internal/models"
)

// PropertyIndex is an in-memory full-text index over the stay catalogue
type PropertyIndex struct {
	index bleve.Index
}

type propertyDoc struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Amenities   []string `json:"amenities"`
}

// NewPropertyIndex builds the index from the given properties
func NewPropertyIndex(properties []models.Property) (*PropertyIndex, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	batch := index.NewBatch()
	for _, p := range properties {
		doc := propertyDoc{
			Title:       p.Title,
			Description: p.Description,
			Location:    p.Location,
			Amenities:   p.Amenities,
		}
		if err := batch.Index(p.ID, doc); err != nil {
			return nil, fmt.Errorf("failed to add to batch: %w", err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to execute batch: %w", err)
	}

	return &PropertyIndex{index: index}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	doc := bleve.NewDocumentMapping()

	text := bleve.NewTextFieldMapping()
	text.Store = false
	for _, field := range []string{"title", "description", "location", "amenities"} {
		doc.AddFieldMappingsAt(field, text)
	}

	indexMapping.DefaultMapping = doc
	return indexMapping
}

// Search returns IDs of properties matching the query, best match first.
// A blank query matches nothing.
func (p *PropertyIndex) Search(query string, limit int) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	// prefix match on the last word so "bea" finds "beach" while typing
	words := strings.Fields(strings.ToLower(query))
	match := bleve.NewMatchQuery(query)
	prefix := bleve.NewPrefixQuery(words[len(words)-1])
	q := bleve.NewDisjunctionQuery(match, prefix)

	req := bleve.NewSearchRequest(q)
	req.Size = limit
	res, err := p.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	ids := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}

// Close releases the index
func (p *PropertyIndex) Close() error {
	return p.index.Close()
}
