package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ncinga/temi-event-backend/logger"
	"github.com/ncinga/temi-event-backend/types"
)

const maxSearchResults = 20

// VisitorService serves fuzzy name lookup over a static visitor list loaded
// once at startup. The list is never mutated after load, so it is shared by
// all requests without locking. It is independent of the record store:
// lookup keeps working when storage is down.
type VisitorService struct {
	visitors []types.Visitor
}

// NewVisitorService builds a service over an already-loaded visitor list.
func NewVisitorService(visitors []types.Visitor) *VisitorService {
	return &VisitorService{visitors: visitors}
}

// LoadVisitorService reads the visitor list from a JSON file. A missing or
// malformed file is not fatal: the service starts with an empty directory
// and lookup returns no matches.
func LoadVisitorService(path string) *VisitorService {
	log := logger.GetLogger()

	visitors, err := loadVisitors(path)
	if err != nil {
		log.Warnw("Failed to load visitor directory, starting empty",
			"path", path,
			"error", err)
		return &VisitorService{}
	}

	log.Infow("Visitor directory loaded", "path", path, "count", len(visitors))
	return &VisitorService{visitors: visitors}
}

func loadVisitors(path string) ([]types.Visitor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read visitors file: %w", err)
	}
	var visitors []types.Visitor
	if err := json.Unmarshal(data, &visitors); err != nil {
		return nil, fmt.Errorf("failed to parse visitors file: %w", err)
	}
	return visitors, nil
}

// Search returns at most 20 visitors whose name contains the query,
// case-insensitively, in dataset order. An empty query matches nothing.
func (s *VisitorService) Search(query string) []types.Visitor {
	if query == "" {
		return []types.Visitor{}
	}

	q := strings.ToLower(query)
	results := make([]types.Visitor, 0, maxSearchResults)
	for _, v := range s.visitors {
		if v.Name == "" {
			continue
		}
		if strings.Contains(strings.ToLower(v.Name), q) {
			results = append(results, v)
			if len(results) == maxSearchResults {
				break
			}
		}
	}
	return results
}

// Count returns the number of loaded visitors.
func (s *VisitorService) Count() int {
	return len(s.visitors)
}
