package categorize

import (
	"context"
	"strings"

	"github.com/recircle-platform/recircle-backend/pkg/logger"
)

// DefaultCategory backstops descriptions with no keyword hits.
const DefaultCategory = "Clothing"

// keywordsByCategory drives the suggestion. Matching is substring-based
// over the lowercased description, and the category with the most hits
// wins; ties break in the order listed here.
var keywordsByCategory = []struct {
	category string
	keywords []string
}{
	{"Clothing", []string{"shirt", "pants", "dress", "jacket", "coat", "sweater", "jeans", "t-shirt", "blouse", "skirt", "shoes", "boots", "sneakers", "hat", "scarf", "gloves"}},
	{"Electronics", []string{"phone", "laptop", "computer", "tv", "television", "tablet", "ipad", "iphone", "android", "charger", "cable", "headphones", "speaker", "camera", "printer"}},
	{"Food", []string{"can", "canned", "food", "rice", "beans", "pasta", "soup", "vegetables", "fruits", "bread", "cereal", "snacks", "chips", "cookies", "beverages", "drinks"}},
	{"Furniture", []string{"chair", "table", "sofa", "couch", "bed", "desk", "bookshelf", "cabinet", "dresser", "lamp", "mirror", "rug", "carpet", "mattress", "pillow"}},
}

// Service suggests a listing category from free-text descriptions.
type Service interface {
	Suggest(ctx context.Context, description string) (string, error)
}

type service struct {
	logg *logger.Logger
}

func NewService(logg *logger.Logger) (Service, error) {
	return &service{logg: logg}, nil
}

func (s *service) Suggest(ctx context.Context, description string) (string, error) {
	lowered := strings.ToLower(description)

	best := DefaultCategory
	bestHits := 0
	for _, entry := range keywordsByCategory {
		hits := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(lowered, keyword) {
				hits++
			}
		}
		if hits > bestHits {
			best = entry.category
			bestHits = hits
		}
	}
	return best, nil
}
