// Package catalog is a static product data provider: the scan and search
// flows resolve products here before recording them in the scan history.
// There is no network lookup; the catalog ships with the application.
package catalog

import (
	"strings"

	"github.com/glowlab/skinflow/internal/common"
	"github.com/glowlab/skinflow/internal/models"
)

// AvailableGoals is the fixed display catalog of skin goals, in the order
// the profile screens present them.
var AvailableGoals = []string{
	"Hydration", "Anti-aging", "Brightening", "Acne Control",
	"Dark Spots", "Pore Minimizing", "Oil Control", "Sensitive Skin",
}

// scanResultID identifies the product the barcode scanner resolves to.
const scanResultID = "1"

var products = []models.Product{
	{
		ID:      "1",
		Name:    "Hydrating Face Serum",
		Brand:   "GlowLab",
		Image:   "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?w=400&h=400&fit=crop",
		Score:   92,
		Verdict: models.VerdictGood,
		Ingredients: []string{
			"hyaluronic acid", "glycerin", "niacinamide", "panthenol",
		},
		Tag: "Hydration",
	},
	{
		ID:      "2",
		Name:    "Gentle Foam Cleanser",
		Brand:   "GlowLab",
		Image:   "https://images.unsplash.com/photo-1556228720-195a672e8a03?w=400&h=400&fit=crop",
		Score:   88,
		Verdict: models.VerdictGood,
		Ingredients: []string{
			"coco-glucoside", "glycerin", "chamomile extract",
		},
		Tag: "Sensitive Skin",
	},
	{
		ID:      "3",
		Name:    "Vitamin C Serum",
		Brand:   "Lumière",
		Image:   "https://images.unsplash.com/photo-1570194065650-d99fb4bedf0a?w=400&h=400&fit=crop",
		Score:   85,
		Verdict: models.VerdictGood,
		Ingredients: []string{
			"ascorbic acid", "ferulic acid", "vitamin e",
		},
		Tag: "Brightening",
	},
	{
		ID:      "4",
		Name:    "Daily Hydrating Cream",
		Brand:   "GlowLab",
		Image:   "https://images.unsplash.com/photo-1611930022073-b7a4ba5fcccd?w=400&h=400&fit=crop",
		Score:   90,
		Verdict: models.VerdictGood,
		Ingredients: []string{
			"ceramides", "squalane", "glycerin", "shea butter",
		},
		Tag: "Hydration",
	},
	{
		ID:      "5",
		Name:    "Balancing Toner",
		Brand:   "Derma Pure",
		Image:   "https://images.unsplash.com/photo-1601049541289-9b1b7bbbfe19?w=400&h=400&fit=crop",
		Score:   78,
		Verdict: models.VerdictGood,
		Ingredients: []string{
			"witch hazel", "niacinamide", "zinc pca",
		},
		Tag: "Oil Control",
	},
	{
		ID:      "6",
		Name:    "Night Repair Cream",
		Brand:   "Lumière",
		Image:   "https://images.unsplash.com/photo-1617897903246-719242758050?w=400&h=400&fit=crop",
		Score:   83,
		Verdict: models.VerdictGood,
		Ingredients: []string{
			"retinol", "peptides", "squalane",
		},
		Tag: "Anti-aging",
	},
	{
		ID:      "7",
		Name:    "Exfoliating Scrub",
		Brand:   "Derma Pure",
		Image:   "https://images.unsplash.com/photo-1608248543803-ba4f8c70ae0b?w=400&h=400&fit=crop",
		Score:   61,
		Verdict: models.VerdictCaution,
		Ingredients: []string{
			"walnut shell powder", "salicylic acid", "menthol",
		},
		Tag: "Pore Minimizing",
	},
	{
		ID:      "8",
		Name:    "Scented Body Lotion",
		Brand:   "Velvet Rose",
		Image:   "https://images.unsplash.com/photo-1571781926291-c477ebfd024b?w=400&h=400&fit=crop",
		Score:   34,
		Verdict: models.VerdictAvoid,
		Ingredients: []string{
			"fragrance", "alcohol denat", "limonene", "linalool",
		},
		Tag: "Hydration",
	},
}

// Catalog answers product lookups against the built-in product set.
type Catalog struct {
	products []models.Product
}

func New() *Catalog {
	return &Catalog{products: products}
}

// All returns every catalog product.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Scan returns the product a barcode scan resolves to.
func (c *Catalog) Scan() models.Product {
	p, _ := c.Lookup(scanResultID)
	return p
}

// Lookup finds a product by id, or common.ErrNotFound.
func (c *Catalog) Lookup(id string) (models.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, common.ErrNotFound
}

// Search returns the first product whose name or brand contains the query,
// case-insensitively, or common.ErrNotFound.
func (c *Catalog) Search(query string) (models.Product, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return models.Product{}, common.ErrNotFound
	}
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Brand), q) {
			return p, nil
		}
	}
	return models.Product{}, common.ErrNotFound
}

// Recommendations picks up to n products matching the profile's goals
// (falling back to top-scoring "good" products) and skips anything listing
// an ingredient the profile is allergic to.
func (c *Catalog) Recommendations(p *models.Profile, n int) []models.Product {
	if n <= 0 {
		return nil
	}

	goals := map[string]bool{}
	if p != nil {
		for _, g := range p.Goals {
			goals[g] = true
		}
	}

	var out []models.Product
	add := func(prod models.Product) {
		if len(out) >= n || prod.Verdict != models.VerdictGood {
			return
		}
		if p != nil && FlagAllergies(prod, p.Allergies) > 0 {
			return
		}
		for _, seen := range out {
			if seen.ID == prod.ID {
				return
			}
		}
		out = append(out, prod)
	}

	for _, prod := range c.products {
		if goals[prod.Tag] {
			add(prod)
		}
	}
	for _, prod := range c.products {
		add(prod)
	}
	return out
}

// FlagAllergies counts how many of the product's listed ingredients appear
// in the allergy list (case-insensitive substring match, the way the
// ingredient notices are matched on the dashboard).
func FlagAllergies(p models.Product, allergies []models.Allergy) int {
	count := 0
	for _, ing := range p.Ingredients {
		for _, al := range allergies {
			if al.Ingredient == "" {
				continue
			}
			if strings.Contains(strings.ToLower(ing), strings.ToLower(al.Ingredient)) {
				count++
				break
			}
		}
	}
	return count
}
