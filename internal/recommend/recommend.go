// Package recommend derives product recommendations and the inventory
// listing that grounds the text-generation prompt.
//
// Recommendations come from three tiers tried in order:
//
//  1. products whose brand or model appears in the message,
//  2. products priced at or below the first "$<digits>" amount in the message,
//  3. the cheapest products in the catalog.
//
// The first tier to yield anything wins; the cheapest tier runs whenever the
// list is still empty after the other two. A blank or whitespace-only brand or
// model never counts as a mention.
package recommend

import (
	"regexp"
	"sort"
	"strings"

	"github.com/set-night/phonechat/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxRecommendations caps the number of products returned.
const MaxRecommendations = 3

var budgetPattern = regexp.MustCompile(`\$(\d+)`)

// Tier identifies which stage produced a result.
type Tier string

const (
	TierNone     Tier = "none"
	TierMention  Tier = "mention"
	TierBudget   Tier = "budget"
	TierCheapest Tier = "cheapest"
)

// Result is computed per request and never reused.
type Result struct {
	Products []domain.CellPhone
	Context  string
	Tier     Tier
}

// Recommend is total: every input, including an empty catalog, yields a result.
func Recommend(message string, catalog []domain.CellPhone) Result {
	res := Result{
		Context: Context(catalog),
		Tier:    TierNone,
	}
	if len(catalog) == 0 {
		return res
	}

	if products := byMention(message, catalog); len(products) > 0 {
		res.Products, res.Tier = products, TierMention
		return res
	}

	if budget, ok := ExtractBudget(message); ok {
		if products := byBudget(budget, catalog); len(products) > 0 {
			res.Products, res.Tier = products, TierBudget
			return res
		}
	}

	res.Products, res.Tier = cheapest(catalog), TierCheapest
	return res
}

// Context renders one "<brand> <model> ($<price>)" line per product, in catalog order.
func Context(catalog []domain.CellPhone) string {
	lines := make([]string, len(catalog))
	for i, p := range catalog {
		lines[i] = p.Brand + " " + p.Model + " ($" + p.Price.String() + ")"
	}
	return strings.Join(lines, "\n")
}

// ExtractBudget returns the leftmost "$<digits>" amount in message.
func ExtractBudget(message string) (decimal.Decimal, bool) {
	m := budgetPattern.FindStringSubmatch(message)
	if m == nil {
		return decimal.Zero, false
	}
	budget, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Zero, false
	}
	return budget, true
}

func byMention(message string, catalog []domain.CellPhone) []domain.CellPhone {
	text := strings.ToLower(message)
	var out collector
	for _, p := range catalog {
		if mentions(text, p.Brand) || mentions(text, p.Model) {
			if out.add(p) {
				break
			}
		}
	}
	return out.products
}

// mentions reports whether term occurs in the lower-cased text. Blank terms never match.
func mentions(text, term string) bool {
	if strings.TrimSpace(term) == "" {
		return false
	}
	return strings.Contains(text, strings.ToLower(term))
}

func byBudget(budget decimal.Decimal, catalog []domain.CellPhone) []domain.CellPhone {
	var out collector
	for _, p := range catalog {
		if p.Price.LessThanOrEqual(budget) {
			if out.add(p) {
				break
			}
		}
	}
	return out.products
}

func cheapest(catalog []domain.CellPhone) []domain.CellPhone {
	sorted := make([]domain.CellPhone, len(catalog))
	copy(sorted, catalog)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price.LessThan(sorted[j].Price)
	})

	var out collector
	for _, p := range sorted {
		if out.add(p) {
			break
		}
	}
	return out.products
}

// collector keeps at most MaxRecommendations products with distinct IDs.
type collector struct {
	products []domain.CellPhone
	seen     map[int64]struct{}
}

// add appends p unless its ID was already taken and reports whether the collector is full.
func (c *collector) add(p domain.CellPhone) bool {
	if c.seen == nil {
		c.seen = make(map[int64]struct{}, MaxRecommendations)
	}
	if _, dup := c.seen[p.ID]; !dup {
		c.seen[p.ID] = struct{}{}
		c.products = append(c.products, p)
	}
	return len(c.products) >= MaxRecommendations
}
