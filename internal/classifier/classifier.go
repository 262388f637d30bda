// Package classifier scores imported articles for sub-region relevance
// using fixed allow/block keyword tables.
package classifier

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/VirtuGrowDigital/LucknowZone/internal/domain"
)

// RegionKeywords holds the keyword lists for one sub-region. Allow
// terms indicate relevance; any block term vetoes the article outright.
type RegionKeywords struct {
	Allow []string `yaml:"allow"`
	Block []string `yaml:"block"`
}

// Keywords maps a sub-region to its keyword table. The table is built
// once at startup and treated as immutable afterwards.
type Keywords map[domain.Region]RegionKeywords

// Defaults returns the built-in keyword tables. Only the local
// sub-region carries lists; national and international imports are
// never scored.
func Defaults() Keywords {
	return Keywords{
		domain.RegionLocal: {
			Allow: []string{
				"lucknow",
				"hazratganj",
				"gomti nagar",
				"charbagh",
				"aminabad",
				"alambagh",
				"aliganj",
				"chowk",
				"kgmu",
				"lucknow university",
				"lda",
				"awadh",
				"nawab",
				"bara imambara",
				"rumi darwaza",
				"uttar pradesh",
			},
			Block: []string{
				"kanpur",
				"varanasi",
				"prayagraj",
				"noida",
				"ghaziabad",
			},
		},
	}
}

// Load reads keyword tables from a yaml file. An empty path returns the
// built-in defaults.
func Load(path string) (Keywords, error) {
	if path == "" {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keywords config: %w", err)
	}

	var raw map[string]RegionKeywords
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse keywords config: %w", err)
	}

	kw := make(Keywords, len(raw))
	for region, lists := range raw {
		normalized, ok := domain.NormalizeRegion(region)
		if !ok {
			return nil, fmt.Errorf("keywords config: unknown region %q", region)
		}
		kw[normalized] = lists
	}

	return kw, nil
}

// Score returns the relevance of the given text fields for a
// sub-region: 0 when any block term is present or no allow term
// matches, otherwise the count of distinct allow terms found. Regions
// without a keyword table always score 0.
func (k Keywords) Score(region domain.Region, fields ...string) int {
	lists, ok := k[region]
	if !ok {
		return 0
	}

	text := strings.ToLower(strings.Join(fields, " "))
	if strings.TrimSpace(text) == "" {
		return 0
	}

	for _, term := range lists.Block {
		if term != "" && strings.Contains(text, strings.ToLower(term)) {
			return 0
		}
	}

	score := 0
	for _, term := range lists.Allow {
		if term != "" && strings.Contains(text, strings.ToLower(term)) {
			score++
		}
	}

	return score
}
