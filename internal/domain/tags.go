package domain

import (
	"encoding/json"
	"fmt"
	"os"
)

// TagNormalizer maps scraped tag spellings onto canonical tags.
// Unknown tags pass through unchanged.
type TagNormalizer map[string]string

// LoadTagNormalizer reads a flat JSON object of synonym -> canonical
// tag mappings. An empty path yields an empty normalizer.
func LoadTagNormalizer(path string) (TagNormalizer, error) {
	if path == "" {
		return TagNormalizer{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tag mapping file: %w", err)
	}

	var mapping TagNormalizer
	if err := json.Unmarshal(raw, &mapping); err != nil {
		return nil, fmt.Errorf("parsing tag mapping file [%s]: %w", path, err)
	}

	return mapping, nil
}

// Normalize maps each tag through the synonym table and drops
// duplicates, preserving first-seen order.
func (n TagNormalizer) Normalize(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	var normalized []string

	for _, tag := range tags {
		mapped := tag
		if canonical, ok := n[tag]; ok {
			mapped = canonical
		}
		if _, dup := seen[mapped]; dup {
			continue
		}
		seen[mapped] = struct{}{}
		normalized = append(normalized, mapped)
	}

	return normalized
}
