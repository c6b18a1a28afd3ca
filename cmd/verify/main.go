// Command verify runs the stats pipeline offline against a JSON fixture.
// Each fixture entry is a raw stat map as it would arrive from an entry form
// or an extraction result; the tool prints the normalized keys and the
// computed metrics so a change to the derivation rules can be eyeballed
// without a running server.
//
// Usage:
//
//	verify <fixture.json>
//
// The fixture is either a single JSON object of raw stats or an array of
// such objects.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/bytedance/sonic"

	"github.com/touchlinehq/touchline/internal/domain/matchstats"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: verify <fixture.json>")
		os.Exit(2)
	}

	fixtures, err := loadFixtures(os.Args[1])
	if err != nil {
		log.Fatalf("load fixture: %v", err)
	}

	for i, raw := range fixtures {
		if len(fixtures) > 1 {
			fmt.Printf("=== entry %d ===\n", i+1)
		}
		printEntry(raw)
	}
}

func loadFixtures(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var many []map[string]any
	if err := sonic.Unmarshal(data, &many); err == nil {
		return many, nil
	}

	var one map[string]any
	if err := sonic.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("fixture must be a JSON object or array of objects: %w", err)
	}
	return []map[string]any{one}, nil
}

func printEntry(raw map[string]any) {
	normalized := matchstats.Normalize(raw)
	computed := matchstats.Compute(normalized)

	fmt.Println("normalized:")
	for _, key := range sortedKeys(normalized) {
		marker := ""
		if _, entered := raw[key]; !entered {
			marker = " (renamed)"
		}
		fmt.Printf("  %-40s %v%s\n", key, normalized[key], marker)
	}

	fmt.Println("computed:")
	keys := make([]string, 0, len(computed))
	for key := range computed {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("  %-40s %.4f\n", key, computed[key])
	}
}

func sortedKeys(stats matchstats.RawStats) []string {
	keys := make([]string, 0, len(stats))
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
