// mkfixture creates a small representative input fixture from a larger scrape.
// It scans every county, buckets them by which cleaning paths their resources
// exercise, then keeps the first few of each bucket.
// Usage: go run ./cmd/mkfixture --in testdata/counties.json --out testdata/counties-small.json --counties 20
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/gyeh/civicres/internal/model"
	"github.com/gyeh/civicres/internal/normalize"
	"github.com/gyeh/civicres/internal/source"
)

// recording remembers which strategy produced the last second line.
type recording struct {
	normalize.SecondLineStrategy
	last *string
}

func (r recording) Apply(line, zip string) (string, bool) {
	out, ok := r.SecondLineStrategy.Apply(line, zip)
	if ok {
		*r.last = r.Name()
	}
	return out, ok
}

func main() {
	in := flag.String("in", "testdata/counties.json", "input json")
	out := flag.String("out", "testdata/counties-small.json", "output json")
	maxCounties := flag.Int("counties", 20, "max counties to output")
	checkOnly := flag.Bool("check", false, "only print stats, don't write")
	flag.Parse()

	doc, err := source.Load(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load input: %v\n", err)
		os.Exit(1)
	}

	var lastStrategy string
	parser := normalize.NewAddressParser(
		recording{normalize.SpaceDelimited{}, &lastStrategy},
		recording{normalize.Segmented{}, &lastStrategy},
	)

	traitsOf := func(r model.CountyResult) map[string]bool {
		traits := make(map[string]bool)
		for _, res := range r.Resources {
			switch res.Type {
			case model.TypePhoneNumber:
				if _, err := normalize.NormalizePhone(res.Value); err != nil {
					traits["malformed"] = true
				} else {
					traits["phone"] = true
				}
			case model.TypeAddress:
				lastStrategy = ""
				addr, err := parser.Parse(res.Value)
				switch {
				case err != nil:
					traits["malformed"] = true
				case addr == normalize.Unknown:
					traits["unknown_address"] = true
				case lastStrategy != "":
					traits[lastStrategy] = true
				}
			case model.TypeFacilityName:
			default:
				traits["other_type"] = true
			}
		}
		return traits
	}

	// Pass 1: bucket every county by its traits.
	type bucket struct {
		name string
		rows []model.CountyResult
		want int
	}
	buckets := []*bucket{
		{name: "malformed", want: 3},
		{name: "unknown_address", want: 3},
		{name: "segmented", want: 4},
		{name: "space_delimited", want: 4},
		{name: "phone", want: 3},
		{name: "other_type", want: 2},
		{name: "general", want: 0},
	}
	bucketMap := make(map[string]*bucket)
	for _, b := range buckets {
		bucketMap[b.name] = b
	}

	counts := make(map[string]int)
	for _, r := range doc.Results {
		traits := traitsOf(r)
		placed := false
		for _, b := range buckets {
			if !traits[b.name] {
				continue
			}
			counts[b.name]++
			if !placed && len(b.rows) < b.want {
				b.rows = append(b.rows, r)
				placed = true
			}
		}
		if !placed && len(bucketMap["general"].rows) < *maxCounties {
			bucketMap["general"].rows = append(bucketMap["general"].rows, r)
		}
	}
	fmt.Printf("Scanned %d counties\n", len(doc.Results))

	if *checkOnly {
		for _, b := range buckets {
			if b.name != "general" {
				fmt.Printf("  %-16s %d\n", b.name, counts[b.name])
			}
		}
		return
	}

	// Merge buckets in priority order, general last.
	var selected []model.CountyResult
	for _, b := range buckets {
		for _, r := range b.rows {
			if len(selected) >= *maxCounties {
				break
			}
			selected = append(selected, r)
		}
	}

	data, err := json.MarshalIndent(model.RawDocument{Results: selected}, "", "    ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d counties to %s\n", len(selected), *out)
	for _, b := range buckets {
		if len(b.rows) > 0 {
			fmt.Printf("  %-16s %d\n", b.name, len(b.rows))
		}
	}
}
