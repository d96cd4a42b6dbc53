// Command export writes test case definitions to JSON, so that other
// implementations of the plotter can be checked against the same inputs.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/xyplot/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string   `json:"name"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Inputs  []string `json:"inputs"`
	Want    [][2]int `json:"want"`
	Skipped int      `json:"skipped,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:    category + "_" + tc.Name,
		Width:   tc.Width,
		Height:  tc.Height,
		Inputs:  tc.Inputs,
		Want:    [][2]int{},
		Skipped: tc.Skipped,
	}
	for _, p := range tc.Want {
		jtc.Want = append(jtc.Want, [2]int{p.X, p.Y})
	}
	return jtc
}
