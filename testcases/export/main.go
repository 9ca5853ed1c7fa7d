// Command export writes the test case definitions to JSON, so that
// reference images can be produced by external tools.
// Run from the scanfill module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/scanfill/testcases"
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
	Name      string     `json:"name"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Polygons  [][][2]int `json:"polygons"`
	Op        string     `json:"op"`
	FillRule  string     `json:"fill_rule,omitempty"`
	LineWidth int        `json:"line_width,omitempty"`
	LineCap   string     `json:"line_cap,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Polygons: polygonsToJSON(tc),
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
		jtc.FillRule = "evenodd"
	case testcases.Compound:
		jtc.Op = "compound"
		jtc.FillRule = "evenodd"
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.LineWidth = op.Width
		jtc.LineCap = op.Cap.String()
	}
	return jtc
}

func polygonsToJSON(tc testcases.TestCase) [][][2]int {
	res := make([][][2]int, len(tc.Polygons))
	for i, poly := range tc.Polygons {
		res[i] = make([][2]int, len(poly))
		for j, p := range poly {
			res[i][j] = [2]int{p.X, p.Y}
		}
	}
	return res
}
