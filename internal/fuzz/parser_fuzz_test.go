package fuzztests

import (
	"testing"

	"whittle/internal/diag"
	"whittle/internal/parser"
	"whittle/internal/source"
)

func FuzzParserBuildsTree(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)
		file := source.NewFile("fuzz.js", input)

		bag := diag.NewBag(128)
		res := parser.Parse(file, parser.Options{
			MaxErrors: 128,
			Reporter:  &diag.BagReporter{Bag: bag},
		})
		if res == nil || res.Program == nil {
			t.Fatal("parser returned no program")
		}
		for _, c := range res.Comments {
			if c.Span.End > file.Len() {
				t.Fatalf("comment span %s beyond input length %d", c.Span, file.Len())
			}
		}
		for _, d := range bag.Items() {
			for _, lb := range d.Labels {
				if lb.Span.End > file.Len() {
					t.Fatalf("diagnostic span %s beyond input length %d", lb.Span, file.Len())
				}
			}
		}
	})
}
