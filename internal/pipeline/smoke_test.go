package pipeline

import (
	"math/rand"
	"strings"
	"testing"

	"streamindex/internal"
	"streamindex/internal/wikitext"
)

// Exercises the whole flow the command runs: raw CSV text through the reader,
// the normalizer, and the renderer.
func TestSmokeCSVToWikitext(t *testing.T) {
	csv := strings.Join([]string{
		"Falco's Spreadsheet,,,,,,,,,",
		",,,,,,,,,",
		"#,Date,,Game,No.,VOD,,,VOD (no chat),",
		`42,"Mon, 03/04/2024",,TestGame,1,vod.example.com/a?t=1,,,,`,
		`,,,TestGame,1,,,,vod.example.com/b,`,
		`43,"Tue, 03/05/2024",,Other Game,,,,,,`,
		`,Streams per day,,,,,,,,`,
		`44,"Wed, 03/06/2024",(Today),Other Game,,,,,,`,
	}, "\n") + "\n"

	rows, err := ReadRows(FormatCSV, strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}

	records, err := Normalize(rows, Options{
		SkipRows:   2,
		Exclusions: DefaultExclusions,
		Additional: map[int][]internal.Field{
			43: {{Key: "guests", Value: internal.List([]string{"Alice"})}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("records=%d: %+v", len(records), records)
	}
	if records[1].Index != 42 || records[1].Part != 2 {
		t.Fatalf("continuation: %+v", records[1])
	}

	lines := wikitext.Generate("sheet-id", records, []string{"red"}, rand.New(rand.NewSource(1)))
	text := strings.Join(lines, "\n")
	if !strings.Contains(text, "vod_with_chat=https://vod.example.com/a?t&#61;1") {
		t.Fatalf("sanitized link missing:\n%s", text)
	}
	if !strings.Contains(text, "guests=Alice") {
		t.Fatalf("enrichment missing:\n%s", text)
	}
	// Most recent first: index 43 renders before index 42.
	if strings.Index(text, "index=43") > strings.Index(text, "index=42") {
		t.Fatalf("entries not reversed:\n%s", text)
	}
}
