package wikitext

import (
	"fmt"
	"math/rand"
	"strings"

	"streamindex/internal"
)

// Script is where this tool can be found, referenced in the output.
const Script = "https://github.com/jads-dev/joepedia-stream-index"

var warning = []string{
	"<!--",
	"  This content is generated by a script which can be found at ",
	"  " + Script + ".",
	"  Manual changes **WILL BE LOST** when the script is next run, you almost",
	"  certainly want to re-run the script with new data, make changes to the ",
	"  script, or modify the StreamIndexEntry template instead.",
	"-->",
}

// Generate assembles the full wikitext document: warning block, table open
// with attribution caption, header row, one StreamIndexEntry line per record
// in reverse input order, table close, warning block again.
func Generate(dataSourceID string, records []internal.Record, colors []string, rng *rand.Rand) []string {
	dataSourceURL := "https://docs.google.com/spreadsheets/d/" + dataSourceID
	dataAttribution := fmt.Sprintf("sourced from a spreadsheet maintained {{Attribution|Falco}}<ref>[%s Falco’s Spreadsheet of Joe content].</ref>", dataSourceURL)
	scriptAttribution := fmt.Sprintf("and processed using a script originally written {{Attribution|JayUplink}}<ref>[%s “joepedia-stream-index” on GitHub].</ref>", Script)
	attributions := dataAttribution + ", " + scriptAttribution

	// Indices with more than one part, computed over the whole set before
	// the per-record loop.
	multipart := map[int]bool{}
	for _, r := range records {
		if r.Part > 1 {
			multipart[r.Index] = true
		}
	}

	gameColors := map[string]string{}
	for _, r := range records {
		gameColors[r.Game] = colors[rng.Intn(len(colors))]
	}

	lines := make([]string, 0, len(records)+2*len(warning)+10)
	lines = append(lines, warning...)
	lines = append(lines, `<div style="display: flex; justify-content: center;">`)
	lines = append(lines, `{| class="wikitable" `)
	lines = append(lines, fmt.Sprintf(`  |+ style="caption-side:bottom;"|This data is %s.`, attributions))
	lines = append(lines, "|-")
	lines = append(lines, "! # !! Date !! Game !! No. in Series !! Available VODs")
	lines = append(lines, "")

	previousIndex := 0
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		fields := make([]internal.Field, 0, 8+len(r.Extra))
		fields = append(fields,
			internal.Field{Key: "index", Value: internal.Int(r.Index)},
			internal.Field{Key: "date", Value: internal.String(r.Date)},
		)
		// Only include the part if it's not a single game stream.
		if multipart[r.Index] {
			fields = append(fields, internal.Field{Key: "part", Value: internal.Int(r.Part)})
		}
		fields = append(fields,
			internal.Field{Key: "game", Value: internal.String(r.Game)},
			internal.Field{Key: "game_index", Value: internal.String(r.GameIndex)},
			internal.Field{Key: "vod", Value: internal.Map(r.VOD)},
		)
		fields = append(fields, r.Extra...)
		fields = append(fields, internal.Field{Key: "color", Value: internal.String(gameColors[r.Game])})
		if multipart[r.Index] && previousIndex != r.Index {
			// First row seen for this index; iteration is reversed, so this
			// is the final chronological part.
			fields = append(fields, internal.Field{Key: "last_part", Value: internal.Int(1)})
		}

		arguments := make([]string, 0, len(fields))
		for _, f := range fields {
			if f.Value.Empty() {
				continue
			}
			arguments = append(arguments, TemplateArguments(f.Key, f.Value)...)
		}
		lines = append(lines, fmt.Sprintf("  {{StreamIndexEntry|%s}}", strings.Join(arguments, "|")))
		previousIndex = r.Index
	}

	lines = append(lines, "|}")
	lines = append(lines, "</div>")
	lines = append(lines, warning...)
	lines = append(lines, "")
	return lines
}
