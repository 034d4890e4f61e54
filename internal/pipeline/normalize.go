package pipeline

import (
	"fmt"
	"strconv"
	"time"

	"streamindex/internal"
	"streamindex/internal/wikitext"
)

// Column positions in the spreadsheet export.
const (
	colIndex = iota
	colDate
	colOtherDate
	colGame
	colGameIndex
	colVODWithChat
	_
	_
	colVODWithoutChat
)

const rowWidth = colVODWithoutChat + 1

// dateLayout matches the spreadsheet's date column, e.g. "Mon, 01/02/2023".
const dateLayout = "Mon, 01/02/2006"

const isoDate = "2006-01-02"

// DefaultExclusions drops the joke rows present in the source data.
var DefaultExclusions = []internal.Exclusion{
	{Game: "Signalis", BeforeIndex: 300},
}

type Options struct {
	// SkipRows is the number of header rows to drop, in addition to the one
	// row that always follows them.
	SkipRows     int
	Replacements []internal.Replacement
	Additional   map[int][]internal.Field
	Exclusions   []internal.Exclusion
}

func (o Options) excluded(index int, game string) bool {
	for _, e := range o.Exclusions {
		if index < e.BeforeIndex && game == e.Game {
			return true
		}
	}
	return false
}

// Normalize folds raw spreadsheet rows into records, threading the
// carry-forward state (previous index and date, running part counter)
// through a single sequential scan. A blank index or date field inherits the
// value from the last emitted record; a blank index also marks the row as a
// continuation part of the previous stream.
func Normalize(rows [][]string, opts Options) ([]internal.Record, error) {
	skip := opts.SkipRows + 1
	if skip > len(rows) {
		skip = len(rows)
	}
	rows = rows[skip:]

	var (
		records       []internal.Record
		previousIndex int
		previousDate  string
		emitted       bool
	)
	part := 1

	for i, row := range rows {
		rowNo := skip + i + 1
		if len(row) < rowWidth {
			return nil, fmt.Errorf("row %d: expected at least %d fields, got %d", rowNo, rowWidth, len(row))
		}
		index, date, otherDate := row[colIndex], row[colDate], row[colOtherDate]
		game, gameIndex := row[colGame], row[colGameIndex]

		// Skip the graph at the end of the sheet.
		if (index == "" && date != "") || otherDate == "(Today)" {
			continue
		}

		var vod []internal.MapEntry
		if link, ok := wikitext.SanitizeLink(row[colVODWithChat]); ok {
			vod = append(vod, internal.MapEntry{Key: "with_chat", Value: link})
		}
		if link, ok := wikitext.SanitizeLink(row[colVODWithoutChat]); ok {
			vod = append(vod, internal.MapEntry{Key: "without_chat", Value: link})
		}

		currentIndex, currentDate := previousIndex, previousDate
		if index != "" {
			parsed, err := strconv.Atoi(index)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad index %q: %w", rowNo, index, err)
			}
			currentIndex = parsed
			part = 1
		} else {
			if !emitted {
				return nil, fmt.Errorf("row %d: first data row has a blank index", rowNo)
			}
			part++
		}
		if date != "" {
			currentDate = date
		} else if !emitted {
			return nil, fmt.Errorf("row %d: first data row has a blank date", rowNo)
		}

		// Known-bad rows still advance the part counter, but the carried
		// index and date only move on emit.
		if opts.excluded(currentIndex, game) {
			continue
		}

		parsedDate, err := time.Parse(dateLayout, currentDate)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad date %q: %w", rowNo, currentDate, err)
		}

		records = append(records, internal.Record{
			Index:     currentIndex,
			Date:      parsedDate.Format(isoDate),
			Part:      part,
			Game:      Canonicalize(opts.Replacements, game),
			GameIndex: gameIndex,
			VOD:       vod,
			Extra:     opts.Additional[currentIndex],
		})

		previousIndex, previousDate = currentIndex, currentDate
		emitted = true
	}

	return records, nil
}
