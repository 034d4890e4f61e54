package pipeline

import (
	"strings"
	"testing"

	"streamindex/internal"
)

// header stands in for the one row the normalizer always drops after the
// configured skip count.
var header = []string{"#", "Date", "", "Game", "No.", "VOD", "", "", "VOD (no chat)"}

func TestNormalizeRow(t *testing.T) {
	rows := [][]string{
		header,
		{"42", "Mon, 03/04/2024", "", "TestGame", "1", "vod.example.com/a", "", "", ""},
	}
	records, err := Normalize(rows, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("records=%d", len(records))
	}
	r := records[0]
	if r.Index != 42 || r.Date != "2024-03-04" || r.Part != 1 || r.Game != "TestGame" || r.GameIndex != "1" {
		t.Fatalf("unexpected record: %+v", r)
	}
	if len(r.VOD) != 1 || r.VOD[0].Key != "with_chat" || r.VOD[0].Value != "https://vod.example.com/a" {
		t.Fatalf("unexpected vod: %+v", r.VOD)
	}
}

func TestNormalizeCarryForward(t *testing.T) {
	rows := [][]string{
		header,
		{"42", "Mon, 03/04/2024", "", "TestGame", "1", "", "", "", ""},
		{"", "", "", "TestGame", "1", "", "", "", ""},
		{"", "", "", "TestGame", "1", "", "", "", ""},
		{"43", "Tue, 03/05/2024", "", "Other", "", "", "", "", ""},
	}
	records, err := Normalize(rows, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 4 {
		t.Fatalf("records=%d", len(records))
	}
	if records[1].Index != 42 || records[1].Part != 2 || records[1].Date != "2024-03-04" {
		t.Fatalf("continuation: %+v", records[1])
	}
	if records[2].Index != 42 || records[2].Part != 3 {
		t.Fatalf("second continuation: %+v", records[2])
	}
	if records[3].Index != 43 || records[3].Part != 1 || records[3].Date != "2024-03-05" {
		t.Fatalf("part not reset on new index: %+v", records[3])
	}
}

func TestNormalizeSkipsTrailingGraph(t *testing.T) {
	rows := [][]string{
		header,
		{"42", "Mon, 03/04/2024", "", "TestGame", "", "", "", "", ""},
		{"", "Streams per day", "", "", "", "", "", "", ""},
		{"43", "Tue, 03/05/2024", "(Today)", "TestGame", "", "", "", "", ""},
	}
	records, err := Normalize(rows, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Index != 42 {
		t.Fatalf("graph rows not skipped: %+v", records)
	}
}

func TestNormalizeExclusions(t *testing.T) {
	rows := [][]string{
		header,
		{"50", "Mon, 03/04/2024", "", "Signalis", "", "", "", "", ""},
		{"301", "Tue, 03/05/2024", "", "Signalis", "", "", "", "", ""},
	}
	records, err := Normalize(rows, Options{Exclusions: DefaultExclusions})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Index != 301 {
		t.Fatalf("exclusion not applied: %+v", records)
	}
}

func TestNormalizeEnrichment(t *testing.T) {
	additional := map[int][]internal.Field{
		42: {{Key: "guests", Value: internal.List([]string{"Alice", "Bob"})}},
	}
	rows := [][]string{
		header,
		{"42", "Mon, 03/04/2024", "", "TestGame", "", "", "", "", ""},
		{"43", "Tue, 03/05/2024", "", "TestGame", "", "", "", "", ""},
	}
	records, err := Normalize(rows, Options{Additional: additional})
	if err != nil {
		t.Fatal(err)
	}
	if len(records[0].Extra) != 1 || records[0].Extra[0].Key != "guests" {
		t.Fatalf("extra fields not merged: %+v", records[0].Extra)
	}
	if len(records[1].Extra) != 0 {
		t.Fatalf("unexpected extra fields: %+v", records[1].Extra)
	}
}

func TestNormalizeCanonicalizesTitle(t *testing.T) {
	rows := [][]string{
		header,
		{"42", "Mon, 03/04/2024", "", "Darks Souls", "", "", "", "", ""},
	}
	records, err := Normalize(rows, Options{
		Replacements: []internal.Replacement{{Target: "Darks Souls", With: "Dark Souls"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if records[0].Game != "Dark Souls" {
		t.Fatalf("game=%q", records[0].Game)
	}
}

func TestNormalizeBadDate(t *testing.T) {
	rows := [][]string{
		header,
		{"42", "2024-03-04", "", "TestGame", "", "", "", "", ""},
	}
	if _, err := Normalize(rows, Options{}); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}

func TestNormalizeShortRow(t *testing.T) {
	rows := [][]string{
		header,
		{"42", "Mon, 03/04/2024", "", "TestGame"},
	}
	_, err := Normalize(rows, Options{})
	if err == nil || !strings.Contains(err.Error(), "fields") {
		t.Fatalf("err=%v", err)
	}
}

func TestNormalizeFirstRowBlankIndex(t *testing.T) {
	rows := [][]string{
		header,
		{"", "", "", "TestGame", "", "", "", "", ""},
	}
	if _, err := Normalize(rows, Options{}); err == nil {
		t.Fatal("expected error for blank index on first data row")
	}
}

func TestNormalizeSkipRows(t *testing.T) {
	rows := [][]string{
		{"junk", "", "", "", "", "", "", "", ""},
		{"junk", "", "", "", "", "", "", "", ""},
		header,
		{"42", "Mon, 03/04/2024", "", "TestGame", "", "", "", "", ""},
	}
	records, err := Normalize(rows, Options{SkipRows: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Index != 42 {
		t.Fatalf("unexpected records: %+v", records)
	}
}
