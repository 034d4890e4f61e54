package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"streamindex/internal/config"
	"streamindex/internal/pipeline"
	"streamindex/internal/sheets"
	"streamindex/internal/wikitext"
)

func main() {
	cfg, err := config.Load()
	must(err)

	input := flag.String("input", cfg.InputPath, "path to the CSV file with the spreadsheet data; written to when downloading")
	output := flag.String("output", cfg.OutputPath, `file to write the output wikitext to, or "-" for stdout`)
	overwriteOutput := flag.Bool("overwrite-output", false, "allow overwriting the output file")
	download := flag.Bool("download", false, "download the latest data from the spreadsheet (requires GOOGLE_API_KEY)")
	overwriteInput := flag.Bool("overwrite-input", false, "allow overwriting the input file when downloading")
	spreadsheetID := flag.String("spreadsheet-id", cfg.SpreadsheetID, "ID of the google spreadsheet to source the data from")
	skipRows := flag.Int("skip-rows", cfg.SkipRows, "number of header rows to skip")
	format := flag.String("format", "", "input format: csv|xlsx|html (default: by file extension)")
	colorsPath := flag.String("colors", cfg.ColorsPath, "JSON file with the list of colors")
	replacementsPath := flag.String("replacements", cfg.ReplacementsPath, "JSON file with the title replacements")
	additionalPath := flag.String("additional", cfg.AdditionalPath, "JSON file with additional stream data")
	colorSeed := flag.Int64("color-seed", 0, "seed for color assignment; 0 seeds from the current time")
	flag.Parse()

	replacements, err := config.LoadReplacements(*replacementsPath)
	must(err)
	colors, err := config.LoadColors(*colorsPath)
	must(err)
	additional, err := config.LoadAdditional(*additionalPath)
	must(err)

	if *download {
		client, err := sheets.NewClient(context.Background(), cfg.GoogleAPIKey)
		must(err)
		data, err := client.ExportCSV(context.Background(), *spreadsheetID)
		must(err)
		must(writeFile(*input, data, *overwriteInput, "overwrite-input"))
		fmt.Printf("downloaded %d bytes to %s\n", len(data), *input)
	}

	in, err := os.Open(*input)
	must(err)
	inFormat := pipeline.Format(*format)
	if inFormat == "" {
		inFormat = pipeline.DetectFormat(*input)
	}
	rows, err := pipeline.ReadRows(inFormat, in)
	in.Close()
	must(err)

	records, err := pipeline.Normalize(rows, pipeline.Options{
		SkipRows:     *skipRows,
		Replacements: replacements,
		Additional:   additional,
		Exclusions:   pipeline.DefaultExclusions,
	})
	must(err)

	seed := *colorSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	lines := wikitext.Generate(*spreadsheetID, records, colors, rand.New(rand.NewSource(seed)))

	if *output == "-" {
		for _, line := range lines {
			fmt.Println(line)
		}
		return
	}
	must(writeLines(*output, lines, *overwriteOutput, "overwrite-output"))
	fmt.Printf("wrote %d entries to %s\n", len(records), *output)
}

func create(path string, overwrite bool, overwriteFlag string) (*os.File, error) {
	mode := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		mode = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, mode, 0o644)
	if errors.Is(err, fs.ErrExist) {
		fmt.Fprintf(os.Stderr, "error: the file %q already exists, pass -%s if you wish to overwrite it\n", path, overwriteFlag)
		os.Exit(2)
	}
	return f, err
}

func writeFile(path string, data []byte, overwrite bool, overwriteFlag string) error {
	f, err := create(path, overwrite, overwriteFlag)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeLines(path string, lines []string, overwrite bool, overwriteFlag string) error {
	f, err := create(path, overwrite, overwriteFlag)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
