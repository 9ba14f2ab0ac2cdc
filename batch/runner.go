// Package batch processes a CSV of URLs sequentially, assembling one
// document per row and packaging the results into a zip archive. Rows fail
// independently: an error on one URL never aborts the batch.
package batch

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"strings"

	"github.com/jackalderton/contentrec"
	"golang.org/x/time/rate"
)

// DocumentSuffix is appended to the page name to form the default output
// file name.
const DocumentSuffix = " - Content Recommendations"

// RowResult records the outcome for one CSV row.
type RowResult struct {
	URL    string
	Status string // "ok" or "error: ..."
	File   string // zip entry name, empty on failure
}

// Output is the result of a batch run.
type Output struct {
	// Archive is a zip of the assembled documents.
	Archive []byte

	// Results has one entry per CSV row, in row order.
	Results []RowResult
}

// Runner drives the per-URL pipeline for each CSV row.
type Runner struct {
	Fetcher   contentrec.Fetcher
	Extractor contentrec.Extractor
	Assembler contentrec.Assembler

	// Limiter paces fetches when set. Nil disables rate limiting.
	Limiter *rate.Limiter
}

// Run processes the CSV sequentially. The CSV must have a header row with a
// "url" column; an "out_name" column overrides the default file name. The
// agency and client fields are copied into each row's metadata.
func (r *Runner) Run(ctx context.Context, csvData, template []byte, opts contentrec.Options, agency, client string) (*Output, error) {
	rows, urlCol, nameCol, err := parseCSV(csvData)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	out := &Output{}

	for _, row := range rows {
		url := strings.TrimSpace(row[urlCol])
		file, err := r.processRow(ctx, zw, url, row, nameCol, template, opts, agency, client)
		if err != nil {
			out.Results = append(out.Results, RowResult{URL: url, Status: "error: " + err.Error()})
			continue
		}
		out.Results = append(out.Results, RowResult{URL: url, Status: "ok", File: file})
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	out.Archive = buf.Bytes()
	return out, nil
}

func (r *Runner) processRow(ctx context.Context, zw *zip.Writer, url string, row []string, nameCol int, template []byte, opts contentrec.Options, agency, client string) (string, error) {
	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	finalURL, body, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	result, err := r.Extractor.Extract(body, finalURL, opts)
	if err != nil {
		return "", err
	}
	result.Meta.Agency = agency
	result.Meta.ClientName = client

	name := ""
	if nameCol >= 0 && nameCol < len(row) {
		name = strings.TrimSpace(row[nameCol])
	}
	if name == "" {
		name = result.Meta.Page + DocumentSuffix
	}
	file := contentrec.SafeFilename(name) + ".docx"

	document, err := r.Assembler.Assemble(template, result.Meta, result.Rendered())
	if err != nil {
		return "", err
	}

	fw, err := zw.Create(file)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(document); err != nil {
		return "", err
	}
	return file, nil
}

// parseCSV reads the header and data rows, returning the url and out_name
// column indexes. nameCol is -1 when the column is absent.
func parseCSV(data []byte) (rows [][]string, urlCol, nameCol int, err error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, 0, 0, contentrec.Errorf(contentrec.EINVALID, "malformed CSV: %v", err)
	}
	if len(records) == 0 {
		return nil, 0, 0, contentrec.Errorf(contentrec.EINVALID, "CSV appears empty")
	}

	urlCol, nameCol = -1, -1
	for i, col := range records[0] {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "url":
			urlCol = i
		case "out_name":
			nameCol = i
		}
	}
	if urlCol == -1 {
		return nil, 0, 0, contentrec.Errorf(contentrec.EINVALID, "CSV must include a %q column", "url")
	}
	if len(records) == 1 {
		return nil, 0, 0, contentrec.Errorf(contentrec.EINVALID, "CSV appears empty")
	}

	for _, rec := range records[1:] {
		if urlCol < len(rec) {
			rows = append(rows, rec)
		}
	}
	return rows, urlCol, nameCol, nil
}
