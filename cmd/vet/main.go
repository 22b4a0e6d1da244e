// Command vet validates a local Excel workbook offline, without the HTTP
// service or a database. Every sheet runs through the same schema validation
// as the upload endpoint; per-row errors print grouped by sheet.
// Usage: vet -file book.xlsx [-quiet]
// Exits 1 when any sheet has validation errors.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/xuri/excelize/v2"

	"sheetvet/internal/domain"
	"sheetvet/internal/schema"
	"sheetvet/internal/sheet"
)

func main() {
	file := flag.String("file", "", "workbook to validate (.xlsx or .xlsm)")
	quiet := flag.Bool("quiet", false, "suppress per-row errors; print only the summary")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	dirty, err := run(*file, *quiet)
	if err != nil {
		log.Fatal(err)
	}
	if dirty {
		os.Exit(1)
	}
}

func run(path string, quiet bool) (bool, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return false, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	var tables []domain.SheetTable
	totalRows := 0
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return false, fmt.Errorf("read sheet %q: %w", name, err)
		}
		table := domain.SheetTable{Name: name}
		if len(rows) > 0 {
			table.Header = rows[0]
			table.Rows = rows[1:]
			totalRows += len(table.Rows)
		}
		tables = append(tables, table)
	}

	registry := schema.NewRegistry(schema.Default())
	result := sheet.NewProcessor(registry).Process(tables)

	totalErrs := 0
	for _, name := range result.SheetNames {
		errs := result.ValidationErrors[name]
		totalErrs += len(errs)
		if quiet || len(errs) == 0 {
			continue
		}
		fmt.Printf("%s:\n", name)
		for _, e := range errs {
			fmt.Printf("  %s\n", e.Error)
		}
	}

	importable := len(sheet.SelectImportable(result.SheetData, result.ValidationErrors, registry))
	fmt.Printf("%s: %d sheets, %d rows, %d importable, %d errors\n",
		path, len(result.SheetNames), totalRows, importable, totalErrs)
	return totalErrs > 0, nil
}
