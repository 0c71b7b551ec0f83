package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"sheet-addresses-api/internal/config"
	"sheet-addresses-api/internal/repository"
	"sheet-addresses-api/internal/service"

	"google.golang.org/api/option"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	sheet := fs.String("sheet", "", "Spreadsheet id or docs.google.com link to read through the Sheets API")
	file := fs.String("file", "", "Path to a CSV export of the sheet")
	group := fs.Bool("group", false, "Group names by address instead of listing name/address pairs")
	configDir := fs.String("config", "configs", "Directory containing app.env")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if (*sheet == "") == (*file == "") {
		return errors.New("exactly one of --sheet or --file is required")
	}

	var (
		repo   service.RowRepository
		source string
	)
	if *file != "" {
		repo = repository.NewCSVRepository()
		source = *file
	} else {
		id, err := service.ExtractSpreadsheetID(*sheet)
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(*configDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		var opts []option.ClientOption
		if cfg.SheetsEndpoint != "" {
			opts = append(opts, option.WithEndpoint(cfg.SheetsEndpoint))
		}
		sheetsRepo, err := repository.NewSheetsRepository(ctx, cfg.GoogleSheetsAPIKey, opts...)
		if err != nil {
			return err
		}
		repo = sheetsRepo
		source = id
	}

	svc := service.NewRecordService(repo)

	var result interface{}
	var err error
	if *group {
		result, err = svc.GetPlaces(ctx, source)
	} else {
		result, err = svc.GetRecords(ctx, source)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}
