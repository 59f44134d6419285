// Package directory lays a photo-paired member list into a Google
// Sheets spreadsheet sized for printing.
package directory

import (
	"context"
	"fmt"

	"lcrassist/lib/scrapers/lcr"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var tracer = otel.Tracer("directory")

// alias so the grid code doesn't need the scraper import
type person = lcr.VisualPerson

// Build runs the whole pipeline: OAuth consent, spreadsheet creation,
// cell population, print formatting. Returns the spreadsheet url.
func Build(ctx context.Context, members []lcr.VisualPerson) (string, error) {
	ctx, span := tracer.Start(ctx, "Build")
	defer span.End()

	tokenSource, err := authorize(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "oauth flow failed")
		return "", err
	}

	service, err := sheets.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return "", fmt.Errorf("initialize sheets service: %w", err)
	}

	spreadsheet, err := service.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title:    "Photo Directory",
			Locale:   "en",
			TimeZone: "America/Los_Angeles",
		},
	}).Context(ctx).Do()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create spreadsheet")
		return "", fmt.Errorf("create spreadsheet: %w", err)
	}

	if err := populate(ctx, service, spreadsheet.SpreadsheetId, members); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to populate spreadsheet")
		return "", err
	}
	if err := format(ctx, service, spreadsheet.SpreadsheetId, len(members)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to format spreadsheet")
		return "", err
	}

	return spreadsheet.SpreadsheetUrl, nil
}

func populate(ctx context.Context, service *sheets.Service, spreadsheetID string, members []lcr.VisualPerson) error {
	if len(members) == 0 {
		return nil
	}

	valueRange := ValueRange(len(members))
	_, err := service.Spreadsheets.Values.Update(spreadsheetID, valueRange, &sheets.ValueRange{
		MajorDimension: "ROWS",
		Range:          valueRange,
		Values:         CellValues(members),
	}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("write spreadsheet values: %w", err)
	}
	return nil
}

// format sizes every dimension for printing: wide name columns,
// square photo cells, thin merged spacer columns between page-blocks,
// everything centered and wrapped.
func format(ctx context.Context, service *sheets.Service, spreadsheetID string, numMembers int) error {
	rows, cols := GridSize(numMembers)

	var requests []*sheets.Request

	// name columns
	for i := 1; i < cols; i += ColsPerPerson + 1 {
		requests = append(requests, columnWidth(i, 130))
	}
	// photo columns
	for i := 0; i < cols; i += ColsPerPerson + 1 {
		requests = append(requests, columnWidth(i, 80))
	}
	// row heights
	requests = append(requests, &sheets.Request{
		UpdateDimensionProperties: &sheets.UpdateDimensionPropertiesRequest{
			Fields: "pixelSize",
			Properties: &sheets.DimensionProperties{
				PixelSize: 80,
			},
			Range: &sheets.DimensionRange{
				SheetId:    0,
				Dimension:  "ROWS",
				StartIndex: 0,
				EndIndex:   int64(rows),
			},
		},
	})
	// center everything both ways and wrap names
	requests = append(requests, &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: &sheets.GridRange{
				SheetId:          0,
				StartRowIndex:    0,
				EndRowIndex:      int64(rows),
				StartColumnIndex: 0,
				EndColumnIndex:   int64(cols),
			},
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					HorizontalAlignment: "CENTER",
					VerticalAlignment:   "MIDDLE",
					WrapStrategy:        "WRAP",
				},
			},
			Fields: "userEnteredFormat(horizontalAlignment,verticalAlignment,wrapStrategy)",
		},
	})
	// spacer columns: thin and merged vertically
	for i := ColsPerPerson; i < cols; i += ColsPerPerson + 1 {
		requests = append(requests, columnWidth(i, 10))
	}
	for i := ColsPerPerson; i < cols; i += ColsPerPerson + 1 {
		requests = append(requests, &sheets.Request{
			MergeCells: &sheets.MergeCellsRequest{
				MergeType: "MERGE_COLUMNS",
				Range: &sheets.GridRange{
					SheetId:          0,
					StartRowIndex:    0,
					EndRowIndex:      int64(rows),
					StartColumnIndex: int64(i),
					EndColumnIndex:   int64(i + 1),
				},
			},
		})
	}

	_, err := service.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("format spreadsheet: %w", err)
	}
	return nil
}

func columnWidth(index, pixels int) *sheets.Request {
	return &sheets.Request{
		UpdateDimensionProperties: &sheets.UpdateDimensionPropertiesRequest{
			Fields: "pixelSize",
			Properties: &sheets.DimensionProperties{
				PixelSize: int64(pixels),
			},
			Range: &sheets.DimensionRange{
				SheetId:    0,
				Dimension:  "COLUMNS",
				StartIndex: int64(index),
				EndIndex:   int64(index + 1),
			},
		},
	}
}
