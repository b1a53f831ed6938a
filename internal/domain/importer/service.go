package importer

import (
	"context"
	"io"
)

// ImportService loads field-book spreadsheets into the ledgers.
type ImportService interface {
	// ImportFieldBook reads a month's field book: worker name rows with
	// day-number columns of kg and "ADV" rows carrying that worker's cash
	// advances. Deliveries are priced against the default factory.
	ImportFieldBook(ctx context.Context, r io.Reader, month, year int) (*FieldBookSummary, error)

	// ImportWorkers reads only the worker roster from the first sheet.
	ImportWorkers(ctx context.Context, r io.Reader) (*RosterSummary, error)
}
