package importer

// FieldBookSummary reports what a field-book import created.
type FieldBookSummary struct {
	SheetName          string   `json:"sheet_name"`
	Month              int      `json:"month"`
	Year               int      `json:"year"`
	WorkersCreated     int      `json:"workers_created"`
	WorkersList        []string `json:"workers_list"`
	AdvancesImported   int      `json:"advances_imported"`
	DeliveriesImported int      `json:"deliveries_imported"`
}

// RosterSummary reports what a roster-only import created.
type RosterSummary struct {
	WorkersCreated  int      `json:"workers_created"`
	WorkersExisting int      `json:"workers_existing"`
	CreatedList     []string `json:"created_list"`
	ExistingList    []string `json:"existing_list"`
	TotalWorkers    int      `json:"total_workers"`
}
