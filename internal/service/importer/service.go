package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/sambu-farm/farm-backend-go/internal/domain/advance"
	"github.com/sambu-farm/farm-backend-go/internal/domain/delivery"
	"github.com/sambu-farm/farm-backend-go/internal/domain/factory"
	"github.com/sambu-farm/farm-backend-go/internal/domain/importer"
	"github.com/sambu-farm/farm-backend-go/internal/domain/payroll"
	"github.com/sambu-farm/farm-backend-go/internal/domain/worker"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/database"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/validator"
	"github.com/sambu-farm/farm-backend-go/internal/repository/postgresql"
	deliverysvc "github.com/sambu-farm/farm-backend-go/internal/service/delivery"
)

// importedWorkerRole is assigned to workers the field book introduces.
const importedWorkerRole = "Tea Plucker"

// maxDayColumns bounds the day-number columns read per row (days 1-31).
const maxDayColumns = 31

// skipTokens are first-column values that are never worker names.
var skipTokens = map[string]struct{}{
	"TOTALS":       {},
	"TOTAL":        {},
	"DATE":         {},
	"KGS":          {},
	"GROSS":        {},
	"NET":          {},
	"DWD":          {},
	"SUP.  VICTOR": {},
}

// factoryPrefixes mark roster rows that carry factory totals, not workers.
var factoryPrefixes = []string{"KAISUGU", "FINLAYS", "KTDA", "KURESOI", "KIPNG"}

type ImportServiceImpl struct {
	db           *database.DB
	workerRepo   worker.WorkerRepository
	factoryRepo  factory.FactoryRepository
	deliveryRepo delivery.DeliveryRepository
	advanceRepo  advance.AdvanceRepository
	workerRate   decimal.Decimal
}

func NewImportService(
	db *database.DB,
	workerRepo worker.WorkerRepository,
	factoryRepo factory.FactoryRepository,
	deliveryRepo delivery.DeliveryRepository,
	advanceRepo advance.AdvanceRepository,
	workerRate decimal.Decimal,
) importer.ImportService {
	return &ImportServiceImpl{
		db:           db,
		workerRepo:   workerRepo,
		factoryRepo:  factoryRepo,
		deliveryRepo: deliveryRepo,
		advanceRepo:  advanceRepo,
		workerRate:   workerRate,
	}
}

// dayEntry is one positive cell keyed by its day-of-month column.
type dayEntry struct {
	day   int
	value decimal.Decimal
}

// workerRows is one worker's parsed block: kg per day plus any ADV row.
type workerRows struct {
	name       string
	quantities []dayEntry
	advances   []dayEntry
}

func (s *ImportServiceImpl) ImportFieldBook(ctx context.Context, r io.Reader, month, year int) (*importer.FieldBookSummary, error) {
	if !validator.IsValidMonth(month) {
		return nil, payroll.ErrInvalidMonth
	}

	sheetName, rows, err := firstSheet(r)
	if err != nil {
		return nil, err
	}

	parsed := parseFieldBook(rows)

	defaultFactory, err := s.factoryRepo.GetDefault(ctx)
	if err != nil {
		return nil, err
	}

	summary := &importer.FieldBookSummary{
		SheetName:   sheetName,
		Month:       month,
		Year:        year,
		WorkersList: []string{},
	}
	importNote := fmt.Sprintf("Imported from field book - %s", sheetName)

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, block := range parsed {
			w, err := s.resolveWorker(txCtx, block.name)
			if err != nil {
				return err
			}

			created, err := s.importWorkerBlock(txCtx, w, block, defaultFactory, month, year, importNote)
			if err != nil {
				return err
			}
			if created.workerCreated {
				summary.WorkersCreated++
				summary.WorkersList = append(summary.WorkersList, w.Name)
			}
			summary.AdvancesImported += created.advances
			summary.DeliveriesImported += created.deliveries
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

type blockResult struct {
	workerCreated bool
	advances      int
	deliveries    int
}

// importWorkerBlock records one worker's month: pending advances plus
// deliveries priced against the default factory at import time.
func (s *ImportServiceImpl) importWorkerBlock(ctx context.Context, w worker.Worker, block workerRows, f factory.Factory, month, year int, note string) (blockResult, error) {
	var res blockResult
	res.workerCreated = w.ID == "" // resolveWorker leaves ID empty until Create

	if res.workerCreated {
		created, err := s.workerRepo.Create(ctx, w)
		if err != nil {
			return res, err
		}
		w = created
	}

	for _, adv := range block.advances {
		_, err := s.advanceRepo.Create(ctx, advance.Advance{
			WorkerID:    w.ID,
			Amount:      adv.value,
			Month:       month,
			Year:        year,
			AdvanceDate: time.Date(year, time.Month(month), adv.day, 0, 0, 0, 0, time.UTC),
			Deducted:    false,
			Notes:       &note,
		})
		if err != nil {
			return res, err
		}
		res.advances++
	}

	for _, daily := range block.quantities {
		d, err := s.deliveryRepo.Create(ctx, delivery.Delivery{
			WorkerID:    w.ID,
			FactoryID:   &f.ID,
			QuantityKg:  daily.value,
			DeliveredAt: time.Date(year, time.Month(month), daily.day, 0, 0, 0, 0, time.UTC),
			Comment:     &note,
		})
		if err != nil {
			return res, err
		}

		snap := deliverysvc.ComputePricing(d.QuantityKg, s.workerRate, f)
		d.FactoryID = &f.ID
		d.WorkerRate = &snap.WorkerRate
		d.FactoryRate = &snap.FactoryRate
		d.TransportDeduction = &snap.TransportDeduction
		d.WorkerPayment = &snap.WorkerPayment
		d.FactoryGross = &snap.FactoryGross
		d.FactoryNetToFarm = &snap.FactoryNetToFarm
		d.FarmProfit = &snap.FarmProfit
		if _, err := s.deliveryRepo.SetPricing(ctx, d); err != nil {
			return res, err
		}
		res.deliveries++
	}

	return res, nil
}

// resolveWorker looks a field-book name up in the roster. A missing worker
// is returned unsaved with an empty ID for the caller to create.
func (s *ImportServiceImpl) resolveWorker(ctx context.Context, name string) (worker.Worker, error) {
	w, err := s.workerRepo.GetByName(ctx, name)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, worker.ErrWorkerNotFound) {
		return worker.Worker{}, err
	}

	return worker.Worker{
		Name:     name,
		Role:     importedWorkerRole,
		PayType:  worker.PayTypePerKilo,
		PayRate:  decimal.Zero,
		IsActive: true,
	}, nil
}

func (s *ImportServiceImpl) ImportWorkers(ctx context.Context, r io.Reader) (*importer.RosterSummary, error) {
	_, rows, err := firstSheet(r)
	if err != nil {
		return nil, err
	}

	names := parseRoster(rows)

	summary := &importer.RosterSummary{
		CreatedList:  []string{},
		ExistingList: []string{},
		TotalWorkers: len(names),
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, name := range names {
			_, err := s.workerRepo.GetByName(txCtx, name)
			if err == nil {
				summary.ExistingList = append(summary.ExistingList, name)
				continue
			}
			if !errors.Is(err, worker.ErrWorkerNotFound) {
				return err
			}

			if _, err := s.workerRepo.Create(txCtx, worker.Worker{
				Name:     name,
				Role:     importedWorkerRole,
				PayType:  worker.PayTypePerKilo,
				PayRate:  decimal.Zero,
				IsActive: true,
			}); err != nil {
				return err
			}
			summary.CreatedList = append(summary.CreatedList, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(summary.CreatedList)
	sort.Strings(summary.ExistingList)
	summary.WorkersCreated = len(summary.CreatedList)
	summary.WorkersExisting = len(summary.ExistingList)
	return summary, nil
}

// firstSheet opens the workbook and returns its first sheet's rows.
func firstSheet(r io.Reader) (string, [][]string, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return "", nil, importer.ErrInvalidFile
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return "", nil, importer.ErrEmptyWorkbook
	}
	sheetName := sheets[0]

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	return sheetName, rows, nil
}

// parseFieldBook walks the sheet top to bottom. A non-token first cell
// starts a worker block; a following ADV row carries that worker's advances.
func parseFieldBook(rows [][]string) []workerRows {
	var (
		order   []workerRows
		indexOf = make(map[string]int)
		current = -1
	)

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		first := strings.TrimSpace(row[0])
		if first == "" {
			continue
		}
		upper := strings.ToUpper(first)

		if upper == "ADV" {
			if current >= 0 {
				order[current].advances = append(order[current].advances, parseDayCells(row)...)
			}
			continue
		}
		if _, skip := skipTokens[upper]; skip {
			continue
		}

		idx, seen := indexOf[first]
		if !seen {
			order = append(order, workerRows{name: first})
			idx = len(order) - 1
			indexOf[first] = idx
		}
		current = idx
		order[idx].quantities = append(order[idx].quantities, parseDayCells(row)...)
	}

	return order
}

// parseRoster collects worker names, skipping header, total, and
// factory-summary rows.
func parseRoster(rows [][]string) []string {
	seen := make(map[string]struct{})
	var names []string

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		first := strings.TrimSpace(row[0])
		if first == "" {
			continue
		}
		upper := strings.ToUpper(first)

		if upper == "ADV" {
			continue
		}
		if _, skip := skipTokens[upper]; skip {
			continue
		}
		if hasFactoryPrefix(upper) {
			continue
		}

		if _, dup := seen[first]; !dup {
			seen[first] = struct{}{}
			names = append(names, first)
		}
	}

	return names
}

func hasFactoryPrefix(upper string) bool {
	for _, prefix := range factoryPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

// parseDayCells reads columns 1..31 of a row as (day, positive amount)
// pairs. Non-numeric and non-positive cells are ignored.
func parseDayCells(row []string) []dayEntry {
	var entries []dayEntry
	limit := len(row)
	if limit > maxDayColumns+1 {
		limit = maxDayColumns + 1
	}
	for col := 1; col < limit; col++ {
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}
		value, err := strconv.ParseFloat(cell, 64)
		if err != nil || value <= 0 {
			continue
		}
		entries = append(entries, dayEntry{day: col, value: decimal.NewFromFloat(value)})
	}
	return entries
}
