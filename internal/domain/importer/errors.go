package importer

import "errors"

var (
	ErrInvalidFile   = errors.New("file must be an Excel workbook (.xlsx)")
	ErrEmptyWorkbook = errors.New("workbook has no sheets")
)
