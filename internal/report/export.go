package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Format is a file format the report can be exported to.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// FormatFromPath picks the export format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch Format(ext) {
	case FormatCSV, FormatXLSX, FormatPDF:
		return Format(ext), nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want .csv, .xlsx or .pdf)", filepath.Ext(path))
	}
}

// Export writes the report to w in the given format.
func (r *Report) Export(w io.Writer, format Format) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatCSV:
		data, err = r.CSV()
	case FormatXLSX:
		data, err = r.XLSX()
	case FormatPDF:
		data, err = r.PDF()
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to build %s export: %w", format, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write %s export: %w", format, err)
	}
	return nil
}

// transactionRecord is one CSV line of the settlement plan.
type transactionRecord struct {
	Step     int    `csv:"step"`
	Payer    string `csv:"payer"`
	Receiver string `csv:"receiver"`
	Amount   string `csv:"amount"`
}

// CSV renders the settlement plan with a header row.
func (r *Report) CSV() ([]byte, error) {
	records := make([]*transactionRecord, len(r.Transactions))
	for i, t := range r.Transactions {
		records[i] = &transactionRecord{
			Step:     i + 1,
			Payer:    t.Payer,
			Receiver: t.Receiver,
			Amount:   Money(t.Amount),
		}
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal(records, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// XLSX renders a workbook with summary, balances and transactions sheets.
func (r *Report) XLSX() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "summary"
	balancesSheet := "balances"
	transactionsSheet := "transactions"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(balancesSheet)
	f.NewSheet(transactionsSheet)

	total, _ := r.Total.Round(2).Float64()
	share, _ := r.Share.Round(2).Float64()
	_ = f.SetCellValue(summarySheet, "A1", "Group Expense Summary")
	_ = f.SetCellValue(summarySheet, "A3", "Total Expense")
	_ = f.SetCellValue(summarySheet, "B3", total)
	_ = f.SetCellValue(summarySheet, "A4", "Number of People")
	_ = f.SetCellValue(summarySheet, "B4", r.Participants())
	_ = f.SetCellValue(summarySheet, "A5", "Equal Share per Person")
	_ = f.SetCellValue(summarySheet, "B5", share)
	_ = f.SetCellValue(summarySheet, "A6", "Transactions Needed")
	_ = f.SetCellValue(summarySheet, "B6", len(r.Transactions))

	_ = f.SetCellValue(balancesSheet, "A1", "Name")
	_ = f.SetCellValue(balancesSheet, "B1", "Amount Paid")
	_ = f.SetCellValue(balancesSheet, "C1", "Equal Share")
	_ = f.SetCellValue(balancesSheet, "D1", "Balance")
	_ = f.SetCellValue(balancesSheet, "E1", "Status")
	for i, row := range r.Rows() {
		n := i + 2
		paid, _ := row.Paid.Float64()
		balance, _ := row.Balance.Float64()
		_ = f.SetCellValue(balancesSheet, fmt.Sprintf("A%d", n), row.Name)
		_ = f.SetCellValue(balancesSheet, fmt.Sprintf("B%d", n), paid)
		_ = f.SetCellValue(balancesSheet, fmt.Sprintf("C%d", n), share)
		_ = f.SetCellValue(balancesSheet, fmt.Sprintf("D%d", n), balance)
		_ = f.SetCellValue(balancesSheet, fmt.Sprintf("E%d", n), string(row.Status))
	}

	_ = f.SetCellValue(transactionsSheet, "A1", "Step")
	_ = f.SetCellValue(transactionsSheet, "B1", "Payer")
	_ = f.SetCellValue(transactionsSheet, "C1", "Receiver")
	_ = f.SetCellValue(transactionsSheet, "D1", "Amount")
	for i, t := range r.Transactions {
		n := i + 2
		amount, _ := t.Amount.Float64()
		_ = f.SetCellValue(transactionsSheet, fmt.Sprintf("A%d", n), i+1)
		_ = f.SetCellValue(transactionsSheet, fmt.Sprintf("B%d", n), t.Payer)
		_ = f.SetCellValue(transactionsSheet, fmt.Sprintf("C%d", n), t.Receiver)
		_ = f.SetCellValue(transactionsSheet, fmt.Sprintf("D%d", n), amount)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PDF renders a one-page settlement statement.
func (r *Report) PDF() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Group Expense Summary & Settlement Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total Expense: %s", Money(r.Total)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Number of People: %d", r.Participants()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Equal Share per Person: %s", Money(r.Share)))
	pdf.Ln(8)

	// Balance sheet
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 6, "Name", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Amount Paid", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Equal Share", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Balance", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Status", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, row := range r.Rows() {
		pdf.CellFormat(50, 6, tr(row.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, Money(row.Paid), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, Money(row.Share), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, Signed(row.Balance), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, string(row.Status), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, "Settlement Instructions")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	if r.Settled() {
		pdf.Cell(0, 6, "Everyone is settled! No payments needed.")
		pdf.Ln(5)
	}
	for i, t := range r.Transactions {
		pdf.Cell(0, 6, tr(fmt.Sprintf("%d. %s should pay %s %s", i+1, t.Payer, t.Receiver, Money(t.Amount))))
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
