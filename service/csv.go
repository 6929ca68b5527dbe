package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"salesdash/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var csvHeader = []string{"Date", "Category", "Product", "Quantity", "Unit Price", "Total Price"}

// Заголовки CSV из разных систем выгрузки называются по-разному.
var columnAliases = map[string][]string{
	"Date":        {"Date", "date", "order_date"},
	"Category":    {"Category", "category", "Product Category"},
	"Product":     {"Product", "product", "item"},
	"Quantity":    {"Quantity", "quantity", "Qty", "qty"},
	"Unit Price":  {"Unit Price", "unit_price", "Unit_Price", "price"},
	"Total Price": {"Total Price", "total_price", "Total_Sales", "total_sales", "sales", "Sales"},
}

func parseSalesCSV(r io.Reader, userID int) ([]models.SaleRecord, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, errors.New("пустой CSV файл")
		}
		return nil, 0, err
	}

	columns, err := resolveColumns(header)
	if err != nil {
		return nil, 0, err
	}

	var records []models.SaleRecord
	skipped := 0
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, 0, err
		}
		rec, ok := parseSalesRow(row, columns, userID)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

func resolveColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	columns := make(map[string]int, len(csvHeader))
	for _, standard := range csvHeader {
		found := -1
		for _, alias := range columnAliases[standard] {
			if i, ok := index[alias]; ok {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("в CSV отсутствует обязательная колонка: %s", standard)
		}
		columns[standard] = found
	}
	return columns, nil
}

func parseSalesRow(row []string, columns map[string]int, userID int) (models.SaleRecord, bool) {
	field := func(name string) (string, bool) {
		i := columns[name]
		if i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	dateStr, ok := field("Date")
	if !ok {
		return models.SaleRecord{}, false
	}
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return models.SaleRecord{}, false
	}

	category, ok := field("Category")
	if !ok || category == "" {
		return models.SaleRecord{}, false
	}
	product, ok := field("Product")
	if !ok || product == "" {
		return models.SaleRecord{}, false
	}

	qtyStr, ok := field("Quantity")
	if !ok {
		return models.SaleRecord{}, false
	}
	quantity, err := strconv.Atoi(qtyStr)
	if err != nil || quantity <= 0 {
		return models.SaleRecord{}, false
	}

	unitStr, ok := field("Unit Price")
	if !ok {
		return models.SaleRecord{}, false
	}
	unitPrice, err := decimal.NewFromString(unitStr)
	if err != nil || unitPrice.IsNegative() {
		return models.SaleRecord{}, false
	}

	totalStr, ok := field("Total Price")
	if !ok {
		return models.SaleRecord{}, false
	}
	totalPrice, err := decimal.NewFromString(totalStr)
	if err != nil || totalPrice.IsNegative() {
		return models.SaleRecord{}, false
	}

	return models.SaleRecord{
		UserID:     userID,
		Date:       date,
		Category:   category,
		Product:    product,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: totalPrice,
	}, true
}

func writeSalesCSV(w io.Writer, records []models.SaleRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Date.Format(dateLayout),
			rec.Category,
			rec.Product,
			strconv.Itoa(rec.Quantity),
			rec.UnitPrice.String(),
			rec.TotalPrice.String(),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func newUploadID() string {
	return uuid.NewString()
}
