package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"
)

type currency struct {
	Kind      string
	Code      string
	Name      string
	Symbol    string
	Precision int
	MinorUnit string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of currency definitions
	currs, err := convertDataToCurrencies(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the currency definitions using a template
	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

func convertDataToCurrencies(data [][]string) ([]currency, error) {
	currs := make([]currency, 0, len(data))
	for i, rec := range data {
		if len(rec) != 6 {
			return nil, fmt.Errorf("record %v: want 6 fields, got %v", i+1, len(rec))
		}
		prec, err := strconv.Atoi(rec[4])
		if err != nil {
			return nil, fmt.Errorf("record %v: precision: %w", i+1, err)
		}
		switch rec[0] {
		case "fiat", "crypto":
		default:
			return nil, fmt.Errorf("record %v: unknown kind %q", i+1, rec[0])
		}
		currs = append(currs, currency{
			Kind:      rec[0],
			Code:      rec[1],
			Name:      rec[2],
			Symbol:    rec[3],
			Precision: prec,
			MinorUnit: rec[5],
		})
	}

	// Fiat first, then crypto, each sorted by code
	sort.SliceStable(currs, func(i, j int) bool {
		if currs[i].Kind != currs[j].Kind {
			return currs[i].Kind == "fiat"
		}
		return currs[i].Code < currs[j].Code
	})
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	if _, err = writer.Write(content); err != nil {
		return err
	}
	return writer.Flush()
}
