// Copyright 2026 zoomETFs Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MOMOGSDIOP/zoomETFsProject/core"
)

// CSV column layout. Multi-valued columns use ';' as an internal
// separator; numeric columns may be left empty.
const (
	colName = iota
	colISIN
	colCategory
	colDescription
	colSectors
	colRegion
	colType
	colTags
	colReplication
	colAvailability
	colStrategies
	colIssuer
	colSymbol
	colFees
	colPerformance
	colRisk
	colESG
	columnCount
)

// LoadETFs loads catalog records from a JSON or CSV file, dispatching
// on the file extension.
func LoadETFs(filePath string) ([]*core.ETF, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return LoadJSON(filePath)
	case ".csv":
		return LoadCSV(filePath)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filePath)
	}
}

// LoadJSON loads records from a JSON array file.
func LoadJSON(filePath string) ([]*core.ETF, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var etfs []*core.ETF
	if err := json.NewDecoder(f).Decode(&etfs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}
	return etfs, nil
}

// LoadCSV loads records from a CSV file. A header row starting with
// "name" is skipped. Rows with fewer columns than the layout expects
// are skipped rather than failing the whole file.
func LoadCSV(filePath string) ([]*core.ETF, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}

	if len(records) > 0 && strings.EqualFold(records[0][colName], "name") {
		records = records[1:]
	}

	var etfs []*core.ETF
	for _, record := range records {
		if len(record) < columnCount {
			continue
		}
		etfs = append(etfs, &core.ETF{
			Name:         record[colName],
			ISIN:         record[colISIN],
			Category:     record[colCategory],
			Description:  record[colDescription],
			Sectors:      splitList(record[colSectors]),
			Region:       record[colRegion],
			Type:         record[colType],
			Tags:         splitList(record[colTags]),
			Replication:  record[colReplication],
			Availability: record[colAvailability],
			Strategies:   splitList(record[colStrategies]),
			Issuer:       record[colIssuer],
			Symbol:       record[colSymbol],
			Fees:         parseFloat(record[colFees]),
			Performance:  parseFloat(record[colPerformance]),
			Risk:         parseInt(record[colRisk]),
			ESGScore:     parseFloat(record[colESG]),
		})
	}
	return etfs, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
