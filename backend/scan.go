package backend

import (
	"database/sql"
	"fmt"
)

// ScanRows materializes a database/sql result set into a slice of rows keyed
// by column name. The caller retains ownership of rows and must close it.
func ScanRows(rows *sql.Rows) ([]Row, error) {
	columnNames, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get column names: %w", err)
	}

	var results []Row
	for rows.Next() {
		values := make([]any, len(columnNames))
		valuePtrs := make([]any, len(columnNames))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}

		row := make(Row, len(columnNames))
		for i, colName := range columnNames {
			row[colName] = values[i]
		}
		results = append(results, row)
	}

	return results, rows.Err()
}
