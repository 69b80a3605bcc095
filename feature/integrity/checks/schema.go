package checks

import (
	"fmt"
	"reflect"
	"strings"

	"record-importer/core/database"

	"gorm.io/gorm"
)

// SchemaReport is the result of a schema check over every entity table.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport lists the columns a table is missing.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// ExpectedColumns returns the table name and gorm column names of a model.
func ExpectedColumns(model any) (string, []string, error) {
	tabler, ok := model.(interface{ TableName() string })
	if !ok {
		return "", nil, fmt.Errorf("model %T does not implement TableName", model)
	}

	val := reflect.TypeOf(model)
	if val.Kind() != reflect.Struct {
		return "", nil, fmt.Errorf("model %T is not a struct", model)
	}

	var columns []string
	for i := 0; i < val.NumField(); i++ {
		if col := parseGormColumn(val.Field(i).Tag.Get("gorm")); col != "" {
			columns = append(columns, col)
		}
	}
	return tabler.TableName(), columns, nil
}

// CheckSchema verifies that every model's table has the columns its gorm tags name.
func CheckSchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models {
		table, columns, err := ExpectedColumns(model)
		if err != nil {
			return nil, err
		}

		missing, err := database.MissingColumns(db, table, columns)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Matched = false
			continue
		}

		tbl := TableReport{MissingColumns: missing, Status: "ok"}
		if len(missing) > 0 {
			tbl.Status = "error"
			report.Matched = false
		}
		report.Tables[table] = tbl
	}

	return report, nil
}

func parseGormColumn(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "column:") {
			return strings.TrimPrefix(p, "column:")
		}
	}
	return ""
}
