/*
Package sqldataset provides methods to read labeled training data
from a table on a SQL database into an in-memory dataset.
*/
package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sproutml/sprout/dataset"
	"github.com/sproutml/sprout/feature"
)

/*
Read takes a context.Context, an open SQL database, a table name, a
slice of features and the name of the label column and returns a
dataset with one sample per table row, the parallel slice of labels
and an error.

Each feature is read from the column with its name: text columns for
categorical features, numeric columns for numerical ones. A NULL cell
is read as a missing value. An error is returned if the table or the
columns cannot be queried, or if a name cannot be used as a SQL
identifier.
*/
func Read(ctx context.Context, db *sql.DB, table string, features []feature.Feature, label string) (dataset.Dataset, []string, error) {
	columns := make([]string, 0, len(features)+1)
	for _, f := range features {
		column, err := columnName(f.Name())
		if err != nil {
			return nil, nil, err
		}
		columns = append(columns, column)
	}
	labelColumn, err := columnName(label)
	if err != nil {
		return nil, nil, err
	}
	columns = append(columns, labelColumn)
	tableName, err := columnName(table)
	if err != nil {
		return nil, nil, err
	}
	query := fmt.Sprintf(`SELECT "%s" FROM "%s"`, strings.Join(columns, `", "`), tableName)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	var samples []feature.Sample
	var labels []string
	for rows.Next() {
		values := make([]interface{}, len(features))
		dest := make([]interface{}, 0, len(features)+1)
		for i, f := range features {
			if _, ok := f.(*feature.NumericalFeature); ok {
				values[i] = &sql.NullFloat64{}
			} else {
				values[i] = &sql.NullString{}
			}
			dest = append(dest, values[i])
		}
		var rowLabel string
		dest = append(dest, &rowLabel)
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("scanning row of table %s: %v", table, err)
		}
		featureValues := make(map[string]interface{})
		for i, f := range features {
			switch v := values[i].(type) {
			case *sql.NullFloat64:
				if v.Valid {
					featureValues[f.Name()] = v.Float64
				}
			case *sql.NullString:
				if v.Valid {
					featureValues[f.Name()] = v.String
				}
			}
		}
		samples = append(samples, dataset.NewSample(featureValues))
		labels = append(labels, rowLabel)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	return dataset.New(samples), labels, nil
}

func columnName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty name cannot be used as a SQL identifier")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`name '%s' contains invalid character '"'`, name)
	}
	return name, nil
}
