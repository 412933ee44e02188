/*
Package pgadapter opens PostgreSQL databases for use with the
sqldataset package.
*/
package pgadapter

import (
	"database/sql"

	// Import of postgresql driver
	_ "github.com/lib/pq"
)

/*
Open takes a PostgreSQL connection URL and returns an open database
handle on it or an error if the URL cannot be parsed by the driver.
*/
func Open(url string) (*sql.DB, error) {
	return sql.Open("postgres", url)
}
