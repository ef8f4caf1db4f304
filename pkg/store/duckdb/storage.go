package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const CampaignTableSchema = `
	CREATE TABLE IF NOT EXISTS email_campaigns (
		id VARCHAR NOT NULL,
		user_id VARCHAR NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		start_date TIMESTAMP NOT NULL,
		end_date TIMESTAMP NOT NULL,
		recipients JSON,
		PRIMARY KEY (user_id, id)
	);
`

var bootQueries = []string{
	CampaignTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return sql.OpenDB(c), nil
}
