package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sproutml/sprout/dataset"
	"github.com/sproutml/sprout/dataset/csv"
	"github.com/sproutml/sprout/dataset/mongodataset"
	"github.com/sproutml/sprout/dataset/sqldataset"
	"github.com/sproutml/sprout/dataset/sqldataset/pgadapter"
	"github.com/sproutml/sprout/dataset/sqldataset/sqlite3adapter"
	"github.com/sproutml/sprout/feature/yaml"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
)

type dataCmdConfig struct {
	*rootCmdConfig
	dataInput  string
	table      string
	maxDBConns int
}

func (dcc *dataCmdConfig) trainingData(ctx context.Context, md *yaml.Metadata) (dataset.Dataset, []string, error) {
	if strings.HasPrefix(dcc.dataInput, "postgresql://") {
		return dcc.postgreSQLTrainingData(ctx, md)
	}
	if strings.HasPrefix(dcc.dataInput, "mongodb://") {
		return dcc.mongoDBTrainingData(ctx, md)
	}
	if strings.HasSuffix(dcc.dataInput, ".db") {
		return dcc.sqlite3TrainingData(ctx, md)
	}
	var f *os.File
	if dcc.dataInput == "" {
		dcc.Logf("Reading training data from STDIN...")
		f = os.Stdin
	} else {
		dcc.Logf("Opening %s to read training data...", dcc.dataInput)
		var err error
		f, err = os.Open(dcc.dataInput)
		if err != nil {
			return nil, nil, fmt.Errorf("opening training data at %s: %v", dcc.dataInput, err)
		}
		defer f.Close()
	}
	ds, labels, err := csv.ReadDataset(f, md.Features, md.Label)
	if err != nil {
		return nil, nil, fmt.Errorf("reading training data: %v", err)
	}
	return ds, labels, nil
}

func (dcc *dataCmdConfig) sqlite3TrainingData(ctx context.Context, md *yaml.Metadata) (dataset.Dataset, []string, error) {
	dcc.Logf("Opening SQLite3 file %s to read training data...", dcc.dataInput)
	db, err := sqlite3adapter.Open(dcc.dataInput, dcc.maxDBConns)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()
	return sqldataset.Read(ctx, db, dcc.table, md.Features, md.Label)
}

func (dcc *dataCmdConfig) postgreSQLTrainingData(ctx context.Context, md *yaml.Metadata) (dataset.Dataset, []string, error) {
	dcc.Logf("Connecting to PostgreSQL url %s to read training data...", dcc.dataInput)
	db, err := pgadapter.Open(dcc.dataInput)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()
	return sqldataset.Read(ctx, db, dcc.table, md.Features, md.Label)
}

func (dcc *dataCmdConfig) mongoDBTrainingData(ctx context.Context, md *yaml.Metadata) (dataset.Dataset, []string, error) {
	dcc.Logf("Connecting to MongoDB url %s to read training data...", dcc.dataInput)
	session, err := mgo.Dial(dcc.dataInput)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to %s: %v", dcc.dataInput, err)
	}
	defer session.Close()
	return mongodataset.Read(ctx, session, dcc.table, md.Features, md.Label)
}

func (dcc *dataCmdConfig) declareFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(dcc.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVar(&(dcc.table), "table", "samples", "name of the table or collection with the data when the input is a DB")
	cmd.PersistentFlags().IntVar(&(dcc.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
}
