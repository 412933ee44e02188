/*
Package csv provides methods to read labeled datasets from CSV
streams and files.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sproutml/sprout/dataset"
	"github.com/sproutml/sprout/feature"
)

/*
ReadDataset takes an io.Reader for a CSV stream, a slice of features
and the name of the label column and returns a dataset with the
samples parsed from the reader, the parallel slice of labels and an
error.

The header or first row of the CSV content is expected to contain the
name of the label column and the names of the given features; columns
matching neither are ignored. The rest of the rows should consist of
valid values for the features and/or the '?' string to indicate a
missing value.
*/
func ReadDataset(reader io.Reader, features []feature.Feature, label string) (dataset.Dataset, []string, error) {
	featuresByName := make(map[string]feature.Feature, len(features))
	for _, f := range features {
		featuresByName[f.Name()] = f
	}
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %v", err)
	}
	labelColumn := -1
	columnFeatures := make([]feature.Feature, len(header))
	for i, name := range header {
		if name == label {
			labelColumn = i
			continue
		}
		columnFeatures[i] = featuresByName[name]
	}
	if labelColumn < 0 {
		return nil, nil, fmt.Errorf("label column %s not present in header", label)
	}
	var samples []feature.Sample
	var labels []string
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading body: %v", err)
		}
		sample, label, err := parseSampleFromCSVRow(row, columnFeatures, labelColumn)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing line %d: %v", l, err)
		}
		samples = append(samples, sample)
		labels = append(labels, label)
	}
	return dataset.New(samples), labels, nil
}

/*
ReadSamples takes an io.Reader for a CSV stream and a slice of
features and returns the samples parsed from the reader or an error.
It works like ReadDataset except that no label column is expected:
use it to read samples to classify with an already grown tree.
*/
func ReadSamples(reader io.Reader, features []feature.Feature) ([]feature.Sample, error) {
	featuresByName := make(map[string]feature.Feature, len(features))
	for _, f := range features {
		featuresByName[f.Name()] = f
	}
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	columnFeatures := make([]feature.Feature, len(header))
	for i, name := range header {
		columnFeatures[i] = featuresByName[name]
	}
	var samples []feature.Sample
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		sample, _, err := parseSampleFromCSVRow(row, columnFeatures, -1)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %v", l, err)
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

/*
ReadDatasetFromFilePath takes a filepath string, a slice of features
and the name of the label column, opens the file the filepath points
to and uses ReadDataset to return a dataset read from it with its
labels, or an error. It will return an error if the given filepath
cannot be opened for reading.
*/
func ReadDatasetFromFilePath(filepath string, features []feature.Feature, label string) (dataset.Dataset, []string, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dataset at %s: %v", filepath, err)
	}
	defer f.Close()
	return ReadDataset(f, features, label)
}

func parseSampleFromCSVRow(row []string, columnFeatures []feature.Feature, labelColumn int) (feature.Sample, string, error) {
	if len(row) != len(columnFeatures) {
		return nil, "", fmt.Errorf("expected %d columns, got %d", len(columnFeatures), len(row))
	}
	featureValues := make(map[string]interface{})
	for i, cell := range row {
		if i == labelColumn {
			continue
		}
		f := columnFeatures[i]
		if f == nil {
			continue
		}
		if cell == "?" {
			continue
		}
		var value interface{} = cell
		if _, ok := f.(*feature.NumericalFeature); ok {
			floatValue, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, "", fmt.Errorf("value %s for numerical feature %s: %v", cell, f.Name(), err)
			}
			value = floatValue
		}
		ok, err := f.Valid(value)
		if err != nil {
			return nil, "", err
		}
		if !ok {
			return nil, "", fmt.Errorf("invalid value %s for feature %s", cell, f.Name())
		}
		featureValues[f.Name()] = value
	}
	var label string
	if labelColumn >= 0 {
		label = row[labelColumn]
	}
	return dataset.NewSample(featureValues), label, nil
}
