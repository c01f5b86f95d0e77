// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing time series data,
// along with functions for data loading, splicing, and summary statistics.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	// Load a specific column
//	series, err := timeseries.LoadCSVColumn("data.csv", "value")
//
//	// Load with filtering
//	series, err := timeseries.LoadCSVFiltered(
//	    "data.csv",
//	    "sensor", "sensor-7",  // filter column and value
//	    "reading",             // value column
//	)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//	spread := series.Range()
//
// # Splicing
//
// Splice one series into another, either at a position or appended:
//
//	// host[0:5] + segment + host[5:]
//	spliced, err := timeseries.Insert(host, segment, 5)
//
//	// host + segment
//	appended := timeseries.Concat(host, segment)
//
// The inputs are never mutated; the result is reindexed from 0.
//
// # Slicing and Manipulation
//
// Work with subsets of the data:
//
//	subset := series.Slice(10, 50)
//	copy := series.Copy()
package timeseries
