// Package reaper runs one synchronization: it loads the index table, gathers
// and normalizes the series of every listed metric one after another and
// hands the resulting document to the sinks. Nothing is written unless every
// metric was gathered successfully.
package reaper
