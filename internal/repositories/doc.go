// Package repositories provides the persistence layer for shuffle run history.
//
// [HistoryRepository] records one row per completed shuffle in the SQLite
// database opened through [shared.NewDatabase]. Recording is an observer of
// the pipeline: callers treat its failures as warnings, never as pipeline
// failures.
package repositories
