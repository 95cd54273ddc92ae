// Package sqlite provides the web contact persistence adapter backed by SQLite.
package sqlite
