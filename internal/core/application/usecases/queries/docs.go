// Package queries contains read-only operations served straight from the
// database with gorm raw SQL.
package queries
