package repository

import (
	"fmt"
	"strings"
)

// DatabaseType represents different database backend options
type DatabaseType string

const (
	DatabaseTypeBadger DatabaseType = "badger"
	DatabaseTypeBolt   DatabaseType = "bolt"
)

// NewRunStore creates a run store backed by the specified database type.
//
// Database Types:
// - badger: High-performance LSM-tree database, directory-based storage
// - bolt: Compact B+ tree database, single small file, default
func NewRunStore(dbPath string, dbType DatabaseType) (RunStore, error) {
	switch dbType {
	case DatabaseTypeBolt:
		if !strings.HasSuffix(dbPath, ".bolt") {
			dbPath = dbPath + ".bolt"
		}
		return NewBoltRunStore(dbPath)

	case DatabaseTypeBadger:
		return NewBadgerRunStore(dbPath)

	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}
