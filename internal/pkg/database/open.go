package database

import "fmt"

// Open returns the KV driver selected by name: "memory", "sqlite" or "postgres".
func Open(driver, sqlitePath, postgresDSN string) (KV, error) {
	switch driver {
	case "memory":
		return NewMemoryKV(), nil
	case "sqlite", "":
		kv, err := NewSQLiteKV(sqlitePath)
		if err != nil {
			return nil, err
		}
		return kv, nil
	case "postgres":
		db, err := NewPostgreSQLDB(postgresDSN)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", driver)
	}
}
