package repository

import (
	"os"
	"strconv"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Monetary and numeric fields are stored as strings to avoid any float
// round-tripping surprises in DynamoDB number attributes.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
