package repository

import "strings"

const (
	KeyMaterials = "materials"
	KeyEstimates = "estimates"
)

// isoTimestampLayout is ISO-8601 with millisecond precision, the format the
// documents have always been written in.
const isoTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func storageKey(prefix, name string) string {
	return strings.TrimSpace(prefix) + name
}
