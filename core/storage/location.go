package storage

import (
	"fmt"
	"strings"
)

// LocationScheme prefixes object locations given on the command line.
const LocationScheme = "s3://"

// IsLocation reports whether s names an object (s3://bucket/key).
func IsLocation(s string) bool {
	return strings.HasPrefix(s, LocationScheme)
}

// ParseLocation splits s3://bucket/key into bucket and key.
func ParseLocation(location string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(location, LocationScheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid object location %q, expected s3://bucket/key", location)
	}
	return bucket, key, nil
}
