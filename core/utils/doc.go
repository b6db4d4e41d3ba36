// Package utils provides common utility functions for bom-checker.
// It includes helpers for converting loosely typed decoded values, such as the
// distributor's value IDs that arrive either as JSON numbers or numeric strings.
package utils
