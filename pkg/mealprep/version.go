// Package mealprep exposes module-level metadata.
package mealprep

const Version = "0.1.0"
