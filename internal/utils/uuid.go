package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator hands out time-ordered identifiers for staged uploads and
// request traces.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to v4 if the clock source
// fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// FileName returns a fresh identifier followed by ext in lower case. ext may
// be given with or without the leading dot; an empty ext yields a bare id.
func (g *UUIDGenerator) FileName(ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return g.Generate() + strings.ToLower(ext)
}
