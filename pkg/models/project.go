package models

import "time"

// Timestamp and date layouts embedded into generated files.
const (
	TimestampLayout = time.RFC3339
	DateLayout      = "2006-01-02"
)

// ProjectConfig is the immutable input of a single setup run.
type ProjectConfig struct {
	Name      string    `yaml:"name" json:"name"`
	Root      string    `yaml:"root" json:"root"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
}

// Timestamp returns the ISO 8601 creation time.
func (c ProjectConfig) Timestamp() string {
	return c.CreatedAt.Format(TimestampLayout)
}

// Date returns the creation day as YYYY-MM-DD.
func (c ProjectConfig) Date() string {
	return c.CreatedAt.Format(DateLayout)
}
