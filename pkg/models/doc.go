// Package models provides shared data models for claude-setup.
//
// # Project Configuration
//
// [ProjectConfig] is built once per run from the command line and the
// current time, and is passed by value into every render and write step:
//
//	cfg := models.ProjectConfig{Name: "demo-app", Root: "/work/demo-app", CreatedAt: time.Now()}
//	cfg.Timestamp() // "2026-10-19T09:30:00+02:00"
//	cfg.Date()      // "2026-10-19"
package models
