// Package config implements configuration management for stampkit.
//
// Package: config
// Title: Configuration Management
// Description: This package loads configuration from TOML and YAML files
//              with automatic format detection, default value merging, and
//              environment variable overrides. Keys use dot notation for
//              nested access ("output.format"), and each lookup consults the
//              environment first so deployments can override files without
//              editing them.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("stampkit.toml", config.LoadOptions{
//		EnvPrefix: "STAMPKIT",
//		Defaults: map[string]interface{}{
//			"log": map[string]interface{}{"level": "info"},
//		},
//	})
//	level := cfg.GetString("log.level")
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation
package config
