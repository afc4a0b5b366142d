// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

// Package config loads layered application configuration with Koanf v2:
// built-in defaults, then an optional YAML file, then environment
// variables. Precedence is ENV > file > defaults.
package config
