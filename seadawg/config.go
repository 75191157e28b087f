// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package seadawg

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// Config configures a new Automaton. The zero value is usable: New
// replaces a zero MaxStringLength with DefaultMaxStringLength.
type Config struct {
	// MaxStringLength bounds the byte length of any single sink. Must
	// fit a signed 16-bit edge-span index. Zero means DefaultMaxStringLength.
	MaxStringLength int `json:"maxStringLength,omitempty"`

	// Debug enables one log line per Add call (sink id, length, node and
	// edge counts). Queries do not log.
	Debug bool `json:"debug,omitempty"`

	// Diagnostics enables the approximate dedup filter in front of the
	// query result set. The filter counts hits and misses internally;
	// Stats does not report those counters.
	Diagnostics bool `json:"diagnostics,omitempty"`
}

// DefaultConfig returns the configuration New uses when none is given.
func DefaultConfig() Config {
	return Config{MaxStringLength: DefaultMaxStringLength}
}

// NewFromYAML decodes a Config from a YAML document, applying
// DefaultConfig's zero-value fallbacks after decoding.
func NewFromYAML(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("seadawg: decoding config: %w", err)
	}
	if cfg.MaxStringLength <= 0 {
		cfg.MaxStringLength = DefaultMaxStringLength
	}
	return &cfg, nil
}

func (c Config) normalize() Config {
	if c.MaxStringLength <= 0 {
		c.MaxStringLength = DefaultMaxStringLength
	}
	return c
}
