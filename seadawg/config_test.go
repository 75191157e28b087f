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

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxStringLength != DefaultMaxStringLength {
		t.Errorf("DefaultConfig().MaxStringLength = %d, want %d", cfg.MaxStringLength, DefaultMaxStringLength)
	}
}

func TestNewFromYAML(t *testing.T) {
	doc := []byte("maxStringLength: 100\ndebug: true\n")
	cfg, err := NewFromYAML(doc)
	if err != nil {
		t.Fatalf("NewFromYAML: %v", err)
	}
	if cfg.MaxStringLength != 100 {
		t.Errorf("MaxStringLength = %d, want 100", cfg.MaxStringLength)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if cfg.Diagnostics {
		t.Error("Diagnostics = true, want false")
	}
}

func TestNewFromYAMLAppliesDefaultForZeroMaxLength(t *testing.T) {
	cfg, err := NewFromYAML([]byte("debug: false\n"))
	if err != nil {
		t.Fatalf("NewFromYAML: %v", err)
	}
	if cfg.MaxStringLength != DefaultMaxStringLength {
		t.Errorf("MaxStringLength = %d, want default %d", cfg.MaxStringLength, DefaultMaxStringLength)
	}
}

func TestNewFromYAMLRejectsMalformedInput(t *testing.T) {
	if _, err := NewFromYAML([]byte("not: [valid: yaml")); err == nil {
		t.Fatal("NewFromYAML with malformed input returned no error")
	}
}

func TestConfigNormalizeZeroValue(t *testing.T) {
	cfg := Config{}.normalize()
	if cfg.MaxStringLength != DefaultMaxStringLength {
		t.Errorf("normalize() of zero value MaxStringLength = %d, want %d", cfg.MaxStringLength, DefaultMaxStringLength)
	}
}
