// SPDX-License-Identifier: Unlicense OR MIT

package imgui

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"imoverlay.org/f32"
)

type windowSettings struct {
	Name string
	Pos  f32.Point
	Size f32.Point
}

// iniFile is the on-disk layout of the settings file:
//
//	[[window]]
//	name = "Demo"
//	pos = [60.0, 60.0]
//	size = [400.0, 300.0]
type iniFile struct {
	Windows []iniWindow `toml:"window"`
}

type iniWindow struct {
	Name string     `toml:"name"`
	Pos  [2]float32 `toml:"pos"`
	Size [2]float32 `toml:"size"`
}

// LoadIniSettingsFromDisk merges the window settings stored in path.
func LoadIniSettingsFromDisk(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := LoadIniSettingsFromMemory(data); err != nil {
		return fmt.Errorf("imgui: %s: %w", path, err)
	}
	return nil
}

// LoadIniSettingsFromMemory merges window settings from data. Windows
// created afterwards start at their saved position and size.
func LoadIniSettingsFromMemory(data []byte) error {
	ctx := mustCurrent()
	var f iniFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return err
	}
	for _, w := range f.Windows {
		if w.Name == "" {
			continue
		}
		ctx.settings[w.Name] = windowSettings{
			Name: w.Name,
			Pos:  f32.Pt(w.Pos[0], w.Pos[1]),
			Size: f32.Pt(w.Size[0], w.Size[1]),
		}
	}
	ctx.settingsReady = true
	return nil
}

// SaveIniSettingsToMemory encodes the window settings, sorted by
// window name.
func SaveIniSettingsToMemory() ([]byte, error) {
	ctx := mustCurrent()
	names := maps.Keys(ctx.settings)
	slices.Sort(names)
	var f iniFile
	for _, n := range names {
		s := ctx.settings[n]
		f.Windows = append(f.Windows, iniWindow{
			Name: s.Name,
			Pos:  [2]float32{s.Pos.X, s.Pos.Y},
			Size: [2]float32{s.Size.X, s.Size.Y},
		})
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveIniSettingsToDisk writes the window settings to path.
func SaveIniSettingsToDisk(path string) error {
	data, err := SaveIniSettingsToMemory()
	if err != nil {
		return fmt.Errorf("imgui: encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("imgui: %w", err)
	}
	logger.Debugf("saved %d window settings to %s", len(mustCurrent().settings), path)
	return nil
}
