package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a single level table.
func ParseYAML(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("parse level yaml: %w", err)
	}
	return t, nil
}

// LoadTMX reads a Tiled map. Object groups:
//
//	Platforms   rectangles; bool property "floor" anchors to the floor at full width
//	Spikes      rectangles; bool property "floor" rests them on the floor top
//	ShipPart    one object with int "platformIndex" and float "offsetX"/"offsetY"
//	PlayerSpawn one point object
//
// Map y positions are stored relative to the map bottom so TMX levels follow
// the viewport height the same way YAML tables do.
func LoadTMX(fsys fs.FS, tmxPath string) (Table, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Table{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	mapH := float64(levelMap.Height * levelMap.TileHeight)
	t := Table{Name: stem(tmxPath)}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Platforms":
			// Tiled keeps objects in draw order; platform indices follow it.
			for _, o := range og.Objects {
				p := Platform{X: o.X, Y: Num(o.Y - mapH), Width: Num(o.Width), Height: o.Height}
				if o.Properties.GetBool("floor") {
					p.X, p.Y, p.Width = 0, OnFloor, FullWidth
				}
				t.Platforms = append(t.Platforms, p)
			}
		case "Spikes":
			for _, o := range og.Objects {
				s := Spike{X: o.X, Y: Num(o.Y - mapH), Width: o.Width, Height: o.Height}
				if o.Properties.GetBool("floor") {
					s.Y = OnFloor
				}
				t.Spikes = append(t.Spikes, s)
			}
		case "ShipPart":
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			t.ShipPart = &ShipPart{
				PlatformIndex: o.Properties.GetInt("platformIndex"),
				OffsetX:       o.Properties.GetFloat("offsetX"),
				OffsetY:       o.Properties.GetFloat("offsetY"),
			}
		case "PlayerSpawn":
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			t.Spawn = &Spawn{X: o.X, Y: o.Y - mapH}
		}
	}

	return t, nil
}

// LoadFile picks the decoder from the file extension.
func LoadFile(fsys fs.FS, name string) (Table, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".tmx":
		return LoadTMX(fsys, name)
	case ".yaml", ".yml":
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return Table{}, fmt.Errorf("read %s: %w", name, err)
		}
		t, err := ParseYAML(data)
		if err != nil {
			return Table{}, fmt.Errorf("%s: %w", name, err)
		}
		if t.Name == "" {
			t.Name = stem(name)
		}
		return t, nil
	default:
		return Table{}, fmt.Errorf("unsupported level file %s", name)
	}
}

// IsLevelFile reports whether name has a level file extension.
func IsLevelFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".tmx", ".yaml", ".yml":
		return true
	}
	return false
}

// LoadAll discovers every level file in dir within fsys and returns the
// tables ordered by file name. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadAll(fsys fs.FS, dir string) ([]Table, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsLevelFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}
	sort.Strings(names)

	tables := make([]Table, 0, len(names))
	for _, n := range names {
		t, err := LoadFile(fsys, path.Join(dir, n))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", n, err)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func stem(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}
