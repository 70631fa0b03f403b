// This file is part of Rustyboy.
//
// Rustyboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rustyboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rustyboy.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// NoPrefsFile is returned by Load() if the preferences file does not exist.
var NoPrefsFile = errors.New("no prefs file")

// the separator between key and value on each line of the file
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]Pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]Pref),
	}, nil
}

// NewMemoryDisk returns a Disk that is never written to or read from a file.
// Loading a memory disk applies command line values only.
func NewMemoryDisk() *Disk {
	return &Disk{
		entries: make(map[string]Pref),
	}
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to the list of values to store and retrieve from disk.
func (dsk *Disk) Add(key string, p Pref) error {
	if strings.Contains(key, keySep) || strings.ContainsAny(key, "\n;") {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key %q already added", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		err := dsk.entries[k].Reset()
		if err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// read every entry in the prefs file, whether it belongs to this Disk or not
func (dsk *Disk) read() (map[string]string, error) {
	if dsk.path == "" {
		return nil, fmt.Errorf("prefs: %w: memory only", NoPrefsFile)
	}

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("prefs: %w: %s", NoPrefsFile, dsk.path)
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	entries := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line == WarningBoilerPlate {
			continue
		}
		key, value, ok := strings.Cut(line, keySep)
		if !ok {
			continue
		}
		entries[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return entries, nil
}

// Save current preference values to disk. Entries in the file that do not
// belong to this Disk are preserved. Saving a memory disk does nothing.
func (dsk *Disk) Save() error {
	if dsk.path == "" {
		return nil
	}

	entries, err := dsk.read()
	if err != nil {
		if !errors.Is(err, NoPrefsFile) {
			return err
		}
		entries = make(map[string]string)
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, entries[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Values specified on the command line
// (see PushCommandLineStack()) take priority over values from disk and are
// applied even if the file does not exist.
//
// If saveOnFirstUse is true and the file does not exist then the current
// values, without any command line values, are saved to disk. NoPrefsFile is
// still returned in that case.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	entries, readErr := dsk.read()
	if readErr != nil && !errors.Is(readErr, NoPrefsFile) {
		return readErr
	}

	for _, k := range dsk.keys() {
		if v, ok := entries[k]; ok {
			err := dsk.entries[k].Set(v)
			if err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	// saved before the command line is applied. command line values only
	// last for the run
	if readErr != nil && saveOnFirstUse {
		err := dsk.Save()
		if err != nil {
			return err
		}
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			err := dsk.entries[k].Set(v)
			if err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return readErr
}
