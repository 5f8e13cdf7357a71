// Package envelope implements the module's JSON interchange format: a
// TreeReflection wrapped with a schema/binary version, the measured
// Size unit, and an optional hardlink-sharing report. Writers go through
// a temp-file-then-rename so a failed or interrupted write never leaves a
// half-written file at the destination path.
package envelope

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sadopc/dutree/internal/hardlink"
	"github.com/sadopc/dutree/internal/size"
	"github.com/sadopc/dutree/internal/tree"
)

// SchemaVersion is the literal date-stamp identifying this envelope's
// shape; bump it if the JSON fields below ever change incompatibly.
const SchemaVersion = "2026-07-30"

// Unit identifies which Size concrete type the envelope's sizes measure.
type Unit string

const (
	UnitBytes  Unit = "Bytes"
	UnitBlocks Unit = "Blocks"
)

// InodeEntry is the JSON shape of one hardlink registry entry.
type InodeEntry struct {
	Ino   uint64   `json:"ino"`
	Size  uint64   `json:"size"`
	Links uint64   `json:"links"`
	Paths []string `json:"paths"`
}

// SharedSummary is the JSON shape of hardlink.Summary.
type SharedSummary struct {
	Inodes              int    `json:"inodes"`
	ExclusiveInodes     int    `json:"exclusive_inodes"`
	AllLinks            uint64 `json:"all_links"`
	DetectedLinks       uint64 `json:"detected_links"`
	ExclusiveLinks      uint64 `json:"exclusive_links"`
	SharedSize          uint64 `json:"shared_size"`
	ExclusiveSharedSize uint64 `json:"exclusive_shared_size"`
}

// Shared is the optional hardlink-sharing section, present only when the
// engine ran in hardlink.Aware mode.
type Shared struct {
	Details []InodeEntry   `json:"details,omitempty"`
	Summary *SharedSummary `json:"summary,omitempty"`
}

// Envelope is the top-level JSON object written by --json-output and read
// by --json-input.
type Envelope struct {
	SchemaVersion string           `json:"schema_version"`
	BinaryVersion string           `json:"binary_version,omitempty"`
	Unit          Unit             `json:"unit"`
	Tree          *tree.Reflection `json:"tree"`
	Shared        *Shared          `json:"shared,omitempty"`
}

// Options controls what Build includes.
type Options struct {
	BinaryVersion     string
	OmitSharedDetails bool
	OmitSharedSummary bool
}

// Build assembles an Envelope from a measured tree, its unit, and an
// optional hardlink registry (nil when the engine was Ignorant).
func Build(root *tree.Node, unit Unit, registry *hardlink.List, opts Options) Envelope {
	env := Envelope{
		SchemaVersion: SchemaVersion,
		BinaryVersion: opts.BinaryVersion,
		Unit:          unit,
		Tree:          root.IntoReflection(),
	}
	if registry == nil {
		return env
	}

	entries := registry.Snapshot()
	shared := &Shared{}
	if !opts.OmitSharedDetails {
		shared.Details = make([]InodeEntry, 0, len(entries))
		for ino, e := range entries {
			shared.Details = append(shared.Details, InodeEntry{
				Ino:   uint64(ino),
				Size:  e.Size.Uint64(),
				Links: e.Nlink,
				Paths: e.Paths,
			})
		}
	}
	if !opts.OmitSharedSummary {
		s := hardlink.Summarize(entries)
		shared.Summary = &SharedSummary{
			Inodes:              s.Inodes,
			ExclusiveInodes:     s.ExclusiveInodes,
			AllLinks:            s.AllLinks,
			DetectedLinks:       s.DetectedLinks,
			ExclusiveLinks:      s.ExclusiveLinks,
			SharedSize:          s.SharedSize,
			ExclusiveSharedSize: s.ExclusiveSharedSize,
		}
	}
	if shared.Details != nil || shared.Summary != nil {
		env.Shared = shared
	}
	return env
}

// Write serializes env as JSON to path. path == "-" writes to stdout
// directly; any other path is written to a sibling temp file and renamed
// into place, so a failure never leaves a partial file at path.
func Write(env Envelope, path string, stdout io.Writer) error {
	if path == "-" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(env)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".dutree-export-*.tmp")
	if err != nil {
		return fmt.Errorf("envelope: cannot create temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	succeeded := false
	defer func() {
		if !succeeded {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("envelope: cannot encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		if runtime.GOOS != "windows" {
			return err
		}
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			return fmt.Errorf("envelope: cannot replace %s: %w", path, err)
		}
		if err := os.Rename(tmpPath, path); err != nil {
			return err
		}
	}
	succeeded = true
	return nil
}

// Read parses an Envelope from path ("-" for stdin).
func Read(path string, stdin io.Reader) (Envelope, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return Envelope{}, fmt.Errorf("envelope: cannot open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var env Envelope
	dec := json.NewDecoder(r)
	if err := dec.Decode(&env); err != nil {
		return Envelope{}, fmt.Errorf("envelope: invalid JSON: %w", err)
	}
	return env, nil
}

// UnitFromZero returns the Unit matching the concrete size type of z.
func UnitFromZero(z size.Size) Unit {
	switch z.(type) {
	case size.Bytes:
		return UnitBytes
	case size.Blocks:
		return UnitBlocks
	default:
		return UnitBytes
	}
}

// ToUnitFunc returns a tree.Unit that reconstructs sizes of u's concrete
// type, for FromReflection.
func (u Unit) ToUnitFunc() tree.Unit {
	switch u {
	case UnitBlocks:
		return func(v uint64) size.Size { return size.Blocks(v) }
	default:
		return func(v uint64) size.Size { return size.Bytes(v) }
	}
}
