package tscycle

import (
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// Tool names for both toolchain generations. The editor and compiler keep the
// same name across Qt 5 and Qt 6; only the extractor is versioned.
const (
	ExtractorV5  = "pylupdate5"
	ExtractorV6  = "pylupdate6"
	EditorTool   = "linguist"
	CompilerTool = "lrelease"
)

// Version selects one major generation of the Qt localization toolchain.
type Version int

const (
	V5 Version = 5
	V6 Version = 6
)

func (v Version) String() string {
	if v == V6 {
		return "qt6"
	}
	return "qt5"
}

// Profile is the set of command names, flags and paths for one toolchain
// version. It is immutable after resolution; invocation steps derive child
// process environments from it via Environ instead of mutating the parent
// environment.
type Profile struct {
	Version   Version
	Extractor string   // pylupdate6 or pylupdate5
	Flags     []string // suppress-obsolete flag in the version's spelling
	TSFlag    string   // --ts or -ts
	Editor    string
	Compiler  string
	BinDir    string // Qt bin dir under the root install, prepended to PATH
	PluginDir string // Qt plugin dir, exported as QT_PLUGIN_PATH
}

// ProfileFor builds the profile for a version and root install dir. Pure; the
// probe decision lives in Resolver.
func ProfileFor(v Version, root string) Profile {
	qt := "Qt5"
	extractor := ExtractorV5
	flags := []string{"-noobsolete"}
	tsFlag := "-ts"
	if v == V6 {
		qt = "Qt6"
		extractor = ExtractorV6
		flags = []string{"--no-obsolete"}
		tsFlag = "--ts"
	}
	return Profile{
		Version:   v,
		Extractor: extractor,
		Flags:     flags,
		TSFlag:    tsFlag,
		Editor:    EditorTool,
		Compiler:  CompilerTool,
		BinDir:    filepath.Join(root, "apps", qt, "bin"),
		PluginDir: filepath.Join(root, "apps", qt, "plugins"),
	}
}

// Environ returns base with the profile's bin dir prepended to PATH and
// QT_PLUGIN_PATH pointing at the plugin dir. base is not modified; PATH is
// matched case-insensitively so Windows "Path" entries are handled.
func (p Profile) Environ(base []string) []string {
	out := make([]string, 0, len(base)+2)
	foundPath := false
	for _, kv := range base {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.EqualFold(k, "PATH") {
			out = append(out, k+"="+p.BinDir+string(filepath.ListSeparator)+v)
			foundPath = true
			continue
		}
		if ok && strings.EqualFold(k, "QT_PLUGIN_PATH") {
			continue
		}
		out = append(out, kv)
	}
	if !foundPath {
		out = append(out, "PATH="+p.BinDir)
	}
	out = append(out, "QT_PLUGIN_PATH="+p.PluginDir)
	return out
}

// Resolver probes the search path for the version 6 extractor and selects the
// matching profile. The probe runs once per Resolver; later calls return the
// cached profile, so resolution is idempotent within a process. A missing
// version 6 extractor silently selects version 5 — if version 5 is absent too,
// that surfaces later as a command-not-found failure from the extraction step.
type Resolver struct {
	Root     string
	LookPath func(file string) (string, error) // defaults to exec.LookPath

	once    sync.Once
	profile Profile
}

// Resolve returns the toolchain profile for this process.
func (r *Resolver) Resolve() Profile {
	r.once.Do(func() {
		look := r.LookPath
		if look == nil {
			look = exec.LookPath
		}
		version := V5
		if _, err := look(ExtractorV6); err == nil {
			version = V6
		}
		r.profile = ProfileFor(version, r.Root)
	})
	return r.profile
}
