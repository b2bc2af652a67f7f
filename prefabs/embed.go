package prefabs

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// PrefabsFS holds the shipped prefabs and movement scripts.
//
//go:embed *.yaml scripts/*.tengo
var PrefabsFS embed.FS

// overlayDir is checked before PrefabsFS so edits under prefabs/ take effect
// without a rebuild.
const overlayDir = "prefabs"

// Load returns a prefab file by name.
func Load(name string) ([]byte, error) {
	return readOverlay(cleanPrefabPath(name))
}

// LoadScript returns a movement script by name. Both "drift.tengo" and
// "scripts/drift.tengo" resolve to the same file.
func LoadScript(name string) ([]byte, error) {
	return readOverlay(cleanScriptPath(name))
}

func readOverlay(clean string) ([]byte, error) {
	if clean == "" || !fs.ValidPath(clean) {
		return nil, &fs.PathError{Op: "open", Path: clean, Err: fs.ErrInvalid}
	}
	data, err := os.ReadFile(filepath.Join(overlayDir, filepath.FromSlash(clean)))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	s = strings.TrimPrefix(s, overlayDir+"/")
	return s
}

func cleanScriptPath(p string) string {
	if p == "" {
		return ""
	}
	s := cleanPrefabPath(p)
	s = strings.TrimPrefix(s, "scripts/")
	return path.Join("scripts", s)
}
