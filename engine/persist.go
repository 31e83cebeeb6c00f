package engine

import (
	"encoding/json"
	"os"

	"github.com/ngutten/concord/internal/logging"
)

// LoadFolders reads the server-folder JSON array from path, tolerating a
// missing file or any parse/IO failure by falling back to empty (§4.5
// "load on store init tolerating parse/IO failures").
func LoadFolders(path string) []Folder {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Log.WithError(err).Warn("engine: failed to read server-folder store")
		}
		return nil
	}

	var folders []Folder
	if err := json.Unmarshal(data, &folders); err != nil {
		logging.Log.WithError(err).Warn("engine: failed to parse server-folder store")
		return nil
	}
	return folders
}

// SaveFolders writes folders to path as JSON. Failure is logged and
// swallowed: in-memory state remains authoritative (§7 "Storage failure").
func SaveFolders(path string, folders []Folder) {
	if folders == nil {
		folders = []Folder{}
	}
	data, err := json.MarshalIndent(folders, "", "  ")
	if err != nil {
		logging.Log.WithError(err).Warn("engine: failed to marshal server-folder store")
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logging.Log.WithError(err).Warn("engine: failed to write server-folder store")
	}
}
