package batch

import (
	"encoding/json"
	"os"
	"sort"
)

// Manifest describes one batch run.
type Manifest struct {
	Part    string             `json:"part"`
	Values  map[string]float64 `json:"values"`
	Entries []ManifestEntry    `json:"entries"`
}

// ManifestEntry represents one file in the output manifest.
type ManifestEntry struct {
	File     string `json:"file"`
	Output   string `json:"output,omitempty"`
	Vertices int    `json:"vertices"`
	Faces    int    `json:"faces"`
	Error    string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json to the output directory.
func WriteManifest(path, partName string, values map[string]float64, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			File:     r.File,
			Output:   r.Output,
			Vertices: r.Vertices,
			Faces:    r.Faces,
			Error:    r.Error,
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].File < entries[j].File })

	data, err := json.MarshalIndent(Manifest{Part: partName, Values: values, Entries: entries}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	err = json.Unmarshal(data, &m)
	return m, err
}
