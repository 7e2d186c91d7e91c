package importer

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/lox/handhistory/internal/fileutil"
)

// state is the on-disk record of processed files. Written atomically so a
// crash mid-save never leaves a truncated state file behind.
type state struct {
	Processed []string `json:"processed"`
}

func (i *Importer) loadState() error {
	if i.statePath == "" {
		return nil
	}
	data, ok, err := fileutil.ReadFileIfExists(i.statePath)
	if err != nil || !ok {
		return err
	}
	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode state file %s: %w", i.statePath, err)
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, name := range st.Processed {
		i.seen[name] = true
	}
	return nil
}

func (i *Importer) saveState() error {
	if i.statePath == "" {
		return nil
	}
	i.mu.Lock()
	st := state{Processed: make([]string, 0, len(i.seen))}
	for name := range i.seen {
		st.Processed = append(st.Processed, name)
	}
	i.mu.Unlock()
	sort.Strings(st.Processed)

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(i.statePath, data, 0644)
}
