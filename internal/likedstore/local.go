package likedstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type localConfig struct {
	Path string `json:"path"`
}

// localStore keeps the liked ids in a single JSON file, the closest
// equivalent of the browser's one localStorage key.
type localStore struct {
	path string
}

func init() {
	Register("local", createLocalStore)
}

func createLocalStore(args interface{}) (Store, error) {
	config := &localConfig{}
	if err := decodeConfig(args, config); err != nil {
		return nil, err
	}
	if config.Path == "" {
		return nil, fmt.Errorf("local store path is required")
	}
	return &localStore{path: config.Path}, nil
}

func (s *localStore) Save(ctx context.Context, ids []string) error {
	_ = ctx
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Load returns the empty set on a missing or unparseable file, never
// an error.
func (s *localStore) Load(ctx context.Context) ([]string, error) {
	_ = ctx
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return []string{}, nil
	}
	return ids, nil
}
