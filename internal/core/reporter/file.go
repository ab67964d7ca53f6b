package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"neocrack/internal/core/model"

	"gopkg.in/yaml.v3"
)

// FileReporter 将战利品写入文件，格式由扩展名决定 (.json / .yaml / .yml)
type FileReporter struct {
	path string
}

func NewFileReporter(path string) (*FileReporter, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use .json/.yaml)", path)
	}
	return &FileReporter{path: path}, nil
}

func (r *FileReporter) Report(ctx context.Context, result *model.TaskResult) error {
	loots := lootsOf(result)
	if loots == nil {
		loots = []*model.Loot{}
	}

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(r.path)) {
	case ".json":
		data, err = json.MarshalIndent(loots, "", "  ")
	default:
		data, err = yaml.Marshal(loots)
	}
	if err != nil {
		return fmt.Errorf("failed to encode loot: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// 凭据文件只允许属主读写
	if err := os.WriteFile(r.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.path, err)
	}
	return nil
}
