package rules

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/s3h4n/DL-Sorter/internal"
)

const opLoad = "rules.load"

// ruleDTO 规则文件中单个分类的结构
// type/path 是旧版 structure.json 的键名，suffixes/destination 为新键名
type ruleDTO struct {
	Suffixes    []string `json:"suffixes" yaml:"suffixes"`
	Type        []string `json:"type" yaml:"type"`
	Destination string   `json:"destination" yaml:"destination"`
	Path        string   `json:"path" yaml:"path"`
}

type entry struct {
	category string
	dto      ruleDTO
}

// Load 读取规则文件并返回规则表
// 相对的目标路径会基于 sourceDir 解析为绝对路径
func Load(fs afero.Fs, path, sourceDir string) (*Table, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, configError(path, err)
	}

	var entries []entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		entries, err = decodeYAML(data)
	default:
		entries, err = decodeJSON(data)
	}
	if err != nil {
		return nil, configError(path, err)
	}

	table, err := build(entries, sourceDir)
	if err != nil {
		return nil, configError(path, err)
	}

	return table, nil
}

// Parse 按格式解析规则内容，format 为 "json" 或 "yaml"
func Parse(data []byte, format, sourceDir string) (*Table, error) {
	var (
		entries []entry
		err     error
	)
	if format == "yaml" || format == "yml" {
		entries, err = decodeYAML(data)
	} else {
		entries, err = decodeJSON(data)
	}
	if err != nil {
		return nil, configError("", err)
	}

	table, err := build(entries, sourceDir)
	if err != nil {
		return nil, configError("", err)
	}
	return table, nil
}

func configError(path string, err error) error {
	return &internal.OpError{
		Op:   opLoad,
		Kind: internal.KindConfiguration,
		Path: path,
		Err:  err,
	}
}

// decodeJSON 逐个读取顶层对象的键，保留键的顺序
func decodeJSON(data []byte) ([]entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("规则表必须是 JSON 对象")
	}

	var entries []entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("解析 JSON 失败: %w", err)
		}
		category, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("分类名必须是字符串")
		}

		var dto ruleDTO
		if err := dec.Decode(&dto); err != nil {
			return nil, fmt.Errorf("解析分类 %q 失败: %w", category, err)
		}
		entries = append(entries, entry{category: category, dto: dto})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("规则表之后存在多余内容")
	}

	return entries, nil
}

// decodeYAML 通过 yaml.Node 读取映射，保留键的顺序
func decodeYAML(data []byte) ([]entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("解析 YAML 失败: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, internal.ErrNoRules
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("规则表必须是映射 (line %d)", root.Line)
	}

	entries := make([]entry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		var dto ruleDTO
		if err := value.Decode(&dto); err != nil {
			return nil, fmt.Errorf("解析分类 %q 失败 (line %d): %w", key.Value, key.Line, err)
		}
		entries = append(entries, entry{category: key.Value, dto: dto})
	}

	return entries, nil
}

func build(entries []entry, sourceDir string) (*Table, error) {
	if len(entries) == 0 {
		return nil, internal.ErrNoRules
	}

	seen := make(map[string]bool, len(entries))
	table := &Table{Rules: make([]Rule, 0, len(entries))}

	for _, e := range entries {
		if strings.TrimSpace(e.category) == "" {
			return nil, fmt.Errorf("分类名不能为空")
		}
		if seen[e.category] {
			return nil, fmt.Errorf("分类 %q 重复", e.category)
		}
		seen[e.category] = true

		suffixes := e.dto.Suffixes
		if len(suffixes) == 0 {
			suffixes = e.dto.Type
		}
		if len(suffixes) == 0 {
			return nil, fmt.Errorf("分类 %q 没有后缀", e.category)
		}
		for _, s := range suffixes {
			if s == "" {
				return nil, fmt.Errorf("分类 %q 含有空后缀", e.category)
			}
		}

		dest := e.dto.Destination
		if dest == "" {
			dest = e.dto.Path
		}
		if strings.TrimSpace(dest) == "" {
			return nil, fmt.Errorf("分类 %q 没有目标路径", e.category)
		}

		dest, err := resolveDestination(dest, sourceDir)
		if err != nil {
			return nil, fmt.Errorf("分类 %q 的目标路径无效: %w", e.category, err)
		}

		table.Rules = append(table.Rules, Rule{
			Category:    e.category,
			Suffixes:    append([]string(nil), suffixes...),
			Destination: dest,
		})
	}

	return table, nil
}

func resolveDestination(dest, sourceDir string) (string, error) {
	expanded, err := internal.ExpandPath(dest)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Join(sourceDir, expanded), nil
}
