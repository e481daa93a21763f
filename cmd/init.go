package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s3h4n/DL-Sorter/internal"
	"github.com/s3h4n/DL-Sorter/internal/rules"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "生成示例规则文件",
	Long:  `在指定路径（默认当前目录下的 structure.json）写入一份示例规则文件。`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	target := internal.DefaultRulesFile
	if len(args) == 1 {
		target = args[0]
	}
	target, err := internal.ExpandPath(target)
	if err != nil {
		return fmt.Errorf("解析规则文件路径失败: %w", err)
	}

	if !force {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("规则文件已存在: %s（使用 --force 覆盖）", target)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("检查规则文件失败: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(target), internal.DirPerm); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}
	sample := rules.Sample()
	table, err := rules.Parse(sample, "json", filepath.Dir(target))
	if err != nil {
		return fmt.Errorf("示例规则无效: %w", err)
	}

	if err := os.WriteFile(target, sample, 0644); err != nil {
		return fmt.Errorf("写入规则文件失败: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "已写入示例规则文件: %s\n", target)
	fmt.Fprintf(out, "分类: %s\n", strings.Join(table.Categories(), ", "))
	return nil
}

func init() {
	initCmd.Flags().Bool("force", false, "覆盖已存在的规则文件")

	rootCmd.AddCommand(initCmd)
}
