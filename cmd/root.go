package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dl-sorter",
	Short: "按扩展名整理下载目录的工具",
	Long: `DL Sorter 是一个命令行工具，按规则文件把下载目录中的文件归类到各自的目录。

主要功能:
- 按规则文件中的顺序匹配文件后缀，第一个匹配的分类生效
- 目标目录不存在时自动创建
- 文件名冲突时自动重命名（name_1.ext、name_2.ext ...），从不覆盖
- 可重复执行，已整理的文件不会再次移动
- 可选记录运行历史到 SQLite 数据库`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径（默认 $HOME/.dl-sorter/config.yaml）")
}
