// Package cmd 命令行入口：serve 启动HTTP服务，search 在终端里查询列表页
package cmd

import (
	"github.com/spf13/cobra"

	"gtm_portal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "gtm-portal",
	Short: "GTM销售门户服务",
	Long: `GTM销售门户：解决方案、案例、AI应用、资料库、复盘和作战地图的统一检索，
以及基于Gemini的AI助手（对话、智能导入、润色）。

不带子命令时等同于 serve。`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "配置文件路径")
}

// Execute 执行根命令
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() *config.Config {
	return config.LoadFrom(configPath)
}
