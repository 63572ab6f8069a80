package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bielbb931/NIAP-scrape/internal/core"
	"github.com/bielbb931/NIAP-scrape/internal/utils"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

// 命令行参数
var (
	// 全局参数
	configFile string
	verbose    bool
	logLevel   string

	// 抓取参数
	targetURL   string
	headless    bool
	outCSV      string
	outJSONL    string
	outputDir   string
	maxAdvances int
)

var rootCmd = &cobra.Command{
	Use:   "niapscrape",
	Short: "NIAP认证产品网格抓取工具",
	Long: `niapscrape - NIAP认证产品列表抓取工具 (Go版本)

从NIAP Certified Products页面的虚拟化数据网格中提取结构化产品记录,支持:
  • 虚拟化网格强制渲染(内部滚动到底)
  • 跨页采集直到翻页控件禁用或达到安全上限
  • 表头别名解析(大小写不敏感的精确匹配)
  • 滚动/翻页重渲染的幂等去重(Product → URL → 全行三级回退)
  • CSV + 行分隔JSON双格式输出

示例:
  # 使用默认目标和输出路径
  niapscrape

  # 指定目标URL与输出文件
  niapscrape -u https://www.niap-ccevs.org/products --out-csv data/products.csv

  # 有头模式调试
  niapscrape --headless=false --log-level debug

版本: ` + Version + `
构建时间: ` + BuildTime,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 加载配置
		config, err := core.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}

		// 初始化日志系统
		logConfig := utils.LogConfig{
			Level:      config.Logging.Level,
			LogDir:     config.Logging.LogDir,
			MaxSize:    config.Logging.Rotation.MaxSize,
			MaxBackups: config.Logging.Rotation.MaxBackups,
			MaxAge:     config.Logging.Rotation.MaxAge,
			Compress:   config.Logging.Rotation.Compress,
		}

		// 命令行参数覆盖配置文件
		if logLevel != "" {
			logConfig.Level = logLevel
		}
		if verbose {
			logConfig.Level = "debug"
		}

		if err := utils.InitLogger(logConfig); err != nil {
			return fmt.Errorf("初始化日志系统失败: %w", err)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// 设置信号处理(Ctrl+C优雅退出)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		go func() {
			sig := <-sigChan
			utils.Warnf("\n收到中断信号: %v, 正在退出...", sig)
			os.Exit(0)
		}()

		// 重新加载配置并合并命令行参数
		config, err := core.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}
		// --headless未显式指定时不覆盖配置/环境变量(NIAP_HEADLESS)的值
		var headlessFlag *bool
		if cmd.Flags().Changed("headless") {
			headlessFlag = &headless
		}
		config.MergeCLIFlags(targetURL, headlessFlag, outCSV, outJSONL, outputDir, maxAdvances)

		// 验证参数
		if err := ValidateFlags(config.Target.URL, config.Grid.MaxAdvances); err != nil {
			return err
		}

		// 执行抓取
		scraper := core.NewScraper(config)
		count, stats, err := scraper.Run()
		if err != nil {
			return fmt.Errorf("抓取失败: %w", err)
		}

		// 显示统计结果
		fmt.Println("\n==================================================")
		fmt.Println("📊 抓取统计")
		fmt.Println("==================================================")
		fmt.Printf("✅ 写出记录数: %d\n", count)
		if stats.ReportedTotal > 0 {
			fmt.Printf("✅ 分页器报告总数: %d\n", stats.ReportedTotal)
		}
		fmt.Printf("✅ 采集轮次: %d\n", stats.Passes)
		fmt.Printf("✅ 翻页次数: %d\n", stats.AdvanceClicks)
		fmt.Printf("🔁 去重丢弃行数: %d\n", stats.DuplicateRows)
		fmt.Printf("❌ 跳过行数: %d, 单元格读取失败: %d\n", stats.SkippedRows, stats.CellErrors)
		fmt.Printf("⏱️  总耗时: %.2f秒\n", stats.Duration)
		fmt.Println("==================================================")

		utils.Info("✨ 抓取任务完成!")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "显示版本信息",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("niapscrape %s\n", Version)
		fmt.Printf("构建时间: %s\n", BuildTime)
		fmt.Println("Go实现版本 - NIAP认证产品网格抓取工具")
	},
}

func init() {
	// 全局参数
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "配置文件路径")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "详细输出模式")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "日志级别 (trace|debug|info|warn|error)")

	// 抓取参数
	rootCmd.Flags().StringVarP(&targetURL, "url", "u", "", "目标URL (默认NIAP产品列表)")
	rootCmd.Flags().BoolVar(&headless, "headless", true, "无头浏览器模式")
	rootCmd.Flags().StringVar(&outCSV, "out-csv", "", "CSV输出路径")
	rootCmd.Flags().StringVar(&outJSONL, "out-jsonl", "", "JSONL输出路径")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "报告输出目录")
	rootCmd.Flags().IntVar(&maxAdvances, "max-pages", 0, "翻页安全上限 (默认100)")

	// 添加子命令
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}
