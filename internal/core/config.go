package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config 应用程序配置
type Config struct {
	Target  TargetConfig  `mapstructure:"target"`
	Browser BrowserConfig `mapstructure:"browser"`
	Grid    GridConfig    `mapstructure:"grid"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TargetConfig 目标站点配置
type TargetConfig struct {
	URL           string `mapstructure:"url"`            // 目标URL
	NavTimeout    int    `mapstructure:"nav_timeout"`    // 导航超时(秒)
	HeaderTimeout int    `mapstructure:"header_timeout"` // 表头可见等待超时(秒)
}

// BrowserConfig 浏览器配置
type BrowserConfig struct {
	Headless bool `mapstructure:"headless"` // 无头模式
}

// GridConfig 网格采集参数
type GridConfig struct {
	ScrollRepeats  int `mapstructure:"scroll_repeats"`  // 到底滚动重复次数
	SettlePause    int `mapstructure:"settle_pause"`    // 滚动后settle pause(毫秒)
	SettleBurst    int `mapstructure:"settle_burst"`    // 翻页后短等待突发次数
	StableInterval int `mapstructure:"stable_interval"` // 稳定判定采样间隔(毫秒)
	StableTimeout  int `mapstructure:"stable_timeout"`  // 稳定判定总超时(毫秒)
	MaxAdvances    int `mapstructure:"max_advances"`    // 翻页安全上限
}

// OutputConfig 输出配置
type OutputConfig struct {
	Dir   string `mapstructure:"dir"`   // 报告输出目录
	CSV   string `mapstructure:"csv"`   // CSV输出路径
	JSONL string `mapstructure:"jsonl"` // JSONL输出路径
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level    string         `mapstructure:"level"`
	LogDir   string         `mapstructure:"log_dir"`
	Rotation RotationConfig `mapstructure:"rotation"`
}

// RotationConfig 日志轮转配置
type RotationConfig struct {
	MaxSize    int  `mapstructure:"max_size"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAge     int  `mapstructure:"max_age"`
	Compress   bool `mapstructure:"compress"`
}

// LoadConfig 加载配置文件
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// 设置配置文件
	if configPath != "" {
		// 使用指定的配置文件
		v.SetConfigFile(configPath)
	} else {
		// 搜索默认位置
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// 添加配置搜索路径
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")

		// 用户主目录
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".niapscrape"))
		}
	}

	// 设置默认值
	setDefaults(v)

	// 绑定环境变量
	v.SetEnvPrefix("NIAP")
	_ = v.BindEnv("target.url", "NIAP_URL")
	_ = v.BindEnv("browser.headless", "NIAP_HEADLESS")
	_ = v.BindEnv("output.csv", "NIAP_OUT_CSV")
	_ = v.BindEnv("output.jsonl", "NIAP_OUT_JSONL")

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		// 如果配置文件不存在,使用默认值
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 解析配置
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	return &config, nil
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	// 目标配置默认值
	v.SetDefault("target.url", "https://www.niap-ccevs.org/products")
	v.SetDefault("target.nav_timeout", 120)
	v.SetDefault("target.header_timeout", 60)

	// 浏览器配置默认值
	v.SetDefault("browser.headless", true)

	// 网格采集默认值
	v.SetDefault("grid.scroll_repeats", 10)
	v.SetDefault("grid.settle_pause", 120)
	v.SetDefault("grid.settle_burst", 10)
	v.SetDefault("grid.stable_interval", 150)
	v.SetDefault("grid.stable_timeout", 3000)
	v.SetDefault("grid.max_advances", 100)

	// 输出配置默认值
	v.SetDefault("output.dir", "output")
	v.SetDefault("output.csv", "output/niap_products.csv")
	v.SetDefault("output.jsonl", "output/niap_products.jsonl")

	// 日志配置默认值
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.log_dir", "logs")
	v.SetDefault("logging.rotation.max_size", 10)
	v.SetDefault("logging.rotation.max_backups", 3)
	v.SetDefault("logging.rotation.max_age", 28)
	v.SetDefault("logging.rotation.compress", true)
}

// MergeCLIFlags 合并命令行参数到配置
// 命令行参数优先于配置文件和环境变量;
// headless为nil表示用户未显式指定--headless,保留配置/环境变量的值
func (c *Config) MergeCLIFlags(
	targetURL string,
	headless *bool,
	outCSV string,
	outJSONL string,
	outputDir string,
	maxAdvances int,
) {
	if targetURL != "" {
		c.Target.URL = targetURL
	}
	if headless != nil {
		c.Browser.Headless = *headless
	}
	if outCSV != "" {
		c.Output.CSV = outCSV
	}
	if outJSONL != "" {
		c.Output.JSONL = outJSONL
	}
	if outputDir != "" {
		c.Output.Dir = outputDir
	}
	if maxAdvances > 0 {
		c.Grid.MaxAdvances = maxAdvances
	}
}
