package core

import (
	"fmt"
	"time"

	"github.com/bielbb931/NIAP-scrape/internal/browser"
	"github.com/bielbb931/NIAP-scrape/internal/export"
	"github.com/bielbb931/NIAP-scrape/internal/grid"
	"github.com/bielbb931/NIAP-scrape/internal/models"
	"github.com/bielbb931/NIAP-scrape/internal/utils"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
)

// Scraper 抓取器
// 对单个无头浏览器会话严格串行执行: 导航 → 横幅清理 → 表头门 →
// 页大小最大化 → 网格定位 → 表头解析 → 分页状态机 → 序列化输出
type Scraper struct {
	config *Config
}

// NewScraper 创建抓取器
func NewScraper(config *Config) *Scraper {
	return &Scraper{config: config}
}

// Run 执行一次完整抓取,返回写出的记录数与统计信息
// 网格定位失败或表头零解析属于致命错误: 在写出任何输出之前中止
func (s *Scraper) Run() (int, models.ScrapeStats, error) {
	startTime := time.Now()
	cfg := s.config

	utils.Infof("🌐 网格抓取启动")
	utils.Infof("目标URL: %s", cfg.Target.URL)
	utils.Infof("无头模式: %v", cfg.Browser.Headless)

	// 启动浏览器前的资源预检(仅告警)
	utils.CheckSystemResources()

	b, err := browser.Launch(cfg.Browser.Headless)
	if err != nil {
		return 0, models.ScrapeStats{}, err
	}
	defer b.Close()

	page, err := b.NewPage()
	if err != nil {
		return 0, models.ScrapeStats{}, err
	}

	// 导航并等待首屏
	if err := page.Navigate(cfg.Target.URL, time.Duration(cfg.Target.NavTimeout)*time.Second); err != nil {
		return 0, models.ScrapeStats{}, err
	}
	if err := page.WaitLoad(); err != nil {
		utils.Warnf("等待页面加载失败: %v", err)
	}

	// 表头可见性门: 网格是异步渲染的,列头出现才说明数据区就绪
	headerTimeout := time.Duration(cfg.Target.HeaderTimeout) * time.Second
	if err := page.WaitVisible(`[role="columnheader"]`, headerTimeout); err != nil {
		utils.Warnf("等待列头可见超时,继续尝试定位网格: %v", err)
	}

	// 尽力关闭cookie/同意横幅
	grid.DismissBanners(page)

	// 尽力把每页行数调到最大,减少翻页轮次
	if grid.MaximizePageSize(page) {
		utils.Info("每页行数已调至最大选项")
	} else {
		utils.Debug("每页行数控件未调整,保持默认")
	}

	// 网格定位与表头解析: 两者都成功才进入采集
	g, err := grid.Locate(page)
	if err != nil {
		return 0, models.ScrapeStats{}, fmt.Errorf("定位产品网格失败: %w", err)
	}
	headers, err := grid.ResolveHeaders(page, g)
	if err != nil {
		return 0, models.ScrapeStats{}, fmt.Errorf("解析列头失败(网格结构可能已变化): %w", err)
	}
	utils.Infof("表头解析完成: %d列映射到规范字段", len(headers))

	// 确保首页完全渲染
	opts := s.driverOptions()
	grid.ScrollToEnd(page, opts.Scroll)

	// 进度条在首轮采集后按分页器总数惰性创建
	var bar *progressbar.ProgressBar
	opts.OnPass = func(unique, total int) {
		if bar == nil {
			max := -1
			if total > 0 {
				max = total
			}
			bar = utils.NewProgressBar(max, "📥 采集记录")
		}
		_ = bar.Set(unique)
	}

	driver := grid.NewDriver(page, g, headers, opts)
	records, stats, err := driver.Run()
	if err != nil {
		return 0, stats, err
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}

	// 写出两种格式
	count, err := export.WriteAll(records, cfg.Output.CSV, cfg.Output.JSONL)
	if err != nil {
		return 0, stats, err
	}

	stats.Duration = time.Since(startTime).Seconds()

	// 保存抓取报告(失败不影响运行结果)
	report := &models.ScrapeReport{
		RunID:     uuid.New().String(),
		TargetURL: cfg.Target.URL,
		StartTime: startTime,
		EndTime:   time.Now(),
		Stats:     stats,
		CSVPath:   cfg.Output.CSV,
		JSONLPath: cfg.Output.JSONL,
	}
	if err := utils.NewReporter(cfg.Output.Dir).SaveReport(report); err != nil {
		utils.Warnf("保存抓取报告失败: %v", err)
	}

	return count, stats, nil
}

// driverOptions 把配置换算成分页驱动器参数
func (s *Scraper) driverOptions() grid.Options {
	g := s.config.Grid
	opts := grid.DefaultOptions()
	if g.MaxAdvances > 0 {
		opts.MaxAdvances = g.MaxAdvances
	}
	if g.SettleBurst > 0 {
		opts.SettleBurst = g.SettleBurst
	}
	if g.SettlePause > 0 {
		opts.BurstPause = time.Duration(g.SettlePause) * time.Millisecond
		opts.Scroll.Pause = time.Duration(g.SettlePause) * time.Millisecond
	}
	if g.ScrollRepeats > 0 {
		opts.Scroll.Repeats = g.ScrollRepeats
	}
	if g.StableInterval > 0 {
		opts.Stable.Interval = time.Duration(g.StableInterval) * time.Millisecond
	}
	if g.StableTimeout > 0 {
		opts.Stable.Timeout = time.Duration(g.StableTimeout) * time.Millisecond
	}
	return opts
}
