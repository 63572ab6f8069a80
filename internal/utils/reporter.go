package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bielbb931/NIAP-scrape/internal/models"
	"github.com/schollz/progressbar/v3"
)

// Reporter 报告生成器
type Reporter struct {
	outputDir string
}

// NewReporter 创建报告生成器
func NewReporter(outputDir string) *Reporter {
	return &Reporter{outputDir: outputDir}
}

// SaveReport 将抓取报告写入输出目录
func (r *Reporter) SaveReport(report *models.ScrapeReport) error {
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return fmt.Errorf("创建报告目录失败: %w", err)
	}

	jsonData, err := report.ToJSON()
	if err != nil {
		return fmt.Errorf("序列化报告失败: %w", err)
	}

	path := filepath.Join(r.outputDir, "scrape_report.json")
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("写入报告文件失败: %w", err)
	}

	Infof("✅ 报告已生成: %s", path)
	return nil
}

// NewProgressBar 创建进度条
// max为-1时显示不定长的spinner(分页器未报告总数的情形)
func NewProgressBar(max int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
