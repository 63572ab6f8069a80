package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bielbb931/NIAP-scrape/internal/models"
)

func TestReporterSaveReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	reporter := NewReporter(dir)

	report := &models.ScrapeReport{
		RunID:     "test-run",
		TargetURL: "https://www.niap-ccevs.org/products",
		StartTime: time.Now(),
		EndTime:   time.Now(),
		Stats:     models.ScrapeStats{TotalRecords: 7},
		CSVPath:   "output/niap_products.csv",
	}

	if err := reporter.SaveReport(report); err != nil {
		t.Fatalf("SaveReport() 失败: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "scrape_report.json"))
	if err != nil {
		t.Fatalf("读取报告文件失败: %v", err)
	}

	var back models.ScrapeReport
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("报告不是合法JSON: %v", err)
	}
	if back.RunID != "test-run" || back.Stats.TotalRecords != 7 {
		t.Errorf("报告内容不一致: %+v", back)
	}
}
