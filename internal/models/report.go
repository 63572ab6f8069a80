package models

import (
	"encoding/json"
	"time"
)

// ScrapeStats 单次抓取的统计信息
type ScrapeStats struct {
	TotalRecords  int     `json:"total_records"`  // 去重后的记录总数
	ReportedTotal int     `json:"reported_total"` // 分页器声明的总数(0表示未解析到)
	Passes        int     `json:"passes"`         // 采集轮次
	AdvanceClicks int     `json:"advance_clicks"` // 翻页点击次数
	DuplicateRows int     `json:"duplicate_rows"` // 因重复键被丢弃的行数
	SkippedRows   int     `json:"skipped_rows"`   // 无单元格被跳过的行数
	CellErrors    int     `json:"cell_errors"`    // 单元格读取失败次数
	Duration      float64 `json:"duration"`       // 总耗时(秒)
}

// ScrapeReport 抓取报告
type ScrapeReport struct {
	RunID     string    `json:"run_id"`     // 运行唯一ID (UUID)
	TargetURL string    `json:"target_url"` // 目标URL
	StartTime time.Time `json:"start_time"` // 开始时间
	EndTime   time.Time `json:"end_time"`   // 结束时间

	Stats ScrapeStats `json:"stats"` // 统计信息

	CSVPath   string `json:"csv_path"`   // CSV输出路径
	JSONLPath string `json:"jsonl_path"` // JSONL输出路径

	// 错误信息
	ErrorMessage string `json:"error_message,omitempty"`
}

// ToJSON 序列化为JSON
func (r *ScrapeReport) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// FromJSON 从JSON反序列化
func (r *ScrapeReport) FromJSON(data []byte) error {
	return json.Unmarshal(data, r)
}
