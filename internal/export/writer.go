package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bielbb931/NIAP-scrape/internal/models"
	"github.com/bielbb931/NIAP-scrape/internal/utils"
)

// WriteCSV 写出表格文件
// 表头行固定为models.OutputHeader,缺失字段为空字符串,绝不出现null
func WriteCSV(records []models.Record, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建CSV文件失败: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(models.OutputHeader); err != nil {
		return fmt.Errorf("写入CSV表头失败: %w", err)
	}
	for _, r := range records {
		if err := w.Write(r.CSVRow()); err != nil {
			return fmt.Errorf("写入CSV行失败: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("刷新CSV失败: %w", err)
	}
	return nil
}

// WriteJSONL 写出行分隔JSON文件
// 每行一个JSON对象,键集与值语义和CSV输出完全一致
func WriteJSONL(records []models.Record, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建JSONL文件失败: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("写入JSONL行失败: %w", err)
		}
	}
	return nil
}

// WriteAll 同时写出两种格式,返回写出的记录数
func WriteAll(records []models.Record, csvPath string, jsonlPath string) (int, error) {
	if err := WriteCSV(records, csvPath); err != nil {
		return 0, err
	}
	if err := WriteJSONL(records, jsonlPath); err != nil {
		return 0, err
	}
	utils.Infof("💾 已写出 %d 条记录: %s, %s", len(records), csvPath, jsonlPath)
	return len(records), nil
}
