package grid

import (
	"strings"

	"github.com/bielbb931/NIAP-scrape/internal/models"
	"github.com/bielbb931/NIAP-scrape/internal/utils"
)

// Session 一次运行的可变状态: 累积记录、去重集合和可恢复失败计数
// 由分页驱动器独占持有并传给提取调用,去重集合单调增长、绝不收缩,
// 生命周期与单次运行一致(跨运行不持久化)
type Session struct {
	records []models.Record
	seen    map[string]struct{}
	stats   models.ScrapeStats
}

// NewSession 创建会话
func NewSession() *Session {
	return &Session{
		records: make([]models.Record, 0),
		seen:    make(map[string]struct{}),
	}
}

// Add 若键未出现过则追加记录并返回true;重复键丢弃记录并返回false
// 重复是滚动/翻页重渲染后重扫行的预期常规结果,不算错误
func (s *Session) Add(key string, rec models.Record) bool {
	if _, ok := s.seen[key]; ok {
		s.stats.DuplicateRows++
		return false
	}
	s.seen[key] = struct{}{}
	s.records = append(s.records, rec)
	return true
}

// UniqueCount 去重集合的当前大小
func (s *Session) UniqueCount() int {
	return len(s.seen)
}

// Records 累积的记录列表
func (s *Session) Records() []models.Record {
	return s.records
}

// Stats 统计信息快照
func (s *Session) Stats() models.ScrapeStats {
	stats := s.stats
	stats.TotalRecords = len(s.records)
	return stats
}

// CountSkipped 记一次零单元格跳过的行
func (s *Session) CountSkipped() { s.stats.SkippedRows++ }

// CountCellError 记一次单元格读取失败
func (s *Session) CountCellError() { s.stats.CellErrors++ }

// CountPass 记一轮采集
func (s *Session) CountPass() { s.stats.Passes++ }

// CountAdvance 记一次翻页点击
func (s *Session) CountAdvance() { s.stats.AdvanceClicks++ }

// SetReportedTotal 记录分页器声明的总数
func (s *Session) SetReportedTotal(n int) { s.stats.ReportedTotal = n }

// DedupKey 计算行的身份键,三级回退:
// (a) Product文本(小写归一化) → (b) "url::"+详情链接 → (c) "row::"+全字段拼接
// 前缀保证三级之间的键空间互不混淆
func DedupKey(values map[string]string, productURL string) string {
	if k := strings.ToLower(strings.TrimSpace(values[models.FieldProduct])); k != "" {
		return k
	}
	if u := strings.TrimSpace(productURL); u != "" {
		return "url::" + strings.ToLower(u)
	}
	parts := make([]string, 0, len(models.CanonicalFields))
	for _, f := range models.CanonicalFields {
		parts = append(parts, values[f])
	}
	return "row::" + strings.ToLower(utils.SquashWhitespace(strings.Join(parts, " | ")))
}
