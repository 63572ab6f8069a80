package grid

import (
	"github.com/bielbb931/NIAP-scrape/internal/utils"
)

// headerCellSelector 基于role的列头查询,回退到表格thead
const headerCellSelector = `[role="columnheader"]`

// HeaderMap 列位置 -> 规范字段名
// 若同一规范字段出现在两列,提取时右侧(更高下标)的值覆盖左侧
type HeaderMap map[int]string

// ResolveHeaders 读取表头行并构建HeaderMap
// 无法识别的表头直接丢弃;零列解析成功时返回ErrNoHeaders(致命,
// 说明网格结构已变化到无法继续的程度)
func ResolveHeaders(page Page, grid Element) (HeaderMap, error) {
	cells, err := page.Elements(headerCellSelector)
	if err != nil || len(cells) == 0 {
		cells, err = grid.Elements("thead tr th")
		if err != nil {
			return nil, ErrNoHeaders
		}
	}

	hm := make(HeaderMap)
	for i, cell := range cells {
		txt, err := cell.Text()
		if err != nil {
			// 单个列头读取失败按未识别处理
			continue
		}
		if canonical, ok := Canonical(utils.SquashWhitespace(txt)); ok {
			hm[i] = canonical
		}
	}

	if len(hm) == 0 {
		return nil, ErrNoHeaders
	}
	return hm, nil
}
