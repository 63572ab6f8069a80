package grid

import (
	"github.com/bielbb931/NIAP-scrape/internal/models"
	"github.com/bielbb931/NIAP-scrape/internal/utils"
)

const (
	// rowSelector 基于role的数据行查询,回退到表格tbody
	rowSelector = `div[role="row"]`

	// cellSelector 基于role的单元格查询,回退到td
	cellSelector = `[role="gridcell"]`
)

// dataRows 定位当前视口内的数据行(排除表头行)
func dataRows(page Page, grid Element) []Element {
	rows, err := page.Elements(rowSelector)
	if err != nil {
		rows = nil
	}

	out := make([]Element, 0, len(rows))
	for _, row := range rows {
		// 含列头单元格的行是表头行,排除
		if has, err := row.Has(headerCellSelector); err == nil && has {
			continue
		}
		out = append(out, row)
	}
	if len(out) > 0 {
		return out
	}

	tbodyRows, err := grid.Elements("tbody tr")
	if err != nil {
		return nil
	}
	return tbodyRows
}

// CollectRows 提取当前渲染视口内的所有数据行并写入会话
// 按HeaderMap把单元格按列位置映射到规范字段;同一字段出现在多列时
// 后写覆盖先写(右侧列胜出)。返回本轮新增的记录数
func CollectRows(page Page, grid Element, hm HeaderMap, sess *Session) int {
	added := 0
	for _, row := range dataRows(page, grid) {
		cells, err := row.Elements(cellSelector)
		if err != nil || len(cells) == 0 {
			cells, _ = row.Elements("td")
		}
		if len(cells) == 0 {
			// 零单元格的行直接跳过,不产出记录也不算错误
			sess.CountSkipped()
			continue
		}

		values := make(map[string]string)
		productURL := ""
		for i, cell := range cells {
			field, ok := hm[i]
			if !ok {
				continue
			}
			txt, err := cell.Text()
			if err != nil {
				sess.CountCellError()
				continue
			}
			if field == models.FieldProduct {
				if href := anchorHref(cell); href != "" {
					productURL = href
				}
			}
			values[field] = utils.SquashWhitespace(txt)
		}

		key := DedupKey(values, productURL)
		if sess.Add(key, models.NewRecord(values, productURL)) {
			added++
		}
	}
	return added
}

// anchorHref 读取单元格内第一个锚元素的链接目标,没有则返回空串
func anchorHref(cell Element) string {
	links, err := cell.Elements("a")
	if err != nil || len(links) == 0 {
		return ""
	}
	href, err := links[0].Attribute("href")
	if err != nil {
		return ""
	}
	return href
}
