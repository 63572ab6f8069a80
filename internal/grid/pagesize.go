package grid

import (
	"strings"
	"time"

	"github.com/bielbb931/NIAP-scrape/internal/utils"
)

// MaximizePageSize 尽力把每页行数控件调到最大选项,减少翻页轮次
// 通过combobox角色元素的无障碍标签定位("rows per page"),
// 无标签匹配时退回第一个combobox(启发式,可能点错控件)。
// 任何一步失败都不致命: 返回false,页大小保持默认,运行继续
func MaximizePageSize(page Page) bool {
	combos, err := page.Elements(`[role="combobox"]`)
	if err != nil || len(combos) == 0 {
		return false
	}

	var target Element
	for _, c := range combos {
		label, _ := c.Attribute("aria-label")
		labelledBy, _ := c.Attribute("aria-labelledby")
		if strings.Contains(strings.ToLower(label+" "+labelledBy), "rows per page") {
			target = c
			break
		}
	}
	if target == nil {
		target = combos[0]
	}

	if visible, err := target.Visible(); err != nil || !visible {
		return false
	}
	if err := target.Click(); err != nil {
		utils.Debugf("打开每页行数控件失败: %v", err)
		return false
	}
	page.Sleep(200 * time.Millisecond)

	options, err := page.Elements(`[role="option"]`)
	if err != nil || len(options) == 0 {
		options, err = page.Elements(`[role="menuitem"]`)
		if err != nil || len(options) == 0 {
			return false
		}
	}

	// 解析每个选项文本中的数字,选最大的那个
	var best Element
	bestVal := -1
	for _, o := range options {
		txt, err := o.Text()
		if err != nil {
			continue
		}
		if n := utils.ParseDigits(txt); n > bestVal {
			bestVal = n
			best = o
		}
	}
	if best == nil || bestVal <= 0 {
		return false
	}

	if err := best.Click(); err != nil {
		utils.Debugf("选择每页行数选项失败: %v", err)
		return false
	}
	page.Sleep(400 * time.Millisecond)
	return true
}
