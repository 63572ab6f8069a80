package grid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bielbb931/NIAP-scrape/internal/utils"
)

// pagerSelectors 分页器标题的候选选择器
var pagerSelectors = []string{
	"div.MuiTablePagination-displayedRows",
	`[class*="MuiTablePagination-displayedRows"]`,
	`[aria-live="polite"]`,
	`div[role="status"]`,
}

// totalRe 匹配 "1–250 of 277" 中的总数
var totalRe = regexp.MustCompile(`\bof\s+(\d{1,7})\b`)

// nextSelectors "下一页"控件的候选选择器,按优先级排列
var nextSelectors = []string{
	`button[title="Next page"]`,
	`button[aria-label="Go to next page"]`,
	`button[aria-label*="Next"]`,
	`button.MuiPaginationItem-previousNext[aria-label*="Next"]`,
}

// TotalFromPager 从分页器标题解析记录总数
// 每个选择器最多检查前3个匹配,解析不到时返回0
func TotalFromPager(page Page) int {
	for _, sel := range pagerSelectors {
		els, err := page.Elements(sel)
		if err != nil {
			continue
		}
		limit := len(els)
		if limit > 3 {
			limit = 3
		}
		for i := 0; i < limit; i++ {
			txt, err := els[i].Text()
			if err != nil {
				continue
			}
			if m := totalRe.FindStringSubmatch(utils.SquashWhitespace(txt)); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					return n
				}
			}
		}
	}
	return 0
}

// NextButton 查找"下一页"控件,找不到返回nil
func NextButton(page Page) Element {
	for _, sel := range nextSelectors {
		els, err := page.Elements(sel)
		if err != nil {
			continue
		}
		if len(els) > 0 {
			return els[0]
		}
	}
	return nil
}

// ClickNext 点击"下一页"控件
// 点击失败归类为ErrNotInteractable,由分页驱动器决定终止
func ClickNext(btn Element) error {
	if err := btn.Click(); err != nil {
		return fmt.Errorf("%w: %v", ErrNotInteractable, err)
	}
	return nil
}

// IsDisabled 判断翻页控件是否已禁用
// 显式disabled属性、Mui-disabled类或不可交互均视为禁用;
// 读取失败一律按禁用处理,避免在失效控件上空转
func IsDisabled(btn Element) bool {
	if btn == nil {
		return true
	}
	if _, err := btn.Attribute("disabled"); err == nil {
		return true
	}
	if cls, err := btn.Attribute("class"); err == nil && strings.Contains(cls, "Mui-disabled") {
		return true
	}
	visible, err := btn.Visible()
	if err != nil || !visible {
		return true
	}
	return false
}
