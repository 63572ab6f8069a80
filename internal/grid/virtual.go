package grid

import (
	"time"

	"github.com/bielbb931/NIAP-scrape/internal/utils"
)

const (
	// scrollerSelector MUI DataGrid的内部虚拟滚动子元素
	scrollerSelector = "div.MuiDataGrid-virtualScroller"

	// wheelDelta 外层视口滚动的单次滚轮距离
	wheelDelta = 2000
)

// ScrollOptions 虚拟化驱动参数
type ScrollOptions struct {
	Repeats int           // 滚动到底的重复次数
	Pause   time.Duration // 每次滚动后的settle pause
}

// DefaultScrollOptions 默认滚动参数
func DefaultScrollOptions() ScrollOptions {
	return ScrollOptions{Repeats: 10, Pause: 120 * time.Millisecond}
}

// findScroller 查找网格内部的可滚动子元素,不存在返回nil
func findScroller(page Page) Element {
	els, err := page.Elements(scrollerSelector)
	if err != nil || len(els) == 0 {
		return nil
	}
	return els[0]
}

// ScrollToEnd 强制虚拟滚动区渲染所有可加载的行
// 在网格内部(而非窗口)反复滚到底并短暂停顿,让懒加载行挂载;
// 找不到内部滚动元素时退回滚动外层视口——对部分虚拟化实现
// 不能可靠触发渲染,属于已知弱保证
func ScrollToEnd(page Page, opts ScrollOptions) {
	scroller := findScroller(page)
	for i := 0; i < opts.Repeats; i++ {
		if scroller != nil {
			if err := scroller.ScrollToBottom(); err != nil {
				utils.Debugf("网格内部滚动失败: %v", err)
			}
		} else {
			if err := page.ScrollWheel(wheelDelta); err != nil {
				utils.Debugf("外层视口滚动失败: %v", err)
			}
		}
		page.Sleep(opts.Pause)
	}
}

// StableOptions 渲染稳定判定参数
type StableOptions struct {
	Interval time.Duration // 采样间隔
	Timeout  time.Duration // 总超时
}

// DefaultStableOptions 默认稳定判定参数
func DefaultStableOptions() StableOptions {
	return StableOptions{Interval: 150 * time.Millisecond, Timeout: 3 * time.Second}
}

// WaitStable 轮询直到渲染稳定或超时
// 稳定判据: 行数与滚动高度在连续两次采样间不变。
// 用有界的稳定谓词取代单纯的固定sleep,正确性不再依赖调参的等待时长
func WaitStable(page Page, opts StableOptions) bool {
	deadline := time.Now().Add(opts.Timeout)
	prevRows := -1
	prevHeight := -1.0

	for {
		rows := countRows(page)
		height := 0.0
		if scroller := findScroller(page); scroller != nil {
			if h, err := scroller.ScrollHeight(); err == nil {
				height = h
			}
		}

		if rows == prevRows && height == prevHeight {
			return true
		}
		prevRows, prevHeight = rows, height

		if !time.Now().Before(deadline) {
			return false
		}
		page.Sleep(opts.Interval)
	}
}

// countRows 当前渲染的行数(仅用于稳定采样,不排除表头行)
func countRows(page Page) int {
	els, err := page.Elements(rowSelector)
	if err != nil {
		return 0
	}
	return len(els)
}
