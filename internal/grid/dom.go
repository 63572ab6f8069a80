package grid

import (
	"errors"
	"time"
)

// 错误类型定义
// 致命错误(中止运行,不写任何输出)与可恢复错误分层处理
var (
	ErrGridNotFound    = errors.New("未找到数据网格容器")
	ErrNoHeaders       = errors.New("表头未解析出任何规范字段")
	ErrAttrMissing     = errors.New("属性不存在")
	ErrNotInteractable = errors.New("控件不可交互")
)

// Element 页面元素句柄
// 浏览器自动化协作者的最小接口,每个方法都是对无头浏览器的一次阻塞往返
type Element interface {
	// Text 读取元素的可见文本(原始文本,调用方负责空白归一化)
	Text() (string, error)

	// Attribute 读取属性值,属性不存在时返回ErrAttrMissing
	Attribute(name string) (string, error)

	// Click 点击元素
	Click() error

	// Visible 元素当前是否可见
	Visible() (bool, error)

	// ScrollToBottom 将元素自身的滚动位置设为最大值
	ScrollToBottom() error

	// ScrollHeight 元素的滚动内容总高度
	ScrollHeight() (float64, error)

	// Elements 在元素内部按选择器查询子元素
	Elements(selector string) ([]Element, error)

	// Has 元素内部是否存在匹配选择器的子元素
	Has(selector string) (bool, error)
}

// Page 浏览器页面句柄
type Page interface {
	// Navigate 导航到URL,超时返回错误
	Navigate(url string, timeout time.Duration) error

	// WaitLoad 等待页面加载完成
	WaitLoad() error

	// WaitVisible 等待选择器匹配的元素可见,超时返回错误
	WaitVisible(selector string, timeout time.Duration) error

	// Elements 按选择器查询页面元素
	Elements(selector string) ([]Element, error)

	// ScrollWheel 滚动外层视口(虚拟化网格的弱保证兜底)
	ScrollWheel(deltaY float64) error

	// Sleep 固定时长等待(settle pause)
	Sleep(d time.Duration)
}
