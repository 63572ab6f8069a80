package browser

import (
	"fmt"
	"time"

	"github.com/bielbb931/NIAP-scrape/internal/grid"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// rodPage grid.Page的Rod实现
// 每个方法都是对同一无头浏览器会话的一次阻塞往返,严格串行
type rodPage struct {
	page *rod.Page
}

// Navigate 导航到URL并等待超时
func (p *rodPage) Navigate(url string, timeout time.Duration) error {
	if err := p.page.Timeout(timeout).Navigate(url); err != nil {
		return fmt.Errorf("导航失败 [%s]: %w", url, err)
	}
	return nil
}

// WaitLoad 等待页面加载完成
func (p *rodPage) WaitLoad() error {
	return p.page.WaitLoad()
}

// WaitVisible 等待选择器匹配的元素可见
func (p *rodPage) WaitVisible(selector string, timeout time.Duration) error {
	el, err := p.page.Timeout(timeout).Element(selector)
	if err != nil {
		return fmt.Errorf("元素未出现 [%s]: %w", selector, err)
	}
	if err := el.WaitVisible(); err != nil {
		return fmt.Errorf("元素未可见 [%s]: %w", selector, err)
	}
	return nil
}

// Elements 按选择器查询页面元素
func (p *rodPage) Elements(selector string) ([]grid.Element, error) {
	els, err := p.page.Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

// ScrollWheel 滚动外层视口
func (p *rodPage) ScrollWheel(deltaY float64) error {
	return p.page.Mouse.Scroll(0, deltaY, 1)
}

// Sleep 固定时长等待
func (p *rodPage) Sleep(d time.Duration) {
	time.Sleep(d)
}

// rodElement grid.Element的Rod实现
type rodElement struct {
	el *rod.Element
}

func wrapElements(els rod.Elements) []grid.Element {
	out := make([]grid.Element, 0, len(els))
	for _, el := range els {
		out = append(out, &rodElement{el: el})
	}
	return out
}

// Text 读取元素可见文本
func (e *rodElement) Text() (string, error) {
	return e.el.Text()
}

// Attribute 读取属性值,属性不存在时返回grid.ErrAttrMissing
func (e *rodElement) Attribute(name string) (string, error) {
	v, err := e.el.Attribute(name)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", grid.ErrAttrMissing
	}
	return *v, nil
}

// Click 左键单击
func (e *rodElement) Click() error {
	return e.el.Click(proto.InputMouseButtonLeft, 1)
}

// Visible 元素是否可见
func (e *rodElement) Visible() (bool, error) {
	return e.el.Visible()
}

// ScrollToBottom 把元素自身的滚动位置设为最大值
func (e *rodElement) ScrollToBottom() error {
	_, err := e.el.Eval(`() => { this.scrollTop = this.scrollHeight }`)
	return err
}

// ScrollHeight 元素的滚动内容总高度
func (e *rodElement) ScrollHeight() (float64, error) {
	obj, err := e.el.Eval(`() => this.scrollHeight`)
	if err != nil {
		return 0, err
	}
	return obj.Value.Num(), nil
}

// Elements 在元素内部按选择器查询子元素
func (e *rodElement) Elements(selector string) ([]grid.Element, error) {
	els, err := e.el.Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

// Has 元素内部是否存在匹配选择器的子元素
func (e *rodElement) Has(selector string) (bool, error) {
	has, _, err := e.el.Has(selector)
	return has, err
}
