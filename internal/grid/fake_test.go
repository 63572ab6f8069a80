package grid

import (
	"errors"
	"time"
)

// 测试用的内存DOM实现,让状态机和提取逻辑脱离真实浏览器可测

type fakeElement struct {
	text     string
	textErr  error
	attrs    map[string]string
	visible  bool
	clicks   int
	clickErr error
	height   float64
	children map[string][]*fakeElement
}

func newFakeElement(text string) *fakeElement {
	return &fakeElement{
		text:     text,
		visible:  true,
		attrs:    map[string]string{},
		children: map[string][]*fakeElement{},
	}
}

func (e *fakeElement) Text() (string, error) {
	if e.textErr != nil {
		return "", e.textErr
	}
	return e.text, nil
}

func (e *fakeElement) Attribute(name string) (string, error) {
	v, ok := e.attrs[name]
	if !ok {
		return "", ErrAttrMissing
	}
	return v, nil
}

func (e *fakeElement) Click() error {
	if e.clickErr != nil {
		return e.clickErr
	}
	e.clicks++
	return nil
}

func (e *fakeElement) Visible() (bool, error) { return e.visible, nil }

func (e *fakeElement) ScrollToBottom() error { return nil }

func (e *fakeElement) ScrollHeight() (float64, error) { return e.height, nil }

func (e *fakeElement) Elements(selector string) ([]Element, error) {
	return toElements(e.children[selector]), nil
}

func (e *fakeElement) Has(selector string) (bool, error) {
	return len(e.children[selector]) > 0, nil
}

type fakePage struct {
	elements map[string][]*fakeElement
	wheels   int
}

func newFakePage() *fakePage {
	return &fakePage{elements: map[string][]*fakeElement{}}
}

func (p *fakePage) Navigate(url string, timeout time.Duration) error { return nil }

func (p *fakePage) WaitLoad() error { return nil }

func (p *fakePage) WaitVisible(selector string, timeout time.Duration) error { return nil }

func (p *fakePage) Elements(selector string) ([]Element, error) {
	return toElements(p.elements[selector]), nil
}

func (p *fakePage) ScrollWheel(deltaY float64) error {
	p.wheels++
	return nil
}

func (p *fakePage) Sleep(d time.Duration) {}

func toElements(els []*fakeElement) []Element {
	out := make([]Element, 0, len(els))
	for _, el := range els {
		out = append(out, el)
	}
	return out
}

// newDataRow 构造一个数据行,单元格文本按列顺序给出
func newDataRow(cellTexts ...string) *fakeElement {
	row := newFakeElement("")
	cells := make([]*fakeElement, 0, len(cellTexts))
	for _, txt := range cellTexts {
		cells = append(cells, newFakeElement(txt))
	}
	row.children[cellSelector] = cells
	return row
}

// withAnchor 给行的第i个单元格挂一个详情链接
func withAnchor(row *fakeElement, i int, href string) *fakeElement {
	link := newFakeElement("Details")
	link.attrs["href"] = href
	row.children[cellSelector][i].children["a"] = []*fakeElement{link}
	return row
}

var errBoom = errors.New("boom")
