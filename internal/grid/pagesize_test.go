package grid

import (
	"testing"
)

func TestMaximizePageSize(t *testing.T) {
	t.Run("选中标签匹配的控件和最大选项", func(t *testing.T) {
		page := newFakePage()

		other := newFakeElement("") // 页面上无关的combobox
		combo := newFakeElement("25")
		combo.attrs["aria-label"] = "Rows per page:"
		page.elements[`[role="combobox"]`] = []*fakeElement{other, combo}

		opt25 := newFakeElement("25")
		opt100 := newFakeElement("100")
		opt50 := newFakeElement("50")
		page.elements[`[role="option"]`] = []*fakeElement{opt25, opt100, opt50}

		if !MaximizePageSize(page) {
			t.Fatal("MaximizePageSize() = false, 期望成功")
		}
		if combo.clicks != 1 {
			t.Errorf("标签匹配的控件点击 = %d, 期望 1", combo.clicks)
		}
		if other.clicks != 0 {
			t.Errorf("无关控件不应被点击, clicks = %d", other.clicks)
		}
		if opt100.clicks != 1 {
			t.Errorf("最大选项点击 = %d, 期望 1", opt100.clicks)
		}
		if opt25.clicks != 0 || opt50.clicks != 0 {
			t.Error("非最大选项不应被点击")
		}
	})

	t.Run("无标签时退回第一个combobox", func(t *testing.T) {
		page := newFakePage()
		combo := newFakeElement("")
		page.elements[`[role="combobox"]`] = []*fakeElement{combo}
		page.elements[`[role="option"]`] = []*fakeElement{newFakeElement("250")}

		if !MaximizePageSize(page) {
			t.Fatal("MaximizePageSize() = false, 期望启发式回退成功")
		}
		if combo.clicks != 1 {
			t.Errorf("combobox点击 = %d, 期望 1", combo.clicks)
		}
	})

	t.Run("menuitem回退", func(t *testing.T) {
		page := newFakePage()
		combo := newFakeElement("")
		combo.attrs["aria-label"] = "Rows per page:"
		page.elements[`[role="combobox"]`] = []*fakeElement{combo}
		item := newFakeElement("100 rows")
		page.elements[`[role="menuitem"]`] = []*fakeElement{item}

		if !MaximizePageSize(page) {
			t.Fatal("MaximizePageSize() = false, 期望menuitem回退成功")
		}
		if item.clicks != 1 {
			t.Errorf("menuitem点击 = %d, 期望 1", item.clicks)
		}
	})

	t.Run("无combobox返回false", func(t *testing.T) {
		if MaximizePageSize(newFakePage()) {
			t.Error("无控件时应返回false")
		}
	})

	t.Run("控件不可见返回false", func(t *testing.T) {
		page := newFakePage()
		combo := newFakeElement("")
		combo.visible = false
		page.elements[`[role="combobox"]`] = []*fakeElement{combo}

		if MaximizePageSize(page) {
			t.Error("控件不可见时应返回false")
		}
	})

	t.Run("选项全无数字返回false", func(t *testing.T) {
		page := newFakePage()
		combo := newFakeElement("")
		page.elements[`[role="combobox"]`] = []*fakeElement{combo}
		page.elements[`[role="option"]`] = []*fakeElement{newFakeElement("All")}

		if MaximizePageSize(page) {
			t.Error("解析不出数字选项时应返回false")
		}
	})
}
