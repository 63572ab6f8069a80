package grid

import (
	"strings"
	"time"

	"github.com/bielbb931/NIAP-scrape/internal/utils"
)

// bannerTexts cookie/同意横幅上常见的关闭按钮文案
var bannerTexts = []string{"Accept", "I Agree", "Got it", "Close"}

// DismissBanners 尽力关闭cookie/同意横幅
// 点击失败一律忽略,运行继续(可恢复层)
func DismissBanners(page Page) {
	buttons, err := page.Elements("button")
	if err != nil {
		return
	}
	for _, btn := range buttons {
		txt, err := btn.Text()
		if err != nil {
			continue
		}
		t := utils.SquashWhitespace(txt)
		for _, want := range bannerTexts {
			if !strings.EqualFold(t, want) {
				continue
			}
			if visible, err := btn.Visible(); err != nil || !visible {
				continue
			}
			if err := btn.Click(); err != nil {
				utils.Debugf("关闭横幅失败 [%s]: %v", t, err)
				continue
			}
			utils.Debugf("已关闭横幅: %s", t)
			page.Sleep(250 * time.Millisecond)
		}
	}
}
