package browser

import (
	"fmt"

	"github.com/bielbb931/NIAP-scrape/internal/grid"
	"github.com/bielbb931/NIAP-scrape/internal/utils"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Browser 无头浏览器会话
type Browser struct {
	browser *rod.Browser
}

// Launch 启动并连接Chromium
func Launch(headless bool) (*Browser, error) {
	l := launcher.New().Headless(headless)

	// 跳过TLS证书验证,兼容自签名/过期证书的环境
	l = l.Set("ignore-certificate-errors")

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("启动浏览器失败: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("连接浏览器失败: %w", err)
	}

	utils.Debugf("浏览器已启动: %s", controlURL)
	return &Browser{browser: b}, nil
}

// NewPage 创建标签页
func (b *Browser) NewPage() (grid.Page, error) {
	p, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("创建标签页失败: %w", err)
	}
	return &rodPage{page: p}, nil
}

// Close 关闭浏览器
func (b *Browser) Close() {
	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			utils.Warnf("关闭浏览器失败: %v", err)
		} else {
			utils.Debug("浏览器已关闭")
		}
	}
}
