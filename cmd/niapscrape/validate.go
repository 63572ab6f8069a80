package main

import (
	"fmt"
	"net/url"
)

const (
	// MaxAdvanceLimit 翻页安全上限的最大允许值
	MaxAdvanceLimit = 10000
)

// ValidateURL 验证目标URL格式
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("目标URL不能为空")
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("目标URL格式无效: %s", rawURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("目标URL必须使用http或https协议: %s", rawURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("目标URL缺少主机名: %s", rawURL)
	}
	return nil
}

// ValidateFlags 验证命令行参数
func ValidateFlags(targetURL string, maxAdvances int) error {
	if err := ValidateURL(targetURL); err != nil {
		return err
	}
	if maxAdvances < 1 || maxAdvances > MaxAdvanceLimit {
		return fmt.Errorf("翻页上限必须在1-%d之间", MaxAdvanceLimit)
	}
	return nil
}
