package utils

import "strings"

// SquashWhitespace 折叠连续空白为单个空格并去除首尾空白
// 所有表头文本和单元格文本在比较/存储前都先经过这一步
func SquashWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ParseDigits 提取文本中的所有数字字符并解析为整数
// 用于解析每页行数选项(如 "250 rows"),无数字时返回0
func ParseDigits(s string) int {
	n := 0
	found := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			found = true
		}
	}
	if !found {
		return 0
	}
	return n
}
