package grid

// gridSelectors 网格容器的结构化启发选择器,按优先级排列
var gridSelectors = []string{
	`div[role="grid"]`,
	"div.MuiDataGrid-root",
	"div.MuiDataGrid-main",
	"table",
}

// Locate 查找当前的网格/表格容器,返回第一个非空匹配
// 全部落空时返回ErrGridNotFound(致命,绝不以空网格继续)
func Locate(page Page) (Element, error) {
	for _, sel := range gridSelectors {
		els, err := page.Elements(sel)
		if err != nil {
			continue
		}
		if len(els) > 0 {
			return els[0], nil
		}
	}
	return nil, ErrGridNotFound
}
