package grid

import (
	"strings"

	"github.com/bielbb931/NIAP-scrape/internal/models"
	"github.com/bielbb931/NIAP-scrape/internal/utils"
)

// aliasTable 静态别名表: 规范字段 -> 站点上见过的表头变体
// 匹配为大小写不敏感的精确匹配(非子串匹配)
var aliasTable = map[string][]string{
	models.FieldVID:                      {"VID", "Validation ID", "VPL ID", "Validation Identifier"},
	models.FieldVendor:                   {"Vendor", "Manufacturer"},
	models.FieldProduct:                  {"Product", "Product Name", "TOE"},
	models.FieldCCTL:                     {"CCTL", "CC Testing Lab", "Lab", "Testing Laboratory"},
	models.FieldCertificationDate:        {"Certification Date", "Check-in Date", "Validation Date", "Date"},
	models.FieldStatus:                   {"Status", "State"},
	models.FieldConformanceClaims:        {"Conformance Claims", "PP", "Protection Profile", "Conformance"},
	models.FieldAssuranceMaintenanceDate: {"Assurance Maintenance Date", "AMD", "Maintenance Date"},
	models.FieldMaintenanceUpdate:        {"Maintenance Update", "Maintenance", "Assurance Maintenance"},
	models.FieldScheme:                   {"Scheme", "Country"},
}

// aliasLookup 小写变体 -> 规范字段,启动时由aliasTable构建
var aliasLookup map[string]string

func init() {
	aliasLookup = make(map[string]string)
	for canonical, variants := range aliasTable {
		for _, v := range variants {
			aliasLookup[strings.ToLower(v)] = canonical
		}
	}
}

// Canonical 将显示的表头文本解析为规范字段名
// 先做空白归一化再小写精确匹配,无法识别时ok为false
func Canonical(header string) (string, bool) {
	h := strings.ToLower(utils.SquashWhitespace(header))
	canonical, ok := aliasLookup[h]
	return canonical, ok
}
