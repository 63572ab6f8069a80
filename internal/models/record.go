package models

// 规范字段名
// 表头解析器输出的所有字段都必须来自这个固定集合
const (
	FieldVID                      = "VID"
	FieldVendor                   = "Vendor"
	FieldProduct                  = "Product"
	FieldCCTL                     = "CCTL"
	FieldCertificationDate        = "Certification Date"
	FieldStatus                   = "Status"
	FieldConformanceClaims        = "Conformance Claims"
	FieldAssuranceMaintenanceDate = "Assurance Maintenance Date"
	FieldMaintenanceUpdate        = "Maintenance Update"
	FieldScheme                   = "Scheme"
)

// CanonicalFields 规范字段的固定顺序
// 该顺序同时决定去重兜底键的拼接顺序和输出列的顺序
var CanonicalFields = []string{
	FieldVID,
	FieldVendor,
	FieldProduct,
	FieldCCTL,
	FieldCertificationDate,
	FieldStatus,
	FieldConformanceClaims,
	FieldAssuranceMaintenanceDate,
	FieldMaintenanceUpdate,
	FieldScheme,
}

// OutputHeader 输出文件的表头行 (CSV列名 = JSONL键名)
var OutputHeader = []string{
	"vid",
	"vendor",
	"product",
	"cctl",
	"certification_date",
	"status",
	"conformance_claims",
	"assurance_maintenance_date",
	"maintenance_update",
	"scheme",
	"product_url",
}

// Record 一条提取出的产品记录
// 所有字段均为字符串,缺失时为空字符串(输出中永远不出现null)
// 一旦追加到累积列表即不可变
type Record struct {
	VID                      string `json:"vid"`
	Vendor                   string `json:"vendor"`
	Product                  string `json:"product"`
	CCTL                     string `json:"cctl"`
	CertificationDate        string `json:"certification_date"`
	Status                   string `json:"status"`
	ConformanceClaims        string `json:"conformance_claims"`
	AssuranceMaintenanceDate string `json:"assurance_maintenance_date"`
	MaintenanceUpdate        string `json:"maintenance_update"`
	Scheme                   string `json:"scheme"`
	ProductURL               string `json:"product_url"`
}

// NewRecord 从规范字段映射和捕获的详情链接构造记录
func NewRecord(values map[string]string, productURL string) Record {
	return Record{
		VID:                      values[FieldVID],
		Vendor:                   values[FieldVendor],
		Product:                  values[FieldProduct],
		CCTL:                     values[FieldCCTL],
		CertificationDate:        values[FieldCertificationDate],
		Status:                   values[FieldStatus],
		ConformanceClaims:        values[FieldConformanceClaims],
		AssuranceMaintenanceDate: values[FieldAssuranceMaintenanceDate],
		MaintenanceUpdate:        values[FieldMaintenanceUpdate],
		Scheme:                   values[FieldScheme],
		ProductURL:               productURL,
	}
}

// CSVRow 按OutputHeader顺序返回各列的值
func (r Record) CSVRow() []string {
	return []string{
		r.VID,
		r.Vendor,
		r.Product,
		r.CCTL,
		r.CertificationDate,
		r.Status,
		r.ConformanceClaims,
		r.AssuranceMaintenanceDate,
		r.MaintenanceUpdate,
		r.Scheme,
		r.ProductURL,
	}
}
