package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/bielbb931/NIAP-scrape/internal/models"
)

func sampleRecords() []models.Record {
	return []models.Record{
		{
			VID:               "11203",
			Vendor:            "Acme Corp",
			Product:           "Acme Firewall, \"Edge\" Edition",
			CCTL:              "Gossamer",
			CertificationDate: "2024-03-15",
			Status:            "Certified",
			ConformanceClaims: "PP_FW_V1.0",
			Scheme:            "USA",
			ProductURL:        "https://www.niap-ccevs.org/products/11203",
		},
		{
			// 大部分字段缺失的记录: 输出中必须是空字符串而不是null
			Product: "Bare Product",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "products.csv")
	records := sampleRecords()

	if err := WriteCSV(records, path); err != nil {
		t.Fatalf("WriteCSV() 失败: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("打开输出文件失败: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("读回CSV失败: %v", err)
	}

	if len(rows) != len(records)+1 {
		t.Fatalf("行数 = %d, 期望表头+%d条记录", len(rows), len(records))
	}
	if !reflect.DeepEqual(rows[0], models.OutputHeader) {
		t.Errorf("表头行 = %v, 期望 %v", rows[0], models.OutputHeader)
	}
	if !reflect.DeepEqual(rows[1], records[0].CSVRow()) {
		t.Errorf("数据行 = %v, 期望 %v", rows[1], records[0].CSVRow())
	}
	// 带引号和逗号的字段必须往返无损
	if rows[1][2] != records[0].Product {
		t.Errorf("Product往返 = %q, 期望 %q", rows[1][2], records[0].Product)
	}
}

func TestWriteJSONL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.jsonl")
	records := sampleRecords()

	if err := WriteJSONL(records, path); err != nil {
		t.Fatalf("WriteJSONL() 失败: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("打开输出文件失败: %v", err)
	}
	defer f.Close()

	headerSet := make(map[string]struct{})
	for _, k := range models.OutputHeader {
		headerSet[k] = struct{}{}
	}

	scanner := bufio.NewScanner(f)
	lines := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "null") {
			t.Errorf("JSONL行含null, 缺失字段必须是空字符串: %s", line)
		}

		var obj map[string]string
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Fatalf("第%d行不是合法JSON对象: %v", lines+1, err)
		}
		if len(obj) != len(models.OutputHeader) {
			t.Errorf("第%d行键数 = %d, 期望 %d", lines+1, len(obj), len(models.OutputHeader))
		}
		for k := range obj {
			if _, ok := headerSet[k]; !ok {
				t.Errorf("第%d行出现未知键 %q", lines+1, k)
			}
		}
		lines++
	}
	if lines != len(records) {
		t.Errorf("JSONL行数 = %d, 期望 %d", lines, len(records))
	}
}

func TestWriteAllConsistency(t *testing.T) {
	// 两种格式的键集与值语义完全一致: 同一列在CSV和JSONL中的值逐条相等
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out.csv")
	jsonlPath := filepath.Join(dir, "out.jsonl")
	records := sampleRecords()

	count, err := WriteAll(records, csvPath, jsonlPath)
	if err != nil {
		t.Fatalf("WriteAll() 失败: %v", err)
	}
	if count != len(records) {
		t.Errorf("WriteAll() = %d, 期望 %d", count, len(records))
	}

	cf, err := os.Open(csvPath)
	if err != nil {
		t.Fatalf("打开CSV失败: %v", err)
	}
	defer cf.Close()
	csvRows, err := csv.NewReader(cf).ReadAll()
	if err != nil {
		t.Fatalf("读回CSV失败: %v", err)
	}

	jf, err := os.Open(jsonlPath)
	if err != nil {
		t.Fatalf("打开JSONL失败: %v", err)
	}
	defer jf.Close()

	scanner := bufio.NewScanner(jf)
	for i := 0; scanner.Scan(); i++ {
		var obj map[string]string
		if err := json.Unmarshal(scanner.Bytes(), &obj); err != nil {
			t.Fatalf("第%d行JSON解析失败: %v", i+1, err)
		}
		for col, key := range models.OutputHeader {
			if obj[key] != csvRows[i+1][col] {
				t.Errorf("记录%d列%q不一致: JSONL=%q CSV=%q", i, key, obj[key], csvRows[i+1][col])
			}
		}
	}
}

func TestWriteAllEmptyRecords(t *testing.T) {
	// 零条记录也要写出带表头的CSV和空JSONL
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "empty.csv")
	jsonlPath := filepath.Join(dir, "empty.jsonl")

	count, err := WriteAll(nil, csvPath, jsonlPath)
	if err != nil {
		t.Fatalf("WriteAll() 失败: %v", err)
	}
	if count != 0 {
		t.Errorf("WriteAll() = %d, 期望 0", count)
	}

	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("读回CSV失败: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != strings.Join(models.OutputHeader, ",") {
		t.Errorf("空CSV内容 = %q, 期望仅表头行", got)
	}

	jdata, err := os.ReadFile(jsonlPath)
	if err != nil {
		t.Fatalf("读回JSONL失败: %v", err)
	}
	if len(jdata) != 0 {
		t.Errorf("空JSONL应为0字节, got %d", len(jdata))
	}
}
