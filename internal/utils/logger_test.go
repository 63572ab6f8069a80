package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	config := LogConfig{
		Level:      "debug",
		LogDir:     dir,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
		Compress:   false,
	}

	if err := InitLogger(config); err != nil {
		t.Fatalf("InitLogger() 失败: %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("日志目录未创建: %v", err)
	}

	// 初始化后各快捷方法不应panic
	Info("测试信息")
	Infof("测试格式化信息: %d", 42)
	Warn("测试警告")
	Warnf("测试格式化警告: %s", "w")
	Debug("测试调试")
	Debugf("测试格式化调试: %v", true)
	Errorf("测试格式化错误: %s", "e")

	// 主日志文件应已写入
	if _, err := os.Stat(filepath.Join(dir, "niap_scraper.log")); err != nil {
		t.Errorf("主日志文件未创建: %v", err)
	}
}

func TestInitLoggerInvalidLevelFallsBack(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	if err := InitLogger(LogConfig{Level: "notalevel", LogDir: dir}); err != nil {
		t.Fatalf("InitLogger() 失败: %v", err)
	}
	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Errorf("非法级别应回退到info, got %v", got)
	}
}

func TestDefaultLogConfig(t *testing.T) {
	config := DefaultLogConfig()
	if config.Level != "info" {
		t.Errorf("默认级别 = %q, 期望 info", config.Level)
	}
	if config.LogDir != "logs" {
		t.Errorf("默认日志目录 = %q, 期望 logs", config.LogDir)
	}
}

func TestFilteredWriterLevels(t *testing.T) {
	var buf writeCounter
	w := &FilteredWriter{Writer: &buf, MinLevel: zerolog.ErrorLevel}

	if _, err := w.WriteLevel(zerolog.InfoLevel, []byte("info")); err != nil {
		t.Fatalf("WriteLevel(info) 失败: %v", err)
	}
	if buf.n != 0 {
		t.Errorf("低于阈值的日志不应写入, 写入了%d字节", buf.n)
	}

	if _, err := w.WriteLevel(zerolog.ErrorLevel, []byte("error")); err != nil {
		t.Fatalf("WriteLevel(error) 失败: %v", err)
	}
	if buf.n == 0 {
		t.Error("达到阈值的日志应写入")
	}
}

type writeCounter struct {
	n int
}

func (w *writeCounter) Write(p []byte) (int, error) {
	w.n += len(p)
	return len(p), nil
}
