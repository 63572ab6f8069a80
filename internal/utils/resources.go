package utils

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const (
	// MinAvailableMemory 启动浏览器前要求的最小可用内存 (500MB)
	MinAvailableMemory = 500 * 1024 * 1024

	// CPULoadWarnThreshold CPU负载告警阈值 (%)
	CPULoadWarnThreshold = 90.0
)

// CheckSystemResources 启动Chromium前的资源预检
// 仅告警不阻塞: 资源紧张时无头浏览器容易崩溃,提前提示用户
func CheckSystemResources() {
	vm, err := mem.VirtualMemory()
	if err != nil {
		Warnf("读取内存信息失败: %v", err)
	} else {
		Debugf("系统内存: 可用 %.1f MB / 总计 %.1f MB",
			float64(vm.Available)/(1024*1024), float64(vm.Total)/(1024*1024))
		if vm.Available < MinAvailableMemory {
			Warnf("可用内存不足 %.0f MB,无头浏览器可能不稳定", float64(MinAvailableMemory)/(1024*1024))
		}
	}

	loads, err := cpu.Percent(0, false)
	if err != nil {
		Warnf("读取CPU负载失败: %v", err)
		return
	}
	if len(loads) > 0 {
		Debugf("CPU负载: %.1f%%", loads[0])
		if loads[0] > CPULoadWarnThreshold {
			Warnf("CPU负载过高 (%.1f%%),页面渲染等待可能超时", loads[0])
		}
	}
}
