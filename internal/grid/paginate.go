package grid

import (
	"time"

	"github.com/bielbb931/NIAP-scrape/internal/models"
	"github.com/bielbb931/NIAP-scrape/internal/utils"
)

// State 分页驱动器状态
type State int

const (
	StateInitial State = iota // 初始: 网格与表头尚未就绪
	StateCollecting           // 采集: 滚动渲染+提取+去重
	StateAdvancing            // 翻页: 决定终止或点击下一页
	StateDone                 // 终止
)

// String 状态名
func (s State) String() string {
	switch s {
	case StateInitial:
		return "INITIAL"
	case StateCollecting:
		return "COLLECTING"
	case StateAdvancing:
		return "ADVANCING"
	case StateDone:
		return "DONE"
	}
	return "UNKNOWN"
}

// Options 分页驱动器参数
type Options struct {
	MaxAdvances int           // 翻页安全上限,即使禁用信号永不触发也保证终止
	SettleBurst int           // 翻页点击后的短等待+滚动突发次数上限
	BurstPause  time.Duration // 突发中的单次等待时长
	Scroll      ScrollOptions // 虚拟化驱动参数
	Stable      StableOptions // 渲染稳定判定参数

	// OnPass 每轮采集后的回调(去重后数量, 分页器总数),用于进度显示
	OnPass func(unique, total int)
}

// DefaultOptions 默认驱动器参数
func DefaultOptions() Options {
	return Options{
		MaxAdvances: 100,
		SettleBurst: 10,
		BurstPause:  120 * time.Millisecond,
		Scroll:      DefaultScrollOptions(),
		Stable:      DefaultStableOptions(),
	}
}

// Driver 分页驱动器
// 持有会话(累积记录+去重集合),把 采集⇄翻页 循环建模为显式状态机,
// 安全上限与总数早退逻辑集中在纯迁移函数nextTransition中
type Driver struct {
	page    Page
	grid    Element
	headers HeaderMap
	opts    Options

	sess     *Session
	total    int // 分页器声明的总数,0为未知
	advances int // 已执行的翻页点击数
	state    State
}

// NewDriver 创建分页驱动器
// 调用前网格定位与表头解析都必须已成功(INITIAL→COLLECTING的前置条件)
func NewDriver(page Page, grid Element, headers HeaderMap, opts Options) *Driver {
	return &Driver{
		page:    page,
		grid:    grid,
		headers: headers,
		opts:    opts,
		sess:    NewSession(),
		state:   StateInitial,
	}
}

// nextTransition 纯迁移函数: 决定ADVANCING状态的去向
// 依序判定: 总数早退 → 安全上限 → 翻页控件可用性;
// 三者都不终止时回到COLLECTING
func nextTransition(advances, maxAdvances, total, unique int, nextUsable bool) State {
	if total > 0 && unique >= total {
		return StateDone
	}
	if advances >= maxAdvances {
		return StateDone
	}
	if !nextUsable {
		return StateDone
	}
	return StateCollecting
}

// Run 驱动状态机到DONE,返回累积记录与统计
func (d *Driver) Run() ([]models.Record, models.ScrapeStats, error) {
	d.total = TotalFromPager(d.page)
	d.sess.SetReportedTotal(d.total)
	if d.total > 0 {
		utils.Infof("分页器报告记录总数: %d", d.total)
	} else {
		utils.Debug("未能解析分页器总数,依赖翻页控件禁用信号终止")
	}

	d.state = StateCollecting
	for d.state != StateDone {
		switch d.state {
		case StateCollecting:
			d.collect()
			d.state = StateAdvancing
		case StateAdvancing:
			d.state = d.advance()
		}
	}

	// DONE后补采一轮,捕获最后一次点击settle后才渲染的行(幂等,重复照常过滤)
	d.collect()

	utils.Infof("✅ 分页采集完成: %d条记录, %d次翻页", d.sess.UniqueCount(), d.advances)
	return d.sess.Records(), d.sess.Stats(), nil
}

// collect 一轮采集: 强制渲染 → 等待稳定 → 提取+去重
func (d *Driver) collect() {
	ScrollToEnd(d.page, d.opts.Scroll)
	if !WaitStable(d.page, d.opts.Stable) {
		utils.Debugf("渲染未在%v内稳定,按当前视口继续采集", d.opts.Stable.Timeout)
	}

	// 防御性重定位: 网格引用可能因重渲染失效
	if g, err := Locate(d.page); err == nil {
		d.grid = g
	}

	added := CollectRows(d.page, d.grid, d.headers, d.sess)
	d.sess.CountPass()
	utils.Debugf("采集轮次[%d]: 新增%d条, 累计%d条", d.sess.Stats().Passes, added, d.sess.UniqueCount())

	if d.opts.OnPass != nil {
		d.opts.OnPass(d.sess.UniqueCount(), d.total)
	}
}

// advance 执行一次ADVANCING迁移
// 终止条件不满足时点击下一页并执行有界的settle突发
func (d *Driver) advance() State {
	next := NextButton(d.page)
	usable := next != nil && !IsDisabled(next)

	state := nextTransition(d.advances, d.opts.MaxAdvances, d.total, d.sess.UniqueCount(), usable)
	if state != StateCollecting {
		utils.Debugf("状态迁移 ADVANCING → %s (翻页%d次, 累计%d条)", state, d.advances, d.sess.UniqueCount())
		return state
	}

	if err := ClickNext(next); err != nil {
		utils.Warnf("点击翻页控件失败,终止翻页: %v", err)
		return StateDone
	}
	d.advances++
	d.sess.CountAdvance()

	// 点击后的settle: 短等待与单次到底滚动交替,有界
	for i := 0; i < d.opts.SettleBurst; i++ {
		d.page.Sleep(d.opts.BurstPause)
		ScrollToEnd(d.page, ScrollOptions{Repeats: 1, Pause: d.opts.BurstPause / 3})
	}

	return StateCollecting
}
