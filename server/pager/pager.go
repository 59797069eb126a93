package pager

import (
	"github.com/juju/errors"
	"github.com/zhukovaskychina/xtoydb/logger"
	"github.com/zhukovaskychina/xtoydb/server/common"
	"github.com/zhukovaskychina/xtoydb/server/conf"
	"github.com/zhukovaskychina/xtoydb/util"
)

// PagerConf 调用方提供的不可变配置，Pager从不修改它
type PagerConf struct {
	FilePath    string
	PageSize    uint32
	BaseOffset  uint32
	PagesNumber uint32
}

// NewPagerConfFromCfg 从全局配置推导页面配置
func NewPagerConfFromCfg(cfg *conf.Cfg) PagerConf {
	return PagerConf{
		FilePath:    cfg.PagerFilePath(),
		PageSize:    uint32(cfg.PagerPageSize),
		BaseOffset:  uint32(cfg.PagerBaseOffset),
		PagesNumber: uint32(cfg.PagerPagesNumber),
	}
}

// PayloadSize 每页可用载荷宽度
func (pagerConf PagerConf) PayloadSize() int {
	return int(pagerConf.PageSize) - common.PAGE_OVERHEAD
}

// InitialState 按配置里的页数提示构造初始状态，空闲链表为空。
// 已有库的状态应改由元数据块还原（OpenState）
func (pagerConf PagerConf) InitialState() PagerState {
	return PagerState{
		PagesNumber:      pagerConf.PagesNumber,
		FirstEmptyPageId: NoPageId,
	}
}

// PagerState 可变会话状态，按值穿过每一次操作并返回新副本。
// PagesNumber 只增不减，FirstEmptyPageId 是空闲链表头
type PagerState struct {
	PagesNumber      uint32
	FirstEmptyPageId PageId
}

// PagerStats 页面级IO统计
type PagerStats struct {
	PageReads      uint64
	PageWrites     uint64
	PagesAllocated uint64
	PagesFreed     uint64
}

// Pager 把页号翻译为物理字节区间，并做页级完整性校验。
// 空闲链表不是独立结构：被回收的页通过自身的nextId串联，
// 根在PagerState.FirstEmptyPageId
type Pager struct {
	conf    PagerConf
	backend StorageBackend
	stats   PagerStats
}

func NewPager(pagerConf PagerConf, backend StorageBackend) *Pager {
	return &Pager{
		conf:    pagerConf,
		backend: backend,
	}
}

func (pager *Pager) Conf() PagerConf {
	return pager.conf
}

func (pager *Pager) Stats() PagerStats {
	return pager.stats
}

func (pager *Pager) offsetOf(pageId PageId) int64 {
	return int64(pager.conf.BaseOffset) + int64(pageId)*int64(pager.conf.PageSize)
}

// ReadPage 读取并校验一页。解码出的页号必须等于请求的页号，
// 否则视为损坏（过期的空闲链表、被截断的文件）而非静默容忍
func (pager *Pager) ReadPage(pageId PageId) (*Page, error) {
	if pageId.IsNoPage() {
		return nil, NewFault("ReadPage", "NO_PAGE_ID is not addressable")
	}

	buff, err := pager.backend.ReadRange(pager.offsetOf(pageId), int(pager.conf.PageSize))
	if err != nil {
		if IsShortRead(err) {
			// 槽位从未写出或文件过短
			return nil, errors.Annotatef(ErrPageNotFound, "page %d", pageId)
		}
		return nil, errors.Trace(err)
	}

	page, err := DecodePage(buff)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if page.Id != pageId {
		return nil, errors.Annotatef(ErrPageIdMismatch,
			"requested page %d, slot stores page %d", pageId, page.Id)
	}

	pager.stats.PageReads++
	logger.Debugf("read page %d next=%d checksum=%d", pageId, page.NextId, util.HashCode(page.Payload))
	return page, nil
}

// WritePage 写出一页。只有分配才能扩张页空间，
// 向未分配的槽位写入按OverflowWrite拒绝而不是扩张文件
func (pager *Pager) WritePage(state PagerState, page *Page) error {
	if page.Id.IsNoPage() {
		return NewFault("WritePage", "NO_PAGE_ID is not addressable")
	}
	if uint32(page.Id) >= state.PagesNumber {
		return errors.Annotatef(ErrOverflowWrite,
			"page %d beyond %d allocated pages", page.Id, state.PagesNumber)
	}

	buff, err := EncodePage(page, pager.conf.PageSize)
	if err != nil {
		return errors.Trace(err)
	}
	if err := pager.backend.WriteRange(pager.offsetOf(page.Id), buff); err != nil {
		return errors.Trace(err)
	}

	pager.stats.PageWrites++
	logger.Debugf("write page %d next=%d checksum=%d", page.Id, page.NextId, util.HashCode(page.Payload))
	return nil
}

// AllocatePage 取得一个可写槽位：优先弹出空闲链表头
// （一次读页取得其后继），链表为空时扩张一个新槽位。
// 返回的槽位内容由调用方负责随后写入
func (pager *Pager) AllocatePage(state PagerState) (PageId, PagerState, error) {
	newState := state

	if !state.FirstEmptyPageId.IsNoPage() {
		head, err := pager.ReadPage(state.FirstEmptyPageId)
		if err != nil {
			return NoPageId, state, errors.Trace(err)
		}
		newState.FirstEmptyPageId = head.NextId
		pager.stats.PagesAllocated++
		logger.Debugf("allocate page %d from free list, new head %d", head.Id, head.NextId)
		return head.Id, newState, nil
	}

	pageId := PageId(state.PagesNumber)
	newState.PagesNumber = state.PagesNumber + 1
	pager.stats.PagesAllocated++
	logger.Debugf("allocate page %d by extending page space to %d", pageId, newState.PagesNumber)
	return pageId, newState, nil
}

// FreePage 把页挂到空闲链表头。载荷在此清零，
// 避免槽位复用前的读取暴露旧行数据
func (pager *Pager) FreePage(state PagerState, pageId PageId) (PagerState, error) {
	if pageId.IsNoPage() {
		return state, NewFault("FreePage", "NO_PAGE_ID cannot be freed")
	}

	empty := NewPage(pageId, pager.conf.PayloadSize())
	empty.NextId = state.FirstEmptyPageId
	if err := pager.WritePage(state, empty); err != nil {
		return state, errors.Trace(err)
	}

	newState := state
	newState.FirstEmptyPageId = pageId
	pager.stats.PagesFreed++
	logger.Debugf("free page %d, previous head %d", pageId, state.FirstEmptyPageId)
	return newState, nil
}
