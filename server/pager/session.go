package pager

import (
	"github.com/juju/errors"
	"github.com/zhukovaskychina/xtoydb/server/common"
)

// Session 一个作用域内的执行上下文，串联PagerState走过一串页操作。
// 每个打开的库只有一份权威状态，由Session独占持有；
// 单写者模型，Session不得复制或跨协程共享
type Session struct {
	pager *Pager
	state PagerState
}

func NewSession(pagerConf PagerConf, backend StorageBackend, initial PagerState) *Session {
	return &Session{
		pager: NewPager(pagerConf, backend),
		state: initial,
	}
}

// State 当前权威状态的副本
func (session *Session) State() PagerState {
	return session.state
}

func (session *Session) Pager() *Pager {
	return session.pager
}

func (session *Session) ReadPage(pageId PageId) (*Page, error) {
	return session.pager.ReadPage(pageId)
}

func (session *Session) WritePage(page *Page) error {
	return session.pager.WritePage(session.state, page)
}

func (session *Session) AllocatePage() (PageId, error) {
	pageId, newState, err := session.pager.AllocatePage(session.state)
	if err != nil {
		return NoPageId, errors.Trace(err)
	}
	session.state = newState
	return pageId, nil
}

func (session *Session) FreePage(pageId PageId) error {
	newState, err := session.pager.FreePage(session.state, pageId)
	if err != nil {
		return errors.Trace(err)
	}
	session.state = newState
	return nil
}

// RunSession 以initial状态运行fn中的页操作序列，返回最终状态。
// 无论fn是否出错，已经推进的状态都一并交还调用方
func RunSession(pagerConf PagerConf, backend StorageBackend, initial PagerState, fn func(*Session) error) (PagerState, error) {
	session := NewSession(pagerConf, backend, initial)
	if err := fn(session); err != nil {
		return session.state, err
	}
	return session.state, nil
}

// LoadMetadata 从文件头读出元数据块
func (session *Session) LoadMetadata() (*Metadata, error) {
	buff, err := session.pager.backend.ReadRange(0, common.METADATA_SIZE)
	if err != nil {
		return nil, errors.Trace(err)
	}
	meta, err := DecodeMetadata(buff)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return meta, nil
}

// FlushMetadata 把当前会话状态折叠进meta并写回文件头。
// meta中与会话状态无关的字段原样保留
func (session *Session) FlushMetadata(meta *Metadata) error {
	snapshot := *meta
	snapshot.PagesNumber = session.state.PagesNumber
	snapshot.FirstEmptyPageId = session.state.FirstEmptyPageId
	if err := session.pager.backend.WriteRange(0, EncodeMetadata(&snapshot)); err != nil {
		return errors.Trace(err)
	}
	return nil
}

// OpenState 由解码出的元数据块推导初始PagerState
func OpenState(meta *Metadata) PagerState {
	return PagerState{
		PagesNumber:      meta.PagesNumber,
		FirstEmptyPageId: meta.FirstEmptyPageId,
	}
}
