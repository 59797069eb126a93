package pager

import (
	"github.com/zhukovaskychina/xtoydb/server/common"
	"github.com/zhukovaskychina/xtoydb/util"
)

// PageId 页槽位编号，从0开始
type PageId uint32

// NoPageId 哨兵值，表示"没有页"
const NoPageId = PageId(common.NO_PAGE_ID)

func (pageId PageId) IsNoPage() bool {
	return pageId == NoPageId
}

// Page 一个定长槽位的逻辑内容。
// Id 冗余存储在页体中，读取时用于完整性校验
type Page struct {
	Id      PageId
	NextId  PageId
	Payload []byte
}

// NewPage 构造一个载荷清零、不指向任何后继的页
func NewPage(pageId PageId, payloadSize int) *Page {
	return &Page{
		Id:      pageId,
		NextId:  NoPageId,
		Payload: util.AppendByte(payloadSize),
	}
}

// LinkTo 把本页链到next。从"没有页"出发建链是编程错误；
// 链向NoPageId表示截断链尾，载荷不受影响
func (page *Page) LinkTo(next PageId) error {
	if page.Id.IsNoPage() {
		return NewFault("LinkTo", "cannot chain from NO_PAGE_ID")
	}
	page.NextId = next
	return nil
}
