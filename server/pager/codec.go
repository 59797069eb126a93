package pager

import (
	"github.com/juju/errors"
	"github.com/zhukovaskychina/xtoydb/server/common"
	"github.com/zhukovaskychina/xtoydb/util"
)

// EncodePage 序列化页面: pageId + nextId + payload，定宽pageSize字节。
// 载荷宽度必须恰好等于 pageSize - PAGE_OVERHEAD，不做隐式补零
func EncodePage(page *Page, pageSize uint32) ([]byte, error) {
	payloadSize := int(pageSize) - common.PAGE_OVERHEAD
	if len(page.Payload) != payloadSize {
		return nil, errors.Annotatef(ErrSizeMismatch,
			"page %d payload is %d bytes, want %d", page.Id, len(page.Payload), payloadSize)
	}

	buff := make([]byte, 0, pageSize)
	buff = util.WriteUB4(buff, uint32(page.Id))
	buff = util.WriteUB4(buff, uint32(page.NextId))
	buff = util.WriteBytes(buff, page.Payload)
	return buff, nil
}

// DecodePage 反序列化页面，载荷为页头之后的全部字节
func DecodePage(buff []byte) (*Page, error) {
	if len(buff) < common.PAGE_OVERHEAD {
		return nil, errors.Annotatef(ErrDecodeError,
			"%d bytes, need at least %d", len(buff), common.PAGE_OVERHEAD)
	}

	cursor, id := util.ReadUB4(buff, 0)
	cursor, next := util.ReadUB4(buff, cursor)

	payload := make([]byte, len(buff)-common.PAGE_OVERHEAD)
	copy(payload, buff[cursor:])

	return &Page{
		Id:      PageId(id),
		NextId:  PageId(next),
		Payload: payload,
	}, nil
}
