package pager

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zhukovaskychina/xtoydb/server/conf"
)

func TestNewPagerConfFromCfg(t *testing.T) {
	cfg := conf.NewCfg()

	pagerConf := NewPagerConfFromCfg(cfg)
	assert.Equal(t, filepath.Join("data", "xtdata1"), pagerConf.FilePath)
	assert.Equal(t, uint32(16384), pagerConf.PageSize)
	assert.Equal(t, uint32(128), pagerConf.BaseOffset)
	assert.Equal(t, 16384-8, pagerConf.PayloadSize())
}
