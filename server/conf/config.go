package conf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/zhukovaskychina/xtoydb/logger"
	"github.com/zhukovaskychina/xtoydb/server/common"

	"gopkg.in/ini.v1"
)

var ConfigPath string

type CommandLineArgs struct {
	ConfigPath string
}

/*
*
[pager]
data_dir    = data
file_name   = xtdata1
page_size   = 16384
base_offset = 128
*/
type Cfg struct {
	Raw     *ini.File
	AppName string

	// pager
	DataDir          string `default:"data" yaml:"data_dir" json:"data_dir,omitempty"`
	PagerFileName    string `default:"xtdata1" yaml:"file_name" json:"file_name,omitempty"`
	PagerPageSize    int    `default:"16384" yaml:"page_size" json:"page_size,omitempty"`
	PagerBaseOffset  int    `default:"128" yaml:"base_offset" json:"base_offset,omitempty"`
	PagerPagesNumber int    `default:"0" yaml:"pages_number" json:"pages_number,omitempty"`

	// logs
	LogError string `default:"/var/log/xtoydb/error.log" yaml:"log_error" json:"log_error,omitempty"`
	LogInfos string `default:"/var/log/xtoydb/xtoydb.log" yaml:"log_infos" json:"log_infos,omitempty"`
	LogLevel string `default:"info" yaml:"log_level" json:"log_level,omitempty"`
}

func NewCfg() *Cfg {
	return &Cfg{
		Raw:     ini.Empty(),
		AppName: "xtoydb",

		DataDir:          "data",
		PagerFileName:    "xtdata1",
		PagerPageSize:    common.DEFAULT_PAGE_SIZE,
		PagerBaseOffset:  common.METADATA_SIZE,
		PagerPagesNumber: 0,

		LogError: "/var/log/xtoydb/error.log",
		LogInfos: "/var/log/xtoydb/xtoydb.log",
		LogLevel: "info",
	}
}

func (cfg *Cfg) Load(args *CommandLineArgs) *Cfg {
	setHomePath(args)
	iniFile, err := cfg.loadConfiguration(args)
	if err != nil {
		logger.Debugf("加载配置文件时有异常: %v\n", err)
		return cfg
	}
	cfg.Raw = iniFile

	cfg.parsePagerCfg(cfg.Raw.Section("pager"))
	cfg.parseLogsCfg(cfg.Raw.Section("logs"))
	return cfg
}

func setHomePath(args *CommandLineArgs) {
	if args.ConfigPath != "" {
		ConfigPath = args.ConfigPath
		return
	}

	ConfigPath, _ = filepath.Abs(".")
}

func (cfg *Cfg) loadConfiguration(args *CommandLineArgs) (*ini.File, error) {
	configFile := "conf/my.ini"
	if args.ConfigPath != "" {
		configFile = args.ConfigPath
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		logger.Debugf("配置文件不存在: %s，使用默认配置\n", configFile)
		return ini.Empty(), nil
	}

	parsedFile, err := ini.Load(configFile)
	if err != nil {
		logger.Debugf("解析配置文件失败: %v，使用默认配置\n", err)
		return ini.Empty(), nil
	}

	logger.Debugf("成功加载配置文件: %s\n", configFile)
	return parsedFile, nil
}

func (cfg *Cfg) parsePagerCfg(section *ini.Section) *Cfg {
	if section == nil {
		return cfg
	}

	dataDir, err := valueAsString(section, "data_dir", cfg.DataDir)
	if err == nil {
		cfg.DataDir = dataDir
	}

	fileName, err := valueAsString(section, "file_name", cfg.PagerFileName)
	if err == nil {
		cfg.PagerFileName = fileName
	}

	pageSize := section.Key("page_size").MustInt(cfg.PagerPageSize)
	if pageSize <= common.PAGE_OVERHEAD {
		logger.Warnf("无效的页面大小 %d, 使用默认值 %d", pageSize, common.DEFAULT_PAGE_SIZE)
		pageSize = common.DEFAULT_PAGE_SIZE
	}
	cfg.PagerPageSize = pageSize

	baseOffset := section.Key("base_offset").MustInt(cfg.PagerBaseOffset)
	cfg.PagerBaseOffset = baseOffset

	pagesNumber := section.Key("pages_number").MustInt(cfg.PagerPagesNumber)
	cfg.PagerPagesNumber = pagesNumber

	return cfg
}

func (cfg *Cfg) parseLogsCfg(section *ini.Section) *Cfg {
	if section == nil {
		return cfg
	}

	logError, err := valueAsString(section, "log_error", cfg.LogError)
	if err == nil {
		cfg.LogError = logError
	}

	logInfos, err := valueAsString(section, "log_infos", cfg.LogInfos)
	if err == nil {
		cfg.LogInfos = logInfos
	}

	logLevel, err := valueAsString(section, "log_level", cfg.LogLevel)
	if err == nil {
		cfg.LogLevel = strings.ToLower(logLevel)
		validLevels := []string{"debug", "info", "warn", "error", "fatal", "panic"}
		isValid := false
		for _, level := range validLevels {
			if cfg.LogLevel == level {
				isValid = true
				break
			}
		}
		if !isValid {
			logger.Debugf("警告: 无效的日志级别 '%s', 使用默认级别 'info'\n", logLevel)
			cfg.LogLevel = "info"
		}
	}

	return cfg
}

// PagerFilePath 页面文件的完整路径
func (cfg *Cfg) PagerFilePath() string {
	return filepath.Join(cfg.DataDir, cfg.PagerFileName)
}

func valueAsString(section *ini.Section, keyName string, defaultValue string) (value string, err error) {
	if section == nil {
		return defaultValue, nil
	}
	value = section.Key(keyName).MustString(defaultValue)
	if value == "" {
		value = defaultValue
	}
	return value, nil
}
