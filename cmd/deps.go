package main

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go_template_202610/internal/config"
	"go_template_202610/internal/logging"
	"go_template_202610/pkg/database"
	"go_template_202610/pkg/net"
)

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
// 启动时显式构造，通过 cli.Context 传给各命令，不使用全局注册表
type Dependencies struct {
	Config     *config.Config
	Logger     *zap.Logger
	HttpClient *net.HttpClientService
	db         *gorm.DB
}

// initDependencies 初始化日志与出站客户端；数据库按需连接
func initDependencies(cfg *config.Config) (*Dependencies, error) {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}

	httpClient := net.NewHttpClientService(net.HttpClientConfig{
		Timeout: cfg.HttpClient.Timeout,
		Debug:   cfg.HttpClient.Debug,
	}, logger)

	return &Dependencies{
		Config:     cfg,
		Logger:     logger,
		HttpClient: httpClient,
	}, nil
}

// DB 首次调用时建立连接
func (d *Dependencies) DB() (*gorm.DB, error) {
	if d.db != nil {
		return d.db, nil
	}

	dbCfg := d.Config.Database
	level, err := logging.ParseGormLevel(dbCfg.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := database.InitDB(database.Options{
		Driver:          dbCfg.Driver,
		DSN:             dbCfg.DSN,
		MaxIdleConns:    dbCfg.MaxIdleConns,
		MaxOpenConns:    dbCfg.MaxOpenConns,
		ConnMaxLifetime: dbCfg.ConnMaxLifetime,
		Logger:          logging.NewGormLogger(d.Logger, level, dbCfg.SlowThreshold),
	})
	if err != nil {
		return nil, err
	}

	d.Logger.Info("数据库连接成功", zap.String("driver", dbCfg.Driver))
	d.db = db
	return db, nil
}

// Close 释放所有资源
func (d *Dependencies) Close() {
	d.HttpClient.Close()
	if d.db != nil {
		if err := database.Close(d.db); err != nil {
			d.Logger.Warn("关闭数据库失败", zap.Error(err))
		}
	}
	_ = d.Logger.Sync()
}
