package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/zhanxing-dev/featured-manager/backend/internal/config"
	"github.com/zhanxing-dev/featured-manager/backend/internal/featured"
	"github.com/zhanxing-dev/featured-manager/backend/internal/repository"
	"github.com/zhanxing-dev/featured-manager/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机推荐档期, 2: 上线覆盖今天的档期)")
	flag.IntVar(&n, "n", 0, "要插入的记录数量，缺省使用配置中的数量")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository 和核心 service
	repo := repository.NewRepository(cfg, dbpool)
	svc := featured.NewService(repo)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			n = cfg.Seed.SlotCount
		}
		cnt := seed.SeedRandomSlots(svc, n)
		slog.Info("插入推荐档期成功", slog.Int("count", cnt))
	case 2:
		seed.ActivateToday(svc)
	default:
		slog.Error("指定的操作非法")
	}
}
