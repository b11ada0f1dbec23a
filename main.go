package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/wavefront/pkg/app"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	tuningPath := flag.String("config", "", "数值配置文件路径（默认使用内置 data/tuning.yaml）")
	seed := flag.Int64("seed", 0, "固定随机种子（0 表示每局随机）")
	skipMenu := flag.Bool("play", false, "跳过主菜单直接开始")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		TuningPath: *tuningPath,
		Seed:       *seed,
		SkipMenu:   *skipMenu,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wavefront")
	ebiten.SetTPS(config.TicksPerSecond)

	err = ebiten.RunGame(gameApp)
	gameApp.SaveOnExit()
	if err != nil {
		log.Fatal(err)
	}
}
