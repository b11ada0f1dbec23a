// wavesim 无界面批量模拟工具
//
// 用脚本输入驱动完整的游戏管线，并行运行多局并按种子顺序输出结算，
// 用于调整 data/tuning.yaml 中的数值。
//
// 用法：
//
//	go run ./cmd/wavesim -runs 16 -parallel 4 -duration 300
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/game"
	"github.com/decker502/wavefront/pkg/systems"
	"github.com/decker502/wavefront/pkg/types"
	"golang.org/x/sync/errgroup"
)

var (
	runs         = flag.Int("runs", 8, "模拟局数")
	parallel     = flag.Int("parallel", 4, "并行局数上限")
	duration     = flag.Float64("duration", 600, "每局最长模拟时间（秒）")
	seed         = flag.Int64("seed", 1, "第一局的随机种子，后续局依次递增")
	verbose      = flag.Bool("verbose", false, "显示详细调试信息")
	tuningPath   = flag.String("config", "data/tuning.yaml", "数值配置文件路径")
	fireInterval = flag.Int("fire-interval", 30, "机器人发射间隔（tick）")
	turnRate     = flag.Float64("turn-rate", 0.02, "机器人每 tick 转向角度（弧度）")
)

// runResult 一局模拟的结果
type runResult struct {
	record game.RunRecord
	ticks  int
	stats  systems.Stats
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadTuningConfig(*tuningPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "数值配置加载失败: %v\n", err)
		os.Exit(1)
	}

	if *runs < 1 {
		fmt.Fprintln(os.Stderr, "-runs 必须大于 0")
		os.Exit(1)
	}

	results, err := simulateAll(cfg, *runs, *parallel, *duration, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "模拟失败: %v\n", err)
		os.Exit(1)
	}

	printResults(os.Stdout, results)
}

// simulateAll 并行运行多局模拟，结果按种子顺序返回
func simulateAll(cfg *config.TuningConfig, n, limit int, maxSeconds float64, firstSeed int64) ([]runResult, error) {
	results := make([]runResult, n)

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := 0; i < n; i++ {
		g.Go(func() error {
			res, err := simulate(cfg, firstSeed+int64(i), maxSeconds)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// simulate 运行一局直到玩家死亡或到达时间上限
func simulate(cfg *config.TuningConfig, runSeed int64, maxSeconds float64) (runResult, error) {
	if maxSeconds <= 0 {
		return runResult{}, fmt.Errorf("seed %d: 模拟时间必须大于 0", runSeed)
	}

	session := systems.NewSession(cfg, runSeed, newCirclingBot(*fireInterval, *turnRate))
	maxTicks := int(maxSeconds * config.TicksPerSecond)

	ticks := 0
	for ticks < maxTicks && !session.Over() {
		session.Tick(config.FixedDeltaTime)
		ticks++
	}

	log.Printf("[wavesim] seed=%d finished after %d ticks (over=%v)", runSeed, ticks, session.Over())

	return runResult{
		record: session.Record(),
		ticks:  ticks,
		stats:  session.Pipeline.Stats(),
	}, nil
}

func printResults(w io.Writer, results []runResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "seed\trounds\ttime\tdefeated\twaves\tdestructive\tpositive\tnegative")

	totalRounds := 0
	for _, r := range results {
		idx := r.stats.InterferenceByKind
		fmt.Fprintf(tw, "%d\t%d\t%.1fs\t%d\t%d\t%d\t%d\t%d\n",
			r.record.Seed,
			r.record.RoundsSurvived,
			r.record.Duration,
			r.record.Defeated,
			r.stats.WavesEmitted,
			idx[types.InterferenceDestructive],
			idx[types.InterferencePositive],
			idx[types.InterferenceNegative],
		)
		totalRounds += r.record.RoundsSurvived
	}
	tw.Flush()

	if len(results) > 0 {
		fmt.Fprintf(w, "\nmean rounds survived: %.2f\n", float64(totalRounds)/float64(len(results)))
	}
}
