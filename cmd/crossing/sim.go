package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/audio"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

var (
	flagTicks  int
	flagKeys   string
	flagRender bool
	flagWidth  int
	flagHeight int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game and print the result",
	Long: `Run the game without a terminal UI, advancing a fixed time step per
tick, and print the final state. Runs with the same --seed and flags are
identical.

Keys are scripted as key codes at tick numbers (1-based):
  32 space, 37 left, 38 up, 39 right, 40 down, 77 M

Examples:
  crossing sim --seed 7
  crossing sim --seed 7 --ticks 1200 --keys 38@10,38@20,37@25
  crossing sim --seed 7 --render --width 100 --height 30`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	addGameFlags(simCmd)
	simCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to run")
	simCmd.Flags().StringVar(&flagKeys, "keys", "", "Scripted keys as code@tick, comma separated")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Frame width for --render")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Frame height for --render")
}

// keyPress is a scripted key code pressed before the given tick.
type keyPress struct {
	tick int
	code int
}

// parseKeyScript parses "code@tick" entries. Presses keep their script
// order within a tick.
func parseKeyScript(script string) ([]keyPress, error) {
	var presses []keyPress
	for _, entry := range strings.Split(script, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		codeStr, tickStr, ok := strings.Cut(entry, "@")
		if !ok {
			return nil, fmt.Errorf("key %q: expected code@tick", entry)
		}
		code, err := strconv.Atoi(codeStr)
		if err != nil {
			return nil, fmt.Errorf("key %q: bad code: %w", entry, err)
		}
		tick, err := strconv.Atoi(tickStr)
		if err != nil {
			return nil, fmt.Errorf("key %q: bad tick: %w", entry, err)
		}
		if tick < 1 {
			return nil, fmt.Errorf("key %q: tick must be at least 1", entry)
		}
		presses = append(presses, keyPress{tick: tick, code: code})
	}
	sort.SliceStable(presses, func(i, j int) bool { return presses[i].tick < presses[j].tick })
	return presses, nil
}

// keysByTick resolves key codes to game keys. Unknown codes are dropped,
// as the game ignores them.
func keysByTick(presses []keyPress, logger *log.Logger) map[int][]crossing.Key {
	out := make(map[int][]crossing.Key)
	for _, p := range presses {
		k, ok := crossing.KeyForCode(p.code)
		if !ok {
			logger.Warn("ignoring unknown key code", "code", p.code, "tick", p.tick)
			continue
		}
		out[p.tick] = append(out[p.tick], k)
	}
	return out
}

// simulate runs the session for ticks steps of dt and returns the final
// state.
func simulate(s *crossing.Session, ticks int, dt time.Duration, keys map[int][]crossing.Key) core.GameState {
	var state core.GameState
	for tick := 1; tick <= ticks; tick++ {
		state = s.StepKeys(keys[tick], dt).State
	}
	return state
}

func runSim(cmd *cobra.Command, _ []string) {
	cfg, err := loadGameConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	if flagFPS <= 0 {
		fail("--fps must be positive, got %d", flagFPS)
	}
	if flagTicks < 0 {
		fail("--ticks must not be negative, got %d", flagTicks)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	presses, err := parseKeyScript(flagKeys)
	if err != nil {
		fail("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := crossing.NewSession(cfg, audio.Silent{}, logger)
	session.Reset(core.RuntimeConfig{ScreenW: flagWidth, ScreenH: flagHeight, TickRate: flagFPS, Seed: seed})

	dt := time.Second / time.Duration(flagFPS)
	state := simulate(session, flagTicks, dt, keysByTick(presses, logger))

	g := session.Game()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed=%d ticks=%d phase=%s score=%d winning=%d muted=%t\n",
		seed, session.Ticks(), g.Phase(), state.Score, g.ScoreWinning, state.Muted)
	fmt.Fprintf(out, "player x=%g y=%g\n", g.Player().X(), g.Player().Y())

	if flagRender {
		screen := core.NewScreen(flagWidth, flagHeight)
		session.Render(screen)
		fmt.Fprintln(out, screen.String())
	}
}
