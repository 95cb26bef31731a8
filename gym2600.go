// This file is part of Gym2600.
//
// Gym2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gym2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gym2600.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/jetsetilly/gym2600/ale"
	"github.com/jetsetilly/gym2600/environment"
	"github.com/jetsetilly/gym2600/episodes"
	sdlgui "github.com/jetsetilly/gym2600/gui/sdl"
	"github.com/jetsetilly/gym2600/logger"
	"github.com/jetsetilly/gym2600/modalflag"
	"github.com/jetsetilly/gym2600/paths"
	"github.com/jetsetilly/gym2600/performance"
	"github.com/jetsetilly/gym2600/playmode"
	"github.com/jetsetilly/gym2600/random"
	"github.com/jetsetilly/gym2600/statsview"
	"github.com/jetsetilly/gym2600/version"
)

// SDL requires that window creation and event handling happen on the main
// thread. the environment is driven entirely from the main goroutine so
// locking it to the main thread is sufficient
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "INFO", "PERFORMANCE", "EPISODES")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *showVersion {
		fmt.Println(version.Banner())
		os.Exit(0)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "INFO":
		err = info(md)

	case "PERFORMANCE":
		err = perform(md)

	case "EPISODES":
		err = listEpisodes(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// flags common to every mode that creates an environment
type environmentFlags struct {
	settings *string
	ale      *string
	rle      *bool
	log      *bool
}

func addEnvironmentFlags(md *modalflag.Modes) environmentFlags {
	return environmentFlags{
		settings: md.AddString("settings", "", fmt.Sprintf("settings file (default %s)", paths.ResourcePath(environment.SettingsFile))),
		ale:      md.AddString("ale", ale.DefaultPath, "path to the ALE executable"),
		rle:      md.AddBool("rle", false, "request run-length encoded screens from ALE"),
		log:      md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// create a new environment using the settings in the flags. the rom argument
// overrides the ROM in the settings file if it is not empty
func newEnvironment(md *modalflag.Modes, flags environmentFlags) (*environment.Environment, error) {
	if *flags.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
	logger.Log(logger.Allow, "gym2600", version.Banner())

	settings, err := environment.LoadSettings(*flags.settings)
	if err != nil {
		return nil, err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		if settings.ROM == "" {
			return nil, fmt.Errorf("ROM required for %s mode", md)
		}
	case 1:
		settings.ROM = md.GetArg(0)
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	emu := ale.Emulator{
		Path: *flags.ale,
		RLE:  *flags.rle,
	}

	return environment.NewEnvironment(settings, emu)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	flags := addEnvironmentFlags(md)
	numEpisodes := md.AddInt("episodes", 1, "number of episodes to play (0 to play until interrupted)")
	maxSteps := md.AddInt("maxsteps", 0, "maximum number of steps in an episode (0 for no maximum)")
	display := md.AddBool("display", false, "show visualisation window")
	stepsPerSecond := md.AddInt("sps", 0, "limit number of steps per second (0 for no limit)")
	policy := md.AddString("policy", "RANDOM", "action policy: RANDOM, NOOP")
	record := md.AddBool("record", true, "record episodes in episode database")
	dbPath := md.AddString("db", paths.ResourcePath(episodes.DatabaseFile), "path to episode database")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	env, err := newEnvironment(md, flags)
	if err != nil {
		return err
	}
	defer env.Close()

	var pol playmode.Policy
	switch strings.ToUpper(*policy) {
	case "RANDOM":
		pol = random.NewSeededRandom(int64(env.Settings().Seed))
	case "NOOP":
		pol = playmode.FixedPolicy(0)
	default:
		return fmt.Errorf("unknown policy: %s", *policy)
	}

	opts := playmode.Options{
		Episodes:       *numEpisodes,
		MaxSteps:       *maxSteps,
		Visualise:      *display,
		StepsPerSecond: *stepsPerSecond,
	}

	var db *episodes.Store
	if *record {
		db, err = episodes.Open(*dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		opts.Recorder = db
		opts.RunID, err = db.NewRun(env.Settings().ROM)
		if err != nil {
			return err
		}
	}

	if *display {
		err = env.InitVisualization(sdlgui.NewWindow())
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entries, err := playmode.Run(ctx, os.Stdout, env, pol, opts)
	if err != nil {
		return err
	}

	if db != nil && len(entries) > 1 {
		sum, err := db.Summarise(opts.RunID)
		if err != nil {
			return err
		}
		fmt.Printf("%d episodes, %d steps: mean return %.2f (best %d, worst %d)\n",
			sum.Episodes, sum.Steps, sum.Mean, sum.Best, sum.Worst)
	}

	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	flags := addEnvironmentFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, err := newEnvironment(md, flags)
	if err != nil {
		return err
	}
	defer env.Close()

	nw, nh := env.NativeDims()
	tw, th := env.TargetDims()
	dw, dh := env.DisplayDims()

	fmt.Printf("rom: %s\n", env.Settings().ROM)
	fmt.Printf("native screen: %dx%d\n", nw, nh)
	fmt.Printf("target screen: %dx%d\n", tw, th)
	fmt.Printf("crop area: %v\n", env.CropRect())
	fmt.Printf("display: %dx%d\n", dw, dh)
	fmt.Printf("frame skip: %d\n", env.Settings().FrameSkip)
	fmt.Printf("actions (%d):\n", env.ActionCount())
	for i, a := range env.Actions() {
		fmt.Printf("  %2d %s\n", i, a)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	flags := addEnvironmentFlags(md)
	duration := md.AddString("duration", "5s", "run duration (with an additional 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: comma separated CPU, MEM or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	env, err := newEnvironment(md, flags)
	if err != nil {
		return err
	}
	defer env.Close()

	return performance.Check(os.Stdout, env, prf, *duration)
}

func listEpisodes(md *modalflag.Modes) error {
	md.NewMode()

	dbPath := md.AddString("db", paths.ResourcePath(episodes.DatabaseFile), "path to episode database")
	rom := md.AddString("rom", "", "list best episodes for ROM rather than most recent episodes")
	n := md.AddInt("n", 10, "number of episodes to list")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	db, err := episodes.Open(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	var entries []episodes.Entry
	if *rom != "" {
		entries, err = db.Best(*rom, *n)
	} else {
		entries, err = db.Recent(*n)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("no episodes recorded")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %s\n", e.CreatedAt.Format(time.DateTime), e)
	}

	return nil
}
