// This file is part of Orbital.
//
// Orbital is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Orbital is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Orbital.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/jetsetilly/orbital/backend"
	"github.com/jetsetilly/orbital/backend/dispatch"
	"github.com/jetsetilly/orbital/backend/workerpool"
	"github.com/jetsetilly/orbital/curated"
	"github.com/jetsetilly/orbital/device"
	_ "github.com/jetsetilly/orbital/device/opencl"
	"github.com/jetsetilly/orbital/display"
	"github.com/jetsetilly/orbital/easyterm"
	"github.com/jetsetilly/orbital/logger"
	"github.com/jetsetilly/orbital/metrics"
	"github.com/jetsetilly/orbital/modalflag"
	"github.com/jetsetilly/orbital/orchestrator"
	"github.com/jetsetilly/orbital/partition"
	"github.com/jetsetilly/orbital/paths"
	"github.com/jetsetilly/orbital/performance"
	"github.com/jetsetilly/orbital/performance/limiter"
	"github.com/jetsetilly/orbital/prefs"
	"github.com/jetsetilly/orbital/random"
	"github.com/jetsetilly/orbital/specification"
	"github.com/jetsetilly/orbital/statsview"
	"github.com/jetsetilly/orbital/store"
	"github.com/jetsetilly/orbital/validator"
)

// exit codes used by the launch() function. the exit codes for failures
// during backend setup are defined in the curated package.
const (
	exitParse = 10
	exitMode  = 20
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// stop the main thread's interrupt signal handling. used when the mode
	// handles interrupts itself.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called from the main thread.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// how often the gui is serviced by the main thread
const serviceRate = 10 * time.Millisecond

func init() {
	// SDL calls must be made from the main thread
	runtime.LockOSThread()
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	service := time.NewTicker(serviceRate)
	defer service.Stop()

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		case <-service.C:
			if gui != nil {
				gui.Service()
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DISPLAY", "PERFORMANCE", "DEVICES")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: exitParse}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "DISPLAY":
		err = show(md, sync)

	case "PERFORMANCE":
		err = perform(md, sync)

	case "DEVICES":
		err = devices(md)
	}

	if err != nil {
		sync.state <- stateRequest{req: reqQuit, args: failure(md, err)}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// argumentError is a problem with the command line of a mode.
type argumentError struct {
	error
}

func (e argumentError) Unwrap() error {
	return e.error
}

// parse the command line for the current mode. returns false if the mode
// should not continue, with an error if the command line was bad.
func parse(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, argumentError{err}
	}
	return true, nil
}

// failure prints the error and returns the exit code for it.
func failure(md *modalflag.Modes, err error) int {
	// the log of a failed kernel build is printed before the error
	var be device.BuildError
	if errors.As(err, &be) {
		fmt.Println(be.Log)
	}

	fmt.Printf("* error in %s mode: %s\n", md, err)

	if errors.As(err, &argumentError{}) {
		return exitParse
	}
	if code := curated.ExitCode(err); code != curated.ExitUnknown {
		return code
	}
	return exitMode
}

// flags shared by every mode that runs a simulation.
type simFlags struct {
	seed    *int64
	backend *string
	driver  *string
	workers *int
	tile    *string
	pause   *bool
	log     *bool
	prefs   *string
	metrics *string
	memviz  *string
	stats   *bool
}

func addSimFlags(md *modalflag.Modes) *simFlags {
	f := &simFlags{}
	f.seed = md.AddInt64("seed", 0, "random seed for the satellite population. zero seeds with the current time")
	f.backend = md.AddString("backend", "", fmt.Sprintf("parallel backend: %v (default from preferences)", backend.List))
	f.driver = md.AddString("driver", device.SoftwareDriver, fmt.Sprintf("device driver for the dispatch backend: %v", device.Drivers()))
	f.workers = md.AddInt("workers", -1, "number of workers for the workerpool backend. zero is one per CPU (default from preferences)")
	f.tile = md.AddString("tile", "", "work-group size for the dispatch backend. eg. 16x16 (default from preferences)")
	f.pause = md.AddBool("pause", false, "wait for a key press after a pixel mismatch")
	f.log = md.AddBool("log", false, "echo debugging log to stdout")
	f.prefs = md.AddString("prefs", "", "preferences for this run only. eg. \"engine.workers::8; validator.tolerance::0.1\"")
	f.metrics = md.AddString("metrics", "", "serve prometheus metrics on address. eg. localhost:9100")
	f.memviz = md.AddString("memviz", "", "write a graph of the initial satellite population to file")
	if statsview.Available() {
		f.stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return f
}

// simulation is the result of applying the shared flags.
type simulation struct {
	orc *orchestrator.Orchestrator

	seed      int64
	seedGiven bool

	// called in reverse order by end()
	cleanup []func()
}

// newSimulation prepares a simulation from the shared flags. the per-frame
// output of the simulation is written to output.
func newSimulation(md *modalflag.Modes, f *simFlags, output io.Writer) (*simulation, error) {
	sim := &simulation{}

	if *f.log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
		defer func() {
			if s := prefs.PopCommandLineStack(); s != "" {
				logger.Logf(logger.Allow, "orbital", "unused preferences: %s", s)
			}
		}()
	}

	pth, err := paths.ResourcePath("", "preferences")
	if err != nil {
		return nil, err
	}
	p, err := orchestrator.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	// the seed can be given as an argument as well as with the seed flag
	sim.seed = *f.seed
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		sim.seed, err = strconv.ParseInt(md.GetArg(0), 10, 64)
		if err != nil {
			return nil, argumentError{fmt.Errorf("seed must be a number (%s)", md.GetArg(0))}
		}
	default:
		return nil, argumentError{fmt.Errorf("too many arguments for %s mode", md)}
	}
	sim.seedGiven = sim.seed != 0
	if sim.seedGiven {
		fmt.Fprintf(md.Output, "Using seed: %d\n", sim.seed)
	}

	spec := specification.Default()
	spec.Tolerance = float32(p.Tolerance.Get().(float64))

	st, err := store.NewStore(spec)
	if err != nil {
		return nil, err
	}

	rnd := random.NewRandom(sim.seed)
	st.Initialise(rnd)
	logger.Logf(logger.Allow, "orbital", "seed %d", rnd.Seed())

	if *f.memviz != "" {
		mf, err := os.Create(*f.memviz)
		if err != nil {
			return nil, err
		}
		st.Visualise(mf)
		if err := mf.Close(); err != nil {
			return nil, err
		}
	}

	be, err := selectBackend(f, p)
	if err != nil {
		return nil, err
	}

	val := validator.NewValidator(output, spec.Tolerance)
	if *f.pause || p.Pause.Get().(bool) {
		term := &easyterm.Terminal{}
		if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
			logger.Logf(logger.Allow, "orbital", "pause not available: %v", err)
		} else {
			val.SetPause(term)
		}
	}

	sim.orc, err = orchestrator.NewOrchestrator(st, be, val, output)
	if err != nil {
		return nil, err
	}

	if *f.metrics != "" {
		m := metrics.NewMetrics()
		sim.orc.SetMetrics(m)
		srv := metrics.NewServer(*f.metrics, m)
		srv.Start()
		sim.cleanup = append(sim.cleanup, func() {
			if err := srv.Stop(); err != nil {
				logger.Log(logger.Allow, "metrics", err)
			}
		})
	}

	if f.stats != nil && *f.stats {
		sim.cleanup = append(sim.cleanup, statsview.Launch(md.Output))
	}

	return sim, nil
}

func selectBackend(f *simFlags, p *orchestrator.Preferences) (backend.Backend, error) {
	name := *f.backend
	if name == "" {
		name = p.Backend.String()
	}

	switch name {
	case backend.WorkerPool:
		workers := *f.workers
		if workers < 0 {
			workers = p.Workers.Get().(int)
		}
		return workerpool.NewPool(workers), nil

	case backend.Dispatch:
		tile := p.TileSize()
		if *f.tile != "" {
			var err error
			tile, err = partition.ParseTile(*f.tile)
			if err != nil {
				return nil, argumentError{err}
			}
		}
		return dispatch.NewDispatch(*f.driver, tile), nil
	}

	return nil, fmt.Errorf("unknown backend (%s)", name)
}

// end the simulation. the seed is printed if one was given so that the run
// can be repeated.
func (sim *simulation) end(output io.Writer) error {
	err := sim.orc.End()

	for i := len(sim.cleanup) - 1; i >= 0; i-- {
		sim.cleanup[i]()
	}

	if sim.seedGiven {
		fmt.Fprintf(output, "Used seed: %d\n", sim.seed)
	}

	return err
}

// context that is cancelled on an interrupt signal. the main thread stops
// handling the interrupt signal.
func interruptContext(sync *mainSync) (context.Context, context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	sync.state <- stateRequest{req: reqNoIntSig}
	return ctx, cancel
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	frames := md.AddInt("frames", 0, "number of frames to run. zero runs until interrupted")
	f := addSimFlags(md)

	if ok, err := parse(md); !ok {
		return err
	}

	sim, err := newSimulation(md, f, md.Output)
	if err != nil {
		return err
	}

	ctx, cancel := interruptContext(sync)
	defer cancel()

	err = sim.orc.Run(ctx, *frames, nil)
	return errors.Join(err, sim.end(md.Output))
}

// sentinel error used to end a display run when the window is closed.
var errWindowClosed = errors.New("window closed")

func show(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	frames := md.AddInt("frames", 0, "number of frames to run. zero runs until the window is closed")
	scale := md.AddFloat64("scale", 0.75, "window scaling")
	fps := md.AddInt("fps", 0, "maximum frames per second. zero is unlimited")
	f := addSimFlags(md)

	if ok, err := parse(md); !ok {
		return err
	}

	sim, err := newSimulation(md, f, md.Output)
	if err != nil {
		return err
	}

	spec := sim.orc.Store().Spec

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return display.NewDisplay(spec.Width, spec.Height, float32(*scale))
	}

	// wait for creator result
	var disp *display.Display
	select {
	case g := <-sync.creation:
		disp = g.(*display.Display)
	case err := <-sync.creationError:
		return errors.Join(err, sim.end(md.Output))
	}

	ctx, cancel := interruptContext(sync)
	defer cancel()

	lim := limiter.NewLimiter(*fps)
	defer lim.Stop()

	err = sim.orc.Run(ctx, *frames, func(_ orchestrator.Timing) error {
		if disp.Quit() {
			return errWindowClosed
		}
		if err := disp.SetPixels(sim.orc.Store().Pixels); err != nil {
			return err
		}
		return lim.Wait(ctx)
	})
	if errors.Is(err, errWindowClosed) || errors.Is(err, context.Canceled) {
		err = nil
	}

	return errors.Join(err, sim.end(md.Output))
}

func perform(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	duration := md.AddDuration("duration", 10*time.Second, "run duration")
	lead := md.AddInt("lead", specification.Default().ValidatedFrames, "number of frames to run before measurement begins")
	profile := md.AddString("profile", "none", "run performance check with profiling: cpu, mem, trace, all (comma separated)")
	f := addSimFlags(md)

	if ok, err := parse(md); !ok {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return argumentError{err}
	}

	sim, err := newSimulation(md, f, io.Discard)
	if err != nil {
		return err
	}

	ctx, cancel := interruptContext(sync)
	defer cancel()

	_, err = performance.Check(ctx, md.Output, prf, sim.orc, *lead, *duration)
	return errors.Join(err, sim.end(md.Output))
}

func devices(md *modalflag.Modes) error {
	md.NewMode()

	if ok, err := parse(md); !ok {
		return err
	}

	table := tablewriter.NewWriter(md.Output)
	if err := table.Append([]string{"driver", "platform", "device", "class", "host shared"}); err != nil {
		return err
	}

	for _, name := range device.Drivers() {
		drv, err := device.Lookup(name)
		if err != nil {
			return err
		}

		platforms, err := drv.Platforms()
		if err != nil {
			logger.Logf(logger.Allow, "devices", "%s: %v", name, err)
			continue // for loop
		}

		for _, plt := range platforms {
			for _, class := range []device.Class{device.CPU, device.Accelerator} {
				devs, err := plt.Devices(class)
				if err != nil {
					logger.Logf(logger.Allow, "devices", "%s: %v", plt.Name(), err)
					continue // for loop
				}
				for _, dev := range devs {
					err := table.Append([]string{name, plt.Name(), dev.Name(), dev.Class().String(), strconv.FormatBool(dev.HostShared())})
					if err != nil {
						return err
					}
				}
			}
		}
	}

	return table.Render()
}
