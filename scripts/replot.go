// Replot watches an equation file and redraws it every time it is saved,
// showing the result in a window and optionally writing it out.
//
//	replot -out rose.png rose.yaml
//
// Keys: r redraws, q or escape quits.
package main

import (
	"flag"
	"fmt"
	"hash/crc64"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/scottkirkwood/cartesian"
	"github.com/scottkirkwood/cartesian/eqfile"
	"github.com/scottkirkwood/cartesian/plane"
)

var (
	outFlag    = flag.String("out", "", "Also save every redraw here (.png, .tiff or .bmp)")
	widthFlag  = flag.Int("width", 800, "Width in pixels")
	heightFlag = flag.Int("height", 600, "Height in pixels")
	unitFlag   = flag.Float64("unit", 50, "Pixels per unit")
)

// redrawn is sent to the window when a new image is ready.
type redrawn struct {
	img image.Image
}

// replotter is shared by the watcher goroutine and the window loop; mu
// serializes replot so crc and the -out file have one writer at a time.
type replotter struct {
	fname string
	cfg   plane.Config

	mu  sync.Mutex
	crc uint64
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Printf("Usage: replot [flags] equation.yaml\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := plane.DefaultConfig()
	cfg.Width, cfg.Height = float64(*widthFlag), float64(*heightFlag)
	cfg.GridUnit = *unitFlag
	rp := &replotter{fname: filepath.Clean(flag.Arg(0)), cfg: cfg}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Printf("Failed to create watcher: %v\n", err)
		return
	}
	defer watcher.Close()

	// Editors often replace the file rather than write it, so watch the folder.
	folder := filepath.Dir(rp.fname)
	if err := watcher.Add(folder); err != nil {
		fmt.Printf("Problem adding folder watcher: %v\n", err)
		return
	}
	fmt.Printf("Monitoring %q\n", rp.fname)

	driver.Main(func(s screen.Screen) {
		rp.show(s, watcher)
	})
}

// render loads the equation and draws it. A broken equation file is
// reported and gives a nil image.
func (rp *replotter) render() image.Image {
	e, mode, err := eqfile.LoadFile(rp.fname)
	if err != nil {
		fmt.Printf("Unable to load: %v\n", err)
		return nil
	}
	p, err := plane.New(rp.cfg)
	if err != nil {
		fmt.Printf("Unable to lay out the plane: %v\n", err)
		return nil
	}
	ctx := cartesian.NewRasterContext(int(rp.cfg.Width), int(rp.cfg.Height))
	if err := p.Draw(ctx, plane.Plot{Equation: e, Mode: mode}); err != nil {
		fmt.Printf("Plot incomplete: %v\n", err)
	}
	if *outFlag != "" {
		if err := cartesian.SafeWrite(ctx, *outFlag); err != nil {
			fmt.Printf("Unable write image: %v\n", err)
		}
	}
	return ctx.Image()
}

// changed reports whether the file's contents differ from the last time it
// was looked at.
func (rp *replotter) changed() bool {
	bytes, err := os.ReadFile(rp.fname)
	if err != nil {
		fmt.Printf("Readfile error %q: %v\n", rp.fname, err)
		return false
	}
	sum := crc64.Checksum(bytes, crc64.MakeTable(crc64.ECMA))
	if sum == rp.crc {
		return false
	}
	rp.crc = sum
	return true
}

// replot renders the file if it changed since the last look, or always when
// force is set. It returns nil when there is nothing new to show.
func (rp *replotter) replot(force bool) image.Image {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	if !rp.changed() && !force {
		return nil
	}
	return rp.render()
}

func (rp *replotter) watchForEvents(watcher *fsnotify.Watcher, w screen.Window) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != rp.fname {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if img := rp.replot(false); img != nil {
				fmt.Printf("Replotted %s\n", rp.fname)
				w.Send(redrawn{img})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Println("ERROR", err)
		}
	}
}

func (rp *replotter) show(s screen.Screen, watcher *fsnotify.Watcher) {
	winSize := image.Point{int(rp.cfg.Width), int(rp.cfg.Height)}
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  winSize.X,
		Height: winSize.Y,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer w.Release()

	b, err := s.NewBuffer(winSize)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer func() { b.Release() }()

	img := rp.replot(true)
	go rp.watchForEvents(watcher, w)

	var sz size.Event
	for {
		switch e := w.NextEvent().(type) {
		case key.Event:
			if e.Direction != key.DirPress {
				break
			}
			switch e.Code {
			case key.CodeEscape, key.CodeQ:
				return
			case key.CodeR:
				if next := rp.replot(true); next != nil {
					img = next
					w.Send(paint.Event{})
				}
			}

		case redrawn:
			img = e.img
			w.Send(paint.Event{})

		case paint.Event:
			w.Fill(sz.Bounds(), color.Black, draw.Src)
			if img == nil {
				w.Publish()
				break
			}
			if img.Bounds().Size() != b.Size() {
				b.Release()
				if b, err = s.NewBuffer(img.Bounds().Size()); err != nil {
					fmt.Println(err)
					return
				}
			}
			draw.Draw(b.RGBA(), b.Bounds(), img, img.Bounds().Min, draw.Src)
			w.Upload(cartesian.CenterOffset(img.Bounds(), sz.Size()), b, b.Bounds())
			w.Publish()

		case size.Event:
			sz = e

		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}

		case error:
			fmt.Printf("Screen error: %v\n", e)
			return
		}
	}
}
