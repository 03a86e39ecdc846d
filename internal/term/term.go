// Package term is a terminal preview driver: it runs a session inside a gocui
// view and paints the simulation-resolution buffer with 256-color escapes.
package term

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"lifeviz/internal/session"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const (
	gridView     = "grid"
	statusView   = "status"
	statusHeight = 5

	frameInterval = time.Second / 30
)

var keyCodes = map[string]gocui.Key{
	"Space": gocui.KeySpace,
	"Up":    gocui.KeyArrowUp,
	"Down":  gocui.KeyArrowDown,
}

// UI runs a session in the terminal until the user quits.
type UI struct {
	g       *gocui.Gui
	session *session.Session
	au      aurora.Aurora
	stride  int
	done    chan struct{}
	stop    sync.Once
}

// New creates the terminal UI and binds the shared key map.
func New(s *session.Session) (*UI, error) {
	g, err := gocui.NewGui(gocui.Output256)
	if err != nil {
		return nil, errors.Wrap(err, "term: create gui")
	}
	g.Mouse = true
	u := &UI{g: g, session: s, au: aurora.NewAurora(true), done: make(chan struct{})}
	g.SetManagerFunc(u.layout)
	if err := u.bindKeys(); err != nil {
		g.Close()
		return nil, err
	}
	size := s.Sim().Size()
	s.SetCursor(size.W/2, size.H/2, true)
	return u, nil
}

// Run blocks in the gocui main loop. Frames are driven by a ticker that
// hands each iteration to the main loop through Gui.Update, so the session
// is only touched from one goroutine.
func (u *UI) Run() error {
	defer u.g.Close()
	defer u.stopTicker()
	go u.tick(frameInterval)
	if err := u.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "term: main loop")
	}
	return nil
}

func (u *UI) tick(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-u.done:
			return
		case <-t.C:
			u.g.Update(u.frame)
		}
	}
}

func (u *UI) bindKeys() error {
	for _, b := range session.Bindings {
		cmd := b.Command
		handler := func(*gocui.Gui, *gocui.View) error {
			u.session.Do(cmd)
			return nil
		}
		var keys []interface{}
		if k, ok := keyCodes[b.Key]; ok {
			keys = append(keys, k)
		} else {
			keys = append(keys, rune(strings.ToLower(b.Key)[0]), rune(b.Key[0]))
		}
		for _, k := range keys {
			if err := u.g.SetKeybinding("", k, gocui.ModNone, handler); err != nil {
				return errors.Wrapf(err, "term: bind %s", b.Key)
			}
		}
	}
	for _, k := range []interface{}{gocui.KeyCtrlC, gocui.KeyEsc, 'q', 'Q'} {
		if err := u.g.SetKeybinding("", k, gocui.ModNone, u.quit); err != nil {
			return errors.Wrap(err, "term: bind quit")
		}
	}
	if err := u.g.SetKeybinding(gridView, gocui.MouseLeft, gocui.ModNone, u.click); err != nil {
		return errors.Wrap(err, "term: bind mouse")
	}
	return nil
}

func (u *UI) quit(*gocui.Gui, *gocui.View) error {
	return gocui.ErrQuit
}

// stopTicker ends the frame goroutine. Safe to call more than once.
func (u *UI) stopTicker() {
	u.stop.Do(func() { close(u.done) })
}

// click moves the stamp cursor to the cell under the pointer.
func (u *UI) click(_ *gocui.Gui, v *gocui.View) error {
	if u.stride <= 0 {
		return nil
	}
	cx, cy := v.Cursor()
	size := u.session.Sim().Size()
	x, y := (cx/2)*u.stride, cy*u.stride
	u.session.SetCursor(x, y, x < size.W && y < size.H)
	return nil
}

func (u *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if v, err := g.SetView(gridView, 0, 0, maxX-1, maxY-statusHeight-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "lifeviz"
	}
	if v, err := g.SetView(statusView, 0, maxY-statusHeight, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "status  (q quits, click sets the stamp cursor)"
	}
	return nil
}

func (u *UI) frame(g *gocui.Gui) error {
	fb := u.session.Frame()

	v, err := g.View(gridView)
	if err != nil {
		return err
	}
	cols, rows := v.Size()
	u.stride = Downsample(fb.W, fb.H, cols, rows)
	v.Clear()
	fmt.Fprint(v, Cells(u.au, fb, u.stride))

	sv, err := g.View(statusView)
	if err != nil {
		return err
	}
	sv.Clear()
	for _, line := range u.session.Snapshot().Lines() {
		fmt.Fprintln(sv, line)
	}
	return nil
}
