package gui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/polyterm/pkg/mino"
)

const (
	DefaultMaxOrder = 7
	clockInterval   = 200 * time.Millisecond
)

// ErrBusy is returned when an order change is requested while a set is
// still being generated.
var ErrBusy = errors.New("gui: generation in progress")

// ExportFunc writes a piece set somewhere and returns where it went.
type ExportFunc func(order int, pieces []mino.Piece) (string, error)

// Options configures a Browser.
type Options struct {
	Theme    Theme
	MaxOrder int
	Scale    int
	Title    string
	Export   ExportFunc
	Copy     func(string) error
}

// Browser is the interactive piece viewer: one piece at a time, with keys to
// step through the set and to change the order.
type Browser struct {
	App    *tview.Application
	Layout *tview.Grid
	Board  *tview.TextView
	Status *tview.TextView
	Help   *tview.TextView

	Set   *mino.PieceSet
	Clock *Clock

	opts    Options
	busy    int32
	message string
	cancel  context.CancelFunc
	sync.Mutex
}

func NewBrowser(set *mino.PieceSet, opts Options) *Browser {
	if opts.MaxOrder < 1 {
		opts.MaxOrder = DefaultMaxOrder
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.Title == "" {
		opts.Title = "polyterm"
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}

	app := tview.NewApplication()

	board := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	board.SetBorder(true).
		SetBorderColor(opts.Theme.Border).
		SetTitle(" " + opts.Title + " ").
		SetTitleColor(opts.Theme.Title).
		SetBackgroundColor(opts.Theme.Background)

	status := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	status.SetBackgroundColor(opts.Theme.Background)

	help := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetTextColor(opts.Theme.Help).
		SetText(HelpText())
	help.SetBackgroundColor(opts.Theme.Background)

	layout := tview.NewGrid().
		SetRows(-1, 1, 1).
		SetColumns(-1).
		AddItem(board, 0, 0, 1, 1, 0, 0, true).
		AddItem(status, 1, 0, 1, 1, 0, 0, false).
		AddItem(help, 2, 0, 1, 1, 0, 0, false)

	b := &Browser{
		App:    app,
		Layout: layout,
		Board:  board,
		Status: status,
		Help:   help,
		Set:    set,
		Clock:  NewClock(),
		opts:   opts,
	}

	app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		a := ActionFor(ev)
		if a == ActionNone {
			return ev
		}

		if err := b.Handle(a); err != nil {
			b.setMessage(err.Error())
		}
		b.Render()

		return nil
	})

	return b
}

// Run generates the set for order and blocks until the user quits.
func (b *Browser) Run(order int) error {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	defer cancel()

	go b.Clock.Run(ctx, clockInterval, func() {
		b.App.QueueUpdateDraw(b.renderStatus)
	})

	if err := b.regenerate(order); err != nil {
		return err
	}

	b.Render()

	return b.App.SetRoot(b.Layout, true).Run()
}

// Handle performs a. Order changes are started on a separate goroutine and
// drawn when they finish.
func (b *Browser) Handle(a Action) error {
	switch a {
	case ActionNext:
		b.setMessage("")
		return b.Set.Advance(mino.Next)

	case ActionPrevious:
		b.setMessage("")
		return b.Set.Advance(mino.Previous)

	case ActionOrderUp:
		return b.regenerate(b.clampOrder(b.Set.Order() + 1))

	case ActionOrderDown:
		return b.regenerate(b.clampOrder(b.Set.Order() - 1))

	case ActionCopy:
		p, err := b.Set.Current()
		if err != nil {
			return err
		}
		if err = b.opts.Copy(p.String()); err != nil {
			return fmt.Errorf("copy: %w", err)
		}
		b.setMessage("Copied " + p.String())

	case ActionExport:
		if b.opts.Export == nil {
			return errors.New("export is not configured")
		}
		order, pieces := b.Set.Snapshot()
		dest, err := b.opts.Export(order, pieces)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		b.setMessage("Exported to " + dest)

	case ActionExit:
		if b.cancel != nil {
			b.cancel()
		}
		b.App.Stop()
	}

	return nil
}

func (b *Browser) clampOrder(order int) int {
	if order < 1 {
		return 1
	}
	if order > b.opts.MaxOrder {
		return b.opts.MaxOrder
	}
	return order
}

// regenerate rebuilds the set off the UI goroutine. Only one pass runs at a
// time.
func (b *Browser) regenerate(order int) error {
	if !atomic.CompareAndSwapInt32(&b.busy, 0, 1) {
		return ErrBusy
	}

	b.Clock.Start()
	b.setMessage(fmt.Sprintf("Generating order %d...", order))

	go func() {
		err := b.generate(order)

		b.App.QueueUpdateDraw(func() {
			if err != nil {
				b.setMessage(err.Error())
			}
			b.Render()
		})
	}()

	return nil
}

func (b *Browser) generate(order int) error {
	defer atomic.StoreInt32(&b.busy, 0)
	defer b.Clock.Stop()

	if err := b.Set.Generate(order); err != nil {
		log.Printf("Failed to generate order %d: %s", order, err)
		return err
	}

	b.setMessage("")

	return nil
}

// Busy reports whether a generation pass is running.
func (b *Browser) Busy() bool {
	return atomic.LoadInt32(&b.busy) == 1
}

// Render redraws the board and the status line. It must be called from the
// UI goroutine once the application is running.
func (b *Browser) Render() {
	if p, err := b.Set.Current(); err == nil {
		b.Board.SetText(RenderPiece(p, b.opts.Theme, b.opts.Scale))
	} else {
		b.Board.SetText("")
	}

	b.renderStatus()
}

func (b *Browser) renderStatus() {
	var name string
	if p, err := b.Set.Current(); err == nil {
		name = mino.Name(p)
	}

	text := StatusText(b.Set.Index(), b.Set.Count(), b.Set.Order(), name, b.Clock.String(), b.opts.Theme)
	if msg := b.Message(); msg != "" {
		text += " " + colorTag(b.opts.Theme.Msg) + tview.Escape(msg) + "[-]"
	}

	b.Status.SetText(text)
}

func (b *Browser) setMessage(msg string) {
	b.Lock()
	defer b.Unlock()

	b.message = msg
}

// Message returns the last message shown in the status line.
func (b *Browser) Message() string {
	b.Lock()
	defer b.Unlock()

	return b.message
}
