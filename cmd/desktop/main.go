package main

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"gobf/pkg/compiler"
	"gobf/pkg/grid"
	"gobf/pkg/machine"
	"gobf/pkg/utils"
)

const (
	termCols = 80
	termRows = 25

	// Cell geometry of basicfont.Face7x13.
	cellW    = 7
	cellH    = 13
	baseline = 11
)

var face font.Face = basicfont.Face7x13

// terminal is a fixed-size character grid fed through io.Writer. The machine
// goroutine writes while the draw loop snapshots, so every access goes
// through mu.
type terminal struct {
	mu    sync.Mutex
	cells []byte // termCols*termRows, 0 = empty
	cur   int    // cell index the next byte lands in
}

func newTerminal() *terminal {
	return &terminal{cells: make([]byte, termCols*termRows)}
}

func (t *terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, b := range p {
		t.put(b)
	}
	return len(p), nil
}

func (t *terminal) put(b byte) {
	switch {
	case b == '\n':
		_, y := grid.GetGridCoords(t.cur, termCols)
		t.cur = grid.GetIndex(0, y+1, termCols)
	case b == '\b':
		if t.cur > 0 {
			t.cur--
			t.cells[t.cur] = 0
		}
	case b >= 0x20 && b < 0x7F:
		t.cells[t.cur] = b
		t.cur++
	default:
		return // other control bytes are not displayable
	}
	if t.cur >= len(t.cells) {
		t.scroll()
	}
}

// scroll drops the top row and frees the bottom one.
func (t *terminal) scroll() {
	copy(t.cells, t.cells[termCols:])
	clear(t.cells[len(t.cells)-termCols:])
	t.cur -= termCols
}

// snapshot copies the grid and cursor for rendering.
func (t *terminal) snapshot() ([]byte, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]byte, len(t.cells))
	copy(out, t.cells)
	return out, t.cur
}

// keyboard queues typed bytes for the machine. Read blocks until a key
// arrives, which is what parks the machine goroutine on ','.
type keyboard struct {
	keys chan byte
}

func newKeyboard() *keyboard {
	return &keyboard{keys: make(chan byte, 64)}
}

// push queues a key. Keys beyond the buffer are dropped, like a full
// hardware keyboard buffer.
func (k *keyboard) push(b byte) {
	select {
	case k.keys <- b:
	default:
	}
}

func (k *keyboard) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b, ok := <-k.keys
	if !ok {
		return 0, io.EOF
	}
	p[0] = b
	return 1, nil
}

// close ends the input stream; a blocked Read returns io.EOF.
func (k *keyboard) close() { close(k.keys) }

type Game struct {
	term *terminal
	keys *keyboard

	done   chan struct{} // closed when the machine goroutine returns
	runErr error         // written before done closes
}

// start runs m against the game's keyboard and terminal in its own
// goroutine. The machine free-runs and parks itself on input.
func (g *Game) start(m *machine.Machine) {
	m.Input = g.keys
	m.Output = g.term
	go func() {
		g.runErr = m.Run()
		close(g.done)
	}()
}

func (g *Game) Update() error {
	for _, r := range ebiten.AppendInputChars(nil) {
		if r <= 0xFF {
			g.keys.push(byte(r))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.keys.push(10) // ASCII newline
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.keys.push(8) // ASCII backspace
	}
	return nil
}

// status describes the machine for the bottom line of the window.
func (g *Game) status() string {
	select {
	case <-g.done:
		if g.runErr != nil {
			return fmt.Sprintf("fault: %v", g.runErr)
		}
		return "halted"
	default:
		return "running"
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	cells, cur := g.term.snapshot()
	for i, c := range cells {
		if c == 0 {
			continue
		}
		x, y := grid.GetGridCoords(i, termCols)
		text.Draw(screen, string(rune(c)), face, x*cellW, y*cellH+baseline, color.White)
	}

	st := g.status()
	if st == "running" {
		// Block cursor while the program can still write.
		x, y := grid.GetGridCoords(cur, termCols)
		text.Draw(screen, "_", face, x*cellW, y*cellH+baseline, color.White)
	}
	text.Draw(screen, st, face, 0, termRows*cellH+baseline, color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Character grid plus one status line.
	return termCols * cellW, (termRows + 1) * cellH
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: desktop <program.bf> [--dump]")
	}
	filename := os.Args[1]
	dump := false
	for _, arg := range os.Args[2:] {
		dump = arg == "--dump"
	}

	source, err := utils.ReadSource(filename)
	if err != nil {
		log.Fatalf("Failed to read source file: %v", err)
	}

	prog, err := compiler.Compile(source)
	if err != nil {
		log.Fatalf("Compilation failed: %v", err)
	}
	if dump {
		fmt.Print(compiler.Listing(prog))
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(2*termCols*cellW, 2*(termRows+1)*cellH)
	ebiten.SetWindowTitle("gobf - " + filename)

	game := &Game{
		term: newTerminal(),
		keys: newKeyboard(),
		done: make(chan struct{}),
	}
	game.start(machine.New(prog))

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
