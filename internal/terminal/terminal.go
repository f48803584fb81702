package terminal

import (
	"unicode/utf8"

	"physics-arena/internal/commands"
	"physics-arena/internal/fonts"
	"physics-arena/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLen       = 200
)

var (
	// Reused every frame when drawing the console to avoid per-frame colour allocations.
	barColor    = rl.NewColor(40, 40, 40, 255)
	lineColor   = rl.NewColor(80, 80, 80, 255)
	historyBg   = rl.NewColor(24, 24, 24, 240)
	historyText = rl.LightGray
)

// Terminal is the console bar at the bottom of the screen, shown and hidden with ESC.
// While open it captures the keyboard; the scene ignores movement keys.
// Lines starting with "cmd " are parsed as subcommand + flags and executed via the registry;
// "help" lists the commands.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	font     rl.Font // zero = raylib default font
}

// New returns a closed console that logs to log and runs commands through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen returns true when the console is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the font used to draw the console. A zero Font keeps raylib's default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Submit handles one entered line as if typed and confirmed with Enter.
func (t *Terminal) Submit(line string) {
	if line == "" {
		return
	}
	t.log.Log(prompt + line)
	if line == "help" {
		for _, h := range t.reg.Help() {
			t.log.Log("  " + commands.Prefix + h)
		}
		return
	}
	args, isCmd := commands.Parse(line)
	if !isCmd {
		t.log.Logf("commands start with %q; type help for the list", commands.Prefix)
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log("error: " + err.Error())
	}
}

// Update handles ESC (toggle), and when open: typing, paste, backspace, enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		t.inputBuf += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// Draw draws the input bar and the latest log lines above it when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := rl.GetScreenWidth()
	barY := rl.GetScreenHeight() - BarHeight

	historyH := min(maxLinesOnScreen*lineHeight, barY)
	historyY := barY - historyH
	if historyH > 0 {
		rl.DrawRectangle(0, int32(historyY), int32(screenW), int32(historyH), historyBg)
	}
	for i, line := range t.log.Tail(maxLinesOnScreen) {
		line = truncate(line, maxLineLen)
		y := historyY + i*lineHeight + padding
		fonts.DrawText(t.font, line, padding, int32(y), fontSize, historyText)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), BarHeight, barColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, lineColor)
	fonts.DrawText(t.font, prompt+t.inputBuf+"|", padding, int32(barY+padding), fontSize, rl.White)
}

// truncate shortens s to at most n bytes, cutting on a rune boundary and marking the cut with "...".
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := max(n-3, 0)
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
