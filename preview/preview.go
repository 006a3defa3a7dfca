// Package preview shows rendered blocks in a full-screen terminal view.
package preview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wthr/frame"
)

// Show opens the terminal screen, displays lines until the user quits, and restores the terminal
func Show(lines []string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	Run(screen, lines)
	return nil
}

// Run draws lines on an initialized screen and redraws on resize
// Returns on q, Esc, Ctrl-C or when the screen stops delivering events
func Run(screen tcell.Screen, lines []string) {
	Draw(screen, lines)
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
			Draw(screen, lines)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return
			}
		}
	}
}

// Draw renders one frame of lines from the top-left corner
// Columns advance by frame.RuneWidth so borders land where a printed line puts them
func Draw(screen tcell.Screen, lines []string) {
	screen.Clear()
	style := tcell.StyleDefault

	for y, line := range lines {
		x := 0
		lastX := -1
		var mainc rune
		var combc []rune

		for _, r := range line {
			w := frame.RuneWidth(r)
			if w == 0 {
				// Combining mark joins the previous cell
				if lastX >= 0 {
					combc = append(combc, r)
					screen.SetContent(lastX, y, mainc, combc, style)
				}
				continue
			}
			mainc, combc, lastX = r, nil, x
			screen.SetContent(x, y, r, nil, style)
			x += w
		}
	}
	screen.Show()
}
