package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type footerState struct {
	Mode     string
	FileName string

	Row       int
	TotalRows int

	StatusMessage string
	Legend        string
}

type footerStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func defaultFooterStyles() footerStyles {
	return footerStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

// renderFooter draws the two footer lines: mode + document + position, then
// the status message and the key legend.
func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Mode == "" {
		st.Mode = "VIEW"
	}
	if st.Row < 0 {
		st.Row = 0
	}
	if st.TotalRows < 0 {
		st.TotalRows = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st footerState, styles footerStyles) string {
	rightPlain := fmt.Sprintf(" Row %d/%d ", st.Row, st.TotalRows)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runeWidth(rightPlain)

	leftW := max(0, width-rightW)
	modeColW := min(runeWidth(st.Mode)+2, leftW)
	fileColW := max(0, leftW-modeColW-1)

	left := renderModeSegment(modeColW, st, styles)
	if fileColW > 0 {
		left += " " + renderFileSegment(fileColW, st, styles)
	}
	leftWActual := modeColW + fileColW
	if fileColW > 0 {
		leftWActual++
	}
	if leftWActual < leftW {
		left += strings.Repeat(" ", leftW-leftWActual)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st footerState, styles footerStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := runeWidth(legendPlain)

	leftW := max(0, width-legendW)
	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st footerState, styles footerStyles) string {
	if colW <= 0 {
		return ""
	}
	pillPlain := truncatePlain(" "+st.Mode+" ", colW)
	pad := strings.Repeat(" ", colW-runeWidth(pillPlain))

	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

func renderFileSegment(colW int, st footerState, styles footerStyles) string {
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no document)"
	}
	filePlain := truncatePlain("▸ "+name, colW)
	pad := strings.Repeat(" ", colW-runeWidth(filePlain))
	return applyFG(filePlain, styles.FileNameFG, styles.TextFG) + pad
}

func applyBar(s string, bg, fg lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(fg) + s + "\x1b[0m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return "\x1b[49m"
		}
		return "\x1b[39m"
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, _ := strconv.ParseInt(s[1:3], 16, 0)
		g, _ := strconv.ParseInt(s[3:5], 16, 0)
		b, _ := strconv.ParseInt(s[5:7], 16, 0)
		code := 38
		if isBg {
			code = 48
		}
		return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", code, r, g, b)
	}
	return ""
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runeWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w])
}

func runeWidth(s string) int {
	return len([]rune(s))
}
