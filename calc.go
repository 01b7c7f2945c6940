// Command calc is an interactive keypad calculator. Each input line is a
// sequence of key presses fed one at a time through the editor, so editing
// invariants (one decimal point per operand, leading-zero suppression,
// reversible sign toggling) hold exactly as they would on a physical keypad.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/emtaylor1993/Simple-Calculator/editor"
	"github.com/emtaylor1993/Simple-Calculator/expr"
	"github.com/emtaylor1993/Simple-Calculator/store"
)

const themeKey = "theme"

func main() {
	log.SetFlags(0)
	log.SetPrefix("calc: ")

	var (
		oneshot   string
		statePath string
	)
	flag.StringVar(&oneshot, "e", "", "evaluate a single expression and exit")
	flag.StringVar(&statePath, "state", defaultStatePath(), `state file for history and memory ("" disables persistence)`)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
	}

	if oneshot != "" {
		r, err := expr.Evaluate(oneshot)
		if err != nil {
			fmt.Println(r)
			os.Exit(1)
		}
		fmt.Println(r)
		return
	}

	var st store.Store
	if statePath != "" {
		fs, err := store.Open(statePath)
		if err != nil {
			log.Printf("ignoring state file: %v", err)
		} else {
			st = fs
		}
	}

	ed := editor.New(editor.WithStore(st))
	repl(ed, st)
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".calc.json")
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: calc [-e expression] [-state file]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

// repl runs the interactive loop. Lines are split into fields; each field is
// either a named key or a run of single-rune keys.
func repl(ed *editor.Editor, st store.Store) {
	theme := loadTheme(st)
	rl, err := readline.New(prompt(theme))
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return
			}
			log.Fatal(err)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			return
		case "history":
			for _, h := range ed.History() {
				fmt.Println(h.Expression, "=", h.Result)
			}
			continue
		case "theme":
			if len(fields) == 2 {
				theme = fields[1]
				saveTheme(st, theme)
				rl.SetPrompt(prompt(theme))
			} else {
				fmt.Println(theme)
			}
			continue
		}
		for _, f := range fields {
			toks, err := presses(f)
			if err != nil {
				fmt.Println(err)
				break
			}
			for _, t := range toks {
				ed.Press(t)
			}
		}
		show(ed)
	}
}

func show(ed *editor.Editor) {
	if e := ed.Expression(); e != "" {
		fmt.Println(" ", e)
	}
	if r := ed.Result(); r != "" {
		fmt.Println("=", r)
	} else if p := ed.Preview(); p != "" {
		fmt.Println("≈", p)
	}
}

// Theme only selects the prompt style; it is stored so that it survives
// sessions, but nothing in the core depends on it.

func prompt(theme string) string {
	if theme == "light" {
		return "> "
	}
	return "\x1b[1m>\x1b[0m "
}

func loadTheme(st store.Store) string {
	if st == nil {
		return "dark"
	}
	v, err := st.LoadStringList(themeKey)
	if err != nil || len(v) == 0 {
		return "dark"
	}
	return v[0]
}

func saveTheme(st store.Store, theme string) {
	if st != nil {
		st.SaveStringList(themeKey, []string{theme})
	}
}
