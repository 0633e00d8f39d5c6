// Package main provides the CLI entry point for paratype.
//
// Usage:
//
//	paratype break input.txt --font regular.ttf [-o report.txt]
//	paratype break input.txt --font regular.ttf --algo greedy --width 240
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/anselm/paratype"
	"github.com/anselm/paratype/font"
	"github.com/anselm/paratype/hyphen"
	"github.com/anselm/paratype/item"
	"github.com/anselm/paratype/layout"
	"github.com/anselm/paratype/linebreak"
	"github.com/anselm/paratype/segment"
	"github.com/anselm/paratype/shape"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "break", "b":
		if err := runBreak(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		printVersion()
	default:
		if err := runBreak(os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printUsage() {
	fmt.Println(`paratype - paragraph line breaking

Usage:
  paratype break <input.txt> --font <face.ttf> [options]
  paratype help
  paratype version

Options:
  --font        Font file to shape and measure with (required)
  --size        Font size in points (default 12)
  --width       Line width in points (default 360)
  --algo        Line breaking algorithm: greedy or optimal (default optimal)
  --hyphenate   Hyphenate before breaking (default true)
  -o            Output report file path (default: stdout)`)
}

func printVersion() {
	fmt.Println("paratype version 0.1.0")
}

func runBreak(args []string) error {
	fs := flag.NewFlagSet("break", flag.ExitOnError)
	fontPath := fs.String("font", "", "Font file to shape with")
	size := fs.Float64("size", 12.0, "Font size in points")
	width := fs.Float64("width", 360.0, "Line width in points")
	algoName := fs.String("algo", "optimal", "Line breaking algorithm: greedy or optimal")
	hyphenate := fs.Bool("hyphenate", true, "Hyphenate before breaking")
	output := fs.String("o", "", "Output report file path")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("missing input file")
	}
	// Flag parsing stops at the first positional argument, so parse
	// whatever follows the input file name as flags too.
	inputPath := fs.Arg(0)
	if err := fs.Parse(fs.Args()[1:]); err != nil {
		return err
	}
	if *fontPath == "" {
		return fmt.Errorf("missing required --font flag")
	}
	if !font.IsFontFile(*fontPath) {
		return fmt.Errorf("%s: unrecognized font file extension (want .ttf, .otf, .ttc or .otc)", *fontPath)
	}

	text, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}

	fonts, err := font.LoadFromFile(*fontPath)
	if err != nil {
		return fmt.Errorf("cannot load font: %w", err)
	}
	if len(fonts) == 0 {
		return fmt.Errorf("no faces found in %s", *fontPath)
	}

	loaded := fonts[0]
	fmt.Fprintf(os.Stderr, "using %s %s %s (%s)\n",
		loaded.Info.Family, loaded.Info.Weight, loaded.Info.Style, loaded.Info.Stretch)

	face := shape.NewFaceFont(loaded.Face(), layout.Abs(*size), layout.DirLTR)

	var algo paratype.Algorithm
	switch *algoName {
	case "greedy":
		algo = paratype.Greedy
	case "optimal":
		algo = paratype.Optimal
	default:
		return fmt.Errorf("unknown algorithm %q (want greedy or optimal)", *algoName)
	}

	var hyph hyphen.Hyphenator
	if *hyphenate {
		hyph = hyphen.NewHeuristic()
	}

	seg := segment.NewUnicodeSegmenter()

	items, breaks, err := paratype.BreakParagraph(
		string(text), face, seg, hyph, layout.Abs(*width), algo, linebreak.DefaultParams(),
	)
	if err != nil {
		return fmt.Errorf("breaking paragraph failed: %w", err)
	}

	var out *os.File
	if *output == "" {
		out = os.Stdout
	} else {
		out, err = os.Create(*output)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer out.Close()
	}

	return writeReport(out, items, breaks, layout.Abs(*width))
}

// writeReport prints one line per broken line: its natural width, the
// target width, the adjustment ratio implied, and the text it covers.
func writeReport(out *os.File, items []item.ParagraphItem, breaks []int, width layout.Abs) error {
	lines := paratype.Lines(items, breaks)
	sums := item.RunningSums(items)

	start := 0
	for i, line := range lines {
		end := start + len(line)
		// Measure as the breakers do: up to (not including) the break
		// item, plus the break item's own width when it is a Penalty.
		brk := line[len(line)-1]
		natural := sums[end-1].Width - sums[start].Width
		if brk.Kind == item.PenaltyKind {
			natural += brk.Width
		}

		var text strings.Builder
		for j, it := range line {
			if it.Kind == item.PenaltyKind && j != len(line)-1 {
				continue
			}
			text.WriteString(it.Text)
		}

		ratio := 0.0
		switch {
		case natural < width:
			stretch := sums[end-1].Stretch - sums[start].Stretch
			if stretch > 0 {
				ratio = float64((width - natural) / stretch)
			}
		case natural > width:
			shrink := sums[end-1].Shrink - sums[start].Shrink
			if shrink > 0 {
				ratio = float64((width - natural) / shrink)
			}
		}

		if _, err := fmt.Fprintf(out, "line %d: width=%.2f/%.2f ratio=%.3f %q\n",
			i+1, natural, width, ratio, text.String()); err != nil {
			return err
		}

		start = end
	}

	return nil
}
