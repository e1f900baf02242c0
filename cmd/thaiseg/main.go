// thaiseg prints the terms of a text as analyzed by analysis.ThaiAnalyzer: Thai runs are broken
// into words, other scripts are split on non-word characters.
//
// Usage:
//
//	thaiseg [-version=modern|legacy] [-detector=uax29|uniseg] [-nfc] [text...]
//
// Without arguments, the text is read from stdin, one document per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/go-thaiword/analysis"
	"github.com/gomlx/go-thaiword/analysis/api"
	"github.com/gomlx/go-thaiword/analysis/boundary"
	"k8s.io/klog/v2"
)

var (
	flagDetector = flag.String("detector", boundary.DefaultName,
		fmt.Sprintf("Word boundary detector, one of %q.", boundary.Names()))
	flagNFC   = flag.Bool("nfc", false, "Normalize text to NFC before tokenizing.")
	flagPlain = flag.Bool("plain", false, "Print terms without styling.")
)

var (
	termStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	offsetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	posStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Width(5).Align(lipgloss.Right)
)

func main() {
	version := api.VersionModern
	flag.Var(&version, "version", `Filter behavior: "modern" or "legacy" (lowercases, keeps position increments).`)
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if !boundary.Available() {
		klog.Fatalf("thaiseg: %v", api.ErrUnsupportedEnvironment)
	}

	opts := []analysis.Option{analysis.WithVersion(version), analysis.WithDetector(*flagDetector)}
	if *flagNFC {
		opts = append(opts, analysis.WithNFC())
	}
	analyzer, err := analysis.NewThaiAnalyzer(opts...)
	if err != nil {
		klog.Fatalf("thaiseg: %+v", err)
	}

	if flag.NArg() > 0 {
		printTerms(os.Stdout, analyzer.Analyze(strings.Join(flag.Args(), " ")))
		return
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		printTerms(os.Stdout, analyzer.Analyze(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		klog.Fatalf("thaiseg: failed reading stdin: %v", err)
	}
}

func printTerms(w io.Writer, terms []analysis.Term) {
	for _, term := range terms {
		if *flagPlain {
			fmt.Fprintf(w, "%d\t%s\t[%d, %d)\n", term.Position, term.Text, term.StartByte, term.EndByte)
			continue
		}
		fmt.Fprintf(w, "%s  %s  %s\n",
			posStyle.Render(fmt.Sprint(term.Position)),
			termStyle.Render(term.Text),
			offsetStyle.Render(fmt.Sprintf("[%d, %d)", term.StartByte, term.EndByte)))
	}
	if len(terms) > 0 {
		fmt.Fprintln(w)
	}
}
