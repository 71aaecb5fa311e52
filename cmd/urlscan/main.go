package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/urlguard/go-urlguard/pkg/engine"
	"github.com/urlguard/go-urlguard/pkg/models"
)

const BANNER = `
  _   _ ____  _     ____ _   _  ____ ____  ____
 | | | |  _ \| |   / ___| | | |/ _  |  _ \|  _ \
 | | | | |_) | |  | |  _| | | | (_| | |_) | | | |
 | |_| |  _ <| |__| |_| | |_| |\__,_|  _ <| |_| |
  \___/|_| \_\_____\____|\___/      |_| \_\____/

        heuristic URL risk scanner
`

func main() {
	targetsArg := flag.String("t", "", "Target URL or file containing URLs (one per line)")
	outputFile := flag.String("o", "", "Output CSV report file")
	concurrency := flag.Int("c", 10, "Number of concurrent workers")
	silent := flag.Bool("s", false, "Suppress status output")
	flag.Parse()

	if !*silent {
		fmt.Fprint(os.Stderr, BANNER+"\n")
	}

	targets, err := loadTargets(*targetsArg)
	if err != nil {
		color.Red("[-] %v", err)
		os.Exit(1)
	}
	if len(targets) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if !*silent {
		color.Cyan("[+] Loaded %d targets", len(targets))
		color.Blue("[+] Scoring with %d workers...", *concurrency)
	}

	var bar *progressbar.ProgressBar
	if !*silent {
		bar = progressbar.Default(int64(len(targets)))
	}

	clf := engine.New(nil)
	verdicts := make([]models.Verdict, len(targets))

	var wg sync.WaitGroup
	sem := make(chan struct{}, *concurrency)
	for i, target := range targets {
		wg.Add(1)
		go func(i int, t string) {
			defer wg.Done()
			sem <- struct{}{}
			verdicts[i] = clf.Classify(t)
			<-sem
			if bar != nil {
				bar.Add(1)
			}
		}(i, target)
	}
	wg.Wait()

	malicious := 0
	for _, v := range verdicts {
		if v.Label == models.LabelMalicious {
			malicious++
		}
	}

	if err := writeReport(*outputFile, verdicts); err != nil {
		color.Red("[-] Error writing report: %v", err)
		os.Exit(1)
	}

	if !*silent {
		if malicious > 0 {
			color.Red("[!] %d of %d URLs flagged malicious", malicious, len(targets))
		} else {
			color.Green("[+] No URLs flagged malicious")
		}
		if *outputFile != "" {
			color.Green("[+] Report written to %s", *outputFile)
		}
	}
}

// loadTargets resolves the -t argument: an existing file is read line by
// line, anything else is a single URL. With no argument, stdin is read.
func loadTargets(arg string) ([]string, error) {
	if arg == "" {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return nil, nil
		}
		return readLines(os.Stdin), nil
	}

	if _, err := os.Stat(arg); err == nil {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("reading targets file: %w", err)
		}
		defer f.Close()
		return readLines(f), nil
	}

	lowerArg := strings.ToLower(arg)
	for _, ext := range []string{".txt", ".list", ".csv"} {
		if strings.HasSuffix(lowerArg, ext) {
			return nil, fmt.Errorf("input file not found: %s", arg)
		}
	}
	return []string{arg}, nil
}

func readLines(f *os.File) []string {
	var targets []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			targets = append(targets, line)
		}
	}
	return targets
}

// writeReport renders verdicts as CSV, to a file or stdout.
func writeReport(path string, verdicts []models.Verdict) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write(models.ReportColumns); err != nil {
		return err
	}
	for _, v := range verdicts {
		if err := w.Write(v.ReportRow()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
