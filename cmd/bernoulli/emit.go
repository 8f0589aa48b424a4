package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Panda381/BigInt/pkg/bernoulli"
)

// emit writes the results already accumulated in s in the requested
// format. format "none" is a silent success, matching the reference
// harness's positional format=0.
func emit(s *bernoulli.State, format, out string) error {
	if format == "none" || format == "" {
		return nil
	}

	w := io.Writer(os.Stdout)
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("emit: create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "csv-tab":
		return emitCSV(w, s, "\t")
	case "csv-comma":
		return emitCSV(w, s, ",")
	case "csv-semicolon":
		return emitCSV(w, s, ";")
	case "source":
		return emitSource(w, s)
	default:
		return fmt.Errorf("emit: unknown format %q", format)
	}
}

func emitCSV(w io.Writer, s *bernoulli.State, sep string) error {
	for i := 0; i < s.Produced; i++ {
		num, den := s.Result(i)
		if _, err := fmt.Fprintf(w, "%d%s%s%s%s\n", 2*(i+1), sep, num.Text(), sep, den.Text()); err != nil {
			return fmt.Errorf("emit: write: %w", err)
		}
	}
	return nil
}

func emitSource(w io.Writer, s *bernoulli.State) error {
	if _, err := fmt.Fprintln(w, "var bernNum = []string{"); err != nil {
		return fmt.Errorf("emit: write: %w", err)
	}
	for i := 0; i < s.Produced; i++ {
		num, _ := s.Result(i)
		if _, err := fmt.Fprintf(w, "\t%q, // B%d\n", num.Text(), 2*(i+1)); err != nil {
			return fmt.Errorf("emit: write: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return fmt.Errorf("emit: write: %w", err)
	}

	if _, err := fmt.Fprintln(w, "\nvar bernDen = []string{"); err != nil {
		return fmt.Errorf("emit: write: %w", err)
	}
	for i := 0; i < s.Produced; i++ {
		_, den := s.Result(i)
		if _, err := fmt.Fprintf(w, "\t%q, // B%d\n", den.Text(), 2*(i+1)); err != nil {
			return fmt.Errorf("emit: write: %w", err)
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
