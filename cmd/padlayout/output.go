package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

func writeReport(w io.Writer, s settings, r report) error {
	if s.Format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "%s/%s ptr=%d cacheline=%d\n", r.GOOS, r.GOARCH, r.PtrSize, r.CacheLineSize)
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TYPE", "SIZE", "ALIGN", "OPTION SIZE", "OPTION ALIGN", "ZERO BITS")
	if !s.NoColor {
		header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
		cell := lipgloss.NewStyle().Padding(0, 1)
		tbl = tbl.StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	}
	for _, t := range r.Types {
		tbl = tbl.Row(t.Name,
			strconv.Itoa(t.Size), strconv.Itoa(t.Align),
			strconv.Itoa(t.OptionSize), strconv.Itoa(t.OptionAlign),
			strconv.FormatBool(t.ZeroBits))
	}
	_, err := fmt.Fprintln(w, tbl.String())
	return err
}

func writeCheck(w io.Writer, s settings, r report) (failed int) {
	pass := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)
	if s.NoColor {
		pass.DisableColor()
		fail.DisableColor()
	}
	for _, t := range r.Types {
		if t.err != nil {
			failed++
			fail.Fprint(w, "FAIL")
			fmt.Fprintf(w, " %s: %v\n", t.Name, t.err)
			continue
		}
		pass.Fprint(w, "PASS")
		fmt.Fprintf(w, " %s\n", t.Name)
	}
	return failed
}
