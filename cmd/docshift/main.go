package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuanying/docshift/internal/config"
	"github.com/yuanying/docshift/internal/convert"
	"github.com/yuanying/docshift/internal/rewrite"
)

var rootCmd = &cobra.Command{
	Use:   "docshift",
	Short: "Convert documents between LaTeX, PDF and DOCX",
	Long: `docshift converts documents between LaTeX, PDF and DOCX using the
pdflatex, pdf2docx and LibreOffice engines, then post-processes DOCX
output so it reads as a native word-processor document: conversion
artifacts are stripped and the table of contents, hyperlinks and
cross-references are rebuilt.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringP("mode", "m", "", "Conversion mode: tex2pdf, tex2docx, pdf2docx or docx2pdf (prompted if omitted)")
	rootCmd.Flags().StringP("input", "i", ".", "Input file or directory")
	rootCmd.Flags().StringP("output", "o", "./converted", "Output directory")
	rootCmd.Flags().String("config", "", "Config file (default: docshift.yaml in . or ~/.config/docshift)")
	rootCmd.Flags().Duration("timeout", 0, "Per-engine timeout (default from config)")
}

func run(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		cfg.Timeout = timeout
	}

	modeFlag, _ := cmd.Flags().GetString("mode")
	var mode convert.Mode
	if modeFlag != "" {
		if mode, err = convert.ParseMode(modeFlag); err != nil {
			return err
		}
	} else {
		mode, err = promptMode(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if mode == "" {
			return nil
		}
	}

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	p, err := convert.New(convert.Options{
		Mode:      mode,
		OutputDir: output,
		Timeout:   cfg.Timeout,
		Tuning:    cfg.Tuning,
		Rewrite: rewrite.Options{
			BodyFont:     cfg.Styles.BodyFont,
			BodySizePt:   cfg.Styles.BodySizePt,
			MonoFont:     cfg.Styles.MonoFont,
			ReplaceSerif: cfg.Styles.ReplaceSerif,
		},
	})
	if err != nil {
		return err
	}

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}

	out := cmd.OutOrStdout()
	if !info.IsDir() {
		outPath, err := p.ConvertFile(cmd.Context(), input)
		if err != nil {
			fmt.Fprintf(out, "✗ %s: %v\n", input, err)
			return fmt.Errorf("conversion failed")
		}
		fmt.Fprintf(out, "✓ %s -> %s\n", input, outPath)
		return nil
	}

	return convertDir(cmd, p, input, out)
}

// convertDir converts every matching file in dir, printing a line per
// file and a final tally. The run fails only when nothing converted.
func convertDir(cmd *cobra.Command, p *convert.Pipeline, dir string, out io.Writer) error {
	paths, err := p.DiscoverInputs(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintf(out, "no convertible files in %s\n", dir)
		return nil
	}

	converted, failed := 0, 0
	for _, path := range paths {
		outPath, err := p.ConvertFile(cmd.Context(), path)
		if err != nil {
			fmt.Fprintf(out, "✗ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "✓ %s -> %s\n", path, outPath)
		converted++
	}

	fmt.Fprintf(out, "%d converted, %d failed\n", converted, failed)
	if converted == 0 && failed > 0 {
		return fmt.Errorf("all conversions failed")
	}
	return nil
}

// menu maps the interactive choices to modes, in display order.
var menu = []struct {
	label string
	mode  convert.Mode
}{
	{"LaTeX -> PDF", convert.ModeTexToPDF},
	{"LaTeX -> DOCX", convert.ModeTexToDOCX},
	{"PDF -> DOCX", convert.ModePDFToDOCX},
	{"DOCX -> PDF", convert.ModeDOCXToPDF},
}

// promptMode shows a numbered menu and reads a choice. Invalid input
// re-prompts; 0 (or EOF) exits by returning an empty mode.
func promptMode(r io.Reader, w io.Writer) (convert.Mode, error) {
	fmt.Fprintln(w, "Select conversion mode:")
	for i, item := range menu {
		fmt.Fprintf(w, "  %d. %s\n", i+1, item.label)
	}
	fmt.Fprintln(w, "  0. Exit")

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			return "", scanner.Err()
		}
		switch choice := strings.TrimSpace(scanner.Text()); choice {
		case "0":
			return "", nil
		case "1", "2", "3", "4":
			return menu[choice[0]-'1'].mode, nil
		default:
			fmt.Fprintf(w, "invalid choice %q\n", choice)
		}
	}
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
