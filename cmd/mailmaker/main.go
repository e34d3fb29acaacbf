// Command mailmaker generates, parses and inspects mail maker HTML exports
// from the command line.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mhoo999/mail-maker/internal/domains"
	"github.com/mhoo999/mail-maker/internal/generator"
	"github.com/mhoo999/mail-maker/internal/parser"
	"github.com/mhoo999/mail-maker/internal/service"
	"github.com/mhoo999/mail-maker/internal/starter"
)

const usage = `usage: mailmaker <command> [flags]

commands:
  generate       render a {"blocks": [...], "layout": {...}} document to HTML
  parse          restore the block list from an exported HTML document
  inspect        report whether HTML is a mail maker export and how many blocks it holds
  starter        list starter templates, or render one by id
  hash-password  print a bcrypt hash for auth.operator_password_hash
`

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		fmt.Fprintln(os.Stderr, "mailmaker:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "generate":
		return runGenerate(rest, stdin, stdout)
	case "parse":
		return runParse(rest, stdin, stdout)
	case "inspect":
		return runInspect(rest, stdin, stdout)
	case "starter":
		return runStarter(rest, stdout)
	case "hash-password":
		return runHashPassword(rest, stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

type document struct {
	Blocks domains.Blocks          `json:"blocks"`
	Layout *domains.LayoutSettings `json:"layout,omitempty"`
}

func runGenerate(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	in := fs.String("in", "", "input JSON file (default stdin)")
	out := fs.String("out", "", "output HTML file (default stdout)")
	lang := fs.String("lang", "", "document lang attribute")
	title := fs.String("title", "", "document title")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := readInput(*in, stdin)
	if err != nil {
		return err
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	html, err := generator.New(generator.WithLang(*lang), generator.WithTitle(*title)).Generate(doc.Blocks, doc.Layout)
	if err != nil {
		return err
	}
	return writeOutput(*out, stdout, []byte(html))
}

func runParse(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	in := fs.String("in", "", "input HTML file (default stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := readInput(*in, stdin)
	if err != nil {
		return err
	}
	blocks, err := parser.Parse(string(raw))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(document{Blocks: blocks})
}

func runInspect(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	in := fs.String("in", "", "input HTML file (default stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := readInput(*in, stdin)
	if err != nil {
		return err
	}
	doc := string(raw)
	_, err = fmt.Fprintf(stdout, "recognized: %t\nblocks: %d\n", parser.IsRecognized(doc), parser.CountBlocks(doc))
	return err
}

func runStarter(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("starter", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print the block list instead of HTML")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		for _, t := range starter.Definitions() {
			if _, err := fmt.Fprintf(stdout, "%s\t%s\t%s\n", t.ID, t.Name, t.Description); err != nil {
				return err
			}
		}
		return nil
	}

	t, ok := starter.Find(fs.Arg(0))
	if !ok {
		return fmt.Errorf("%w: %s", service.ErrStarterNotFound, fs.Arg(0))
	}
	blocks := t.Instantiate()
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(document{Blocks: blocks})
	}
	html, err := generator.Generate(blocks, nil)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, html)
	return err
}

func runHashPassword(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: hash-password takes exactly one password", errUsage)
	}
	hash, err := service.HashPassword(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, hash)
	return err
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
