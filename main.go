package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"sheetengine/server"
	"sheetengine/sheet"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	sub := os.Args[1]
	switch sub {
	case "-h", "--help", "help":
		usage()
		return
	case "serve":
		os.Exit(serveCommand(os.Args[2:]))
	case "load":
		os.Exit(loadCommand(os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand: %s\n", sub)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  sheetengine <command> [arguments]\n")
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  serve [addr]             start the reactive sheet server (default :8080)\n")
	fmt.Fprintf(os.Stderr, "  load <file>              load a pipe-delimited grid and print every cell's display text\n")
	fmt.Fprintf(os.Stderr, "  help                     show this help message\n")
}

func normalizeAddr(args []string) string {
	addr := ":8080"
	if len(args) > 0 {
		addr = args[0]
		addr = strings.Replace(addr, "localhost", "", 1)
		if !strings.Contains(addr, ":") {
			addr = ":" + addr
		}
	}
	return addr
}

func serveCommand(args []string) int {
	addr := normalizeAddr(args)
	srv := server.New()
	if err := srv.Start(addr); err != nil {
		fmt.Fprintf(os.Stderr, "sheet server error: %v\n", err)
		return 1
	}
	return 0
}

func loadCommand(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: sheetengine load <file>")
		return 2
	}

	var r io.Reader
	if args[0] == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "open %s: %v\n", args[0], err)
			return 1
		}
		defer f.Close()
		r = f
	}

	var buf strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		buf.WriteString(scanner.Text())
		buf.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", args[0], err)
		return 1
	}

	s := sheet.New()
	s.Load(buf.String(), "|")
	for _, a := range s.Addresses() {
		fmt.Printf("%s\t%s\n", a.String(), s.GetText(a))
	}
	return 0
}
