// fakezip stands in for gzip in tests: it moves PATH to PATH+suffix, optionally after a delay.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

func main() {
	suffix := flag.String("suffix", ".fz", "suffix of the compressed file")
	sleep := flag.Duration("sleep", 0, "delay before compressing")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: fakezip [-suffix .fz] [-sleep 1s] PATH")
		os.Exit(2)
	}
	time.Sleep(*sleep)

	path := flag.Arg(0)
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(path+*suffix, b, 0600); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.Remove(path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
