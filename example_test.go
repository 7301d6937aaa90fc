package logrotee_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kei2100/logrotee"
)

func ExampleEngine() {
	dir, err := os.MkdirTemp("", "logrotee-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	conf := logrotee.DefaultConfig(filepath.Join(dir, "test.log"))
	conf.ChunkSize = 2
	conf.MaxFiles = 3
	e, err := logrotee.NewEngine(conf)
	if err != nil {
		panic(err)
	}
	if err := e.Run(strings.NewReader("a\nb\nc\n")); err != nil {
		panic(err)
	}

	b0, _ := os.ReadFile(filepath.Join(dir, "test.log"))
	b1, _ := os.ReadFile(filepath.Join(dir, "test.log.0"))
	b2, _ := os.ReadFile(filepath.Join(dir, "test.log.1"))
	fmt.Printf("%q/%q/%q", b0, b1, b2)

	// Output:
	// a
	// b
	// c
	// "c\n"/"a\n"/"b\n"
}

func ExampleEngine_nullStdout() {
	dir, err := os.MkdirTemp("", "logrotee-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	conf := logrotee.DefaultConfig(filepath.Join(dir, "test.log"))
	conf.ChunkSize = 4
	conf.NullStdout = true
	e, err := logrotee.NewEngine(conf)
	if err != nil {
		panic(err)
	}
	if err := e.Start(); err != nil {
		panic(err)
	}
	e.WriteLine([]byte("1234"))
	e.WriteLine([]byte("5\n")) // the line is finished: rotate before the next one
	e.WriteLine([]byte("6\n"))
	e.Finish()

	b0, _ := os.ReadFile(filepath.Join(dir, "test.log"))
	b1, _ := os.ReadFile(filepath.Join(dir, "test.log.0"))
	fmt.Printf("%q/%q", b0, b1)

	// Output: "6\n"/"12345\n"
}
