package main

import (
	"String_View"
	"String_View/traits"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	// Line-oriented search over a file without copying any line.
	file := flag.String("file", "", "file to search")
	pattern := flag.String("pattern", "", "pattern or character set")
	mode := flag.String("mode", "find", "find|rfind|first-of|last-of|first-not-of|last-not-of")
	fold := flag.Bool("fold", false, "ignore ASCII case")
	check := flag.Bool("assert", false, "enable precondition checks")
	flag.Parse()

	opts := String_View.DefaultOptions()
	opts.Assertions = *check
	String_View.Configure(opts)

	if *file == "" {
		fmt.Println("usage: grep -file path -pattern text [-mode find] [-fold]")
		os.Exit(2)
	}
	buf, err := os.ReadFile(*file)
	if err != nil {
		logrus.Errorf("read %s: %v", *file, err)
		os.Exit(1)
	}

	var matches int
	if *fold {
		matches, err = scan(String_View.Of[byte, traits.FoldBytes](buf), String_View.FoldFromString(*pattern), *mode)
	} else {
		matches, err = scan(String_View.FromBytes(buf), String_View.FromString(*pattern), *mode)
	}
	if err != nil {
		logrus.Error(err)
		os.Exit(2)
	}
	logrus.Infof("%d matching lines in %s", matches, *file)
	if matches == 0 {
		os.Exit(1)
	}
}

type search[T traits.Traits[byte]] func(line, pattern String_View.View[byte, T]) int

func searchFor[T traits.Traits[byte]](mode string) (search[T], error) {
	switch mode {
	case "find":
		return func(l, p String_View.View[byte, T]) int { return l.Find(p, 0) }, nil
	case "rfind":
		return func(l, p String_View.View[byte, T]) int { return l.RFind(p, String_View.Npos) }, nil
	case "first-of":
		return func(l, p String_View.View[byte, T]) int { return l.FindFirstOf(p, 0) }, nil
	case "last-of":
		return func(l, p String_View.View[byte, T]) int { return l.FindLastOf(p, String_View.Npos) }, nil
	case "first-not-of":
		return func(l, p String_View.View[byte, T]) int { return l.FindFirstNotOf(p, 0) }, nil
	case "last-not-of":
		return func(l, p String_View.View[byte, T]) int { return l.FindLastNotOf(p, String_View.Npos) }, nil
	}
	return nil, fmt.Errorf("invalid mode %q", mode)
}

// scan runs the search on every line of text and logs the hits.
func scan[T traits.Traits[byte]](text, pattern String_View.View[byte, T], mode string) (int, error) {
	find, err := searchFor[T](mode)
	if err != nil {
		return 0, err
	}

	matches := 0
	for lineNo := 1; !text.Empty(); lineNo++ {
		n := text.FindChar('\n', 0)
		line := text.Substr(0, n)
		if n == String_View.Npos {
			text = String_View.View[byte, T]{}
		} else {
			text.RemovePrefix(n + 1)
		}
		line = trimCR(line)

		if col := find(line, pattern); col != String_View.Npos {
			matches++
			logrus.WithFields(logrus.Fields{
				"line": lineNo,
				"col":  col + 1,
			}).Info(line.String())
		}
	}
	return matches, nil
}

func trimCR[T traits.Traits[byte]](line String_View.View[byte, T]) String_View.View[byte, T] {
	if line.EndsWithChar('\r') {
		line.RemoveSuffix(1)
	}
	return line
}
