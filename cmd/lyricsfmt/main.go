package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sukalov/lyricsfmt/internal/clipboard"
	"github.com/sukalov/lyricsfmt/internal/logger"
	"github.com/sukalov/lyricsfmt/internal/lyrics"
	"github.com/sukalov/lyricsfmt/internal/lyrics/sources/page"
	"github.com/sukalov/lyricsfmt/internal/utils"
)

func main() {
	var (
		outputFile    string
		lineLength    int
		debug         bool
		fromClipboard bool
		noCopy        bool
	)

	flag.StringVar(&outputFile, "o", "", "Output file name (default: \"<input> (Lyrics Processed).<ext>\")")
	flag.StringVar(&outputFile, "output", "", "Output file name (same as -o)")
	flag.IntVar(&lineLength, "l", lyrics.DefaultMaxLineLength, "Maximum line length for the processed lyrics")
	flag.IntVar(&lineLength, "line-length", lyrics.DefaultMaxLineLength, "Maximum line length (same as -l)")
	flag.BoolVar(&debug, "d", false, "Enable debug logging")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging (same as -d)")
	flag.BoolVar(&fromClipboard, "from-clipboard", false, "Read the lyrics from the clipboard instead of a file")
	flag.BoolVar(&noCopy, "no-copy", false, "Do not copy the processed lyrics to the clipboard")
	flag.Parse()

	log := logger.New(os.Stderr, debug)

	args := flag.Args()
	if len(args) == 0 && !fromClipboard {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <lyrics file or URL>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	text, source, err := readInput(args, fromClipboard, log)
	if err != nil {
		log.Error(fmt.Sprintf("failed to read lyrics: %v", err))
		os.Exit(1)
	}
	log.Info(fmt.Sprintf("processing lyrics from %s", source))

	processor, err := lyrics.NewProcessor(lyrics.Config{MaxLineLength: lineLength, Debug: debug}, log)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	result := processor.Process(text)

	if outputFile == "" && len(args) > 0 && !page.IsURL(args[0]) {
		outputFile = utils.ProcessedFilename(args[0])
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(result.Text+"\n"), 0644); err != nil {
			log.Error(fmt.Sprintf("error saving file %s: %v", outputFile, err))
			os.Exit(1)
		}
		log.Success(fmt.Sprintf("processed lyrics written to %s (%d lines)", outputFile, result.OutputLines))
	} else {
		fmt.Println(result.Text)
	}

	if !noCopy {
		if err := clipboard.WriteText(result.Text); err != nil {
			log.Debug(fmt.Sprintf("could not copy to clipboard: %v", err))
		} else {
			log.Info("processed lyrics copied to clipboard")
		}
	}
}

// readInput resolves the lyrics text from the clipboard, a URL or a file.
func readInput(args []string, fromClipboard bool, log *logger.Logger) (string, string, error) {
	if fromClipboard {
		text, err := clipboard.ReadText()
		if err != nil {
			return "", "", err
		}
		return text, "clipboard", nil
	}

	input := args[0]
	if page.IsURL(input) {
		result, err := page.NewParser(log).Fetch(input)
		if err != nil {
			return "", "", err
		}
		return result.Text, input, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", "", err
	}
	return string(data), input, nil
}
