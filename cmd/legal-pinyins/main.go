// Command legal-pinyins prints every legal Mandarin pinyin syllable as an
// array literal for inclusion in another program.
// It is intended to be run offline; redirect stdout into the target file.
//
// Flags:
//
//	--config   path to YAML config file (optional; falls back to CONFIG_PATH, then env)
//	--verify   check an existing generated table instead of printing one
//	--split    print every segmentation of a pinyin string, one per line
//	--version  print build version and exit
//
// Exit codes: 0 = success, 1 = error or table drift.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/heartmarshall/liushu-pinyin/internal/app"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	verifyFlag := flag.String("verify", "", "path of a generated table to check against the current set")
	splitFlag := flag.String("split", "", "pinyin string to segment into legal syllables")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return
	}

	if *verifyFlag != "" && *splitFlag != "" {
		fmt.Fprintln(os.Stderr, "legal-pinyins: --verify and --split are mutually exclusive")
		os.Exit(1)
	}

	err := app.Run(app.Options{
		ConfigPath: *configFlag,
		VerifyPath: *verifyFlag,
		SplitWord:  *splitFlag,
	}, os.Stdout)
	if err != nil {
		slog.Error("legal-pinyins failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
