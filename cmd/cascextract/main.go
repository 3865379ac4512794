// cascextract reads entries out of a CASC game-client storage.
//
// Usage:
//
//	cascextract [flags] info
//	cascextract [flags] extract <name>... | --by-id <fdid>...
//	cascextract [flags] has-key <hex-key-id>
package main

import (
	"fmt"
	"os"
	"strconv"

	"cascextract/pkg/casc"
	"cascextract/pkg/env"
	"cascextract/pkg/extract"
	"cascextract/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

func main() {
	// Load environment variables for logger and bootstrap
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	opts := env.ReadOptions()
	logger.Init(opts.LogLevel)

	casc.Register(stubLibrary{})

	if err := run(opts, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts env.Options, args []string) error {
	flagSet := pflag.NewFlagSet("cascextract", pflag.ContinueOnError)
	storagePath := flagSet.String("storage", opts.StoragePath, "path to the CASC storage root (the directory holding .build.info)")
	localeList := flagSet.String("locale", opts.Locale, "comma-separated locales to resolve files for (e.g. enUS,deDE or all)")
	outDir := flagSet.String("out", opts.OutputDir, "directory extracted files are written under")
	zerofill := flagSet.Bool("zerofill", opts.Zerofill, "read undecryptable encrypted regions as zero bytes instead of failing")
	byID := flagSet.Bool("by-id", false, "treat extract arguments as numeric FileDataIds")
	quiet := flagSet.Bool("quiet-open", false, "suppress per-file open diagnostics")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printHelp(flagSet)
		return fmt.Errorf("no command given")
	}

	localeMask, err := casc.ParseLocales(*localeList)
	if err != nil {
		return err
	}

	if *storagePath == "" {
		return fmt.Errorf("no storage path (use --storage or %s)", env.StoragePath)
	}

	storage, err := casc.OpenStorage(*storagePath, localeMask)
	if err != nil {
		return err
	}
	defer storage.Close()

	switch rest[0] {
	case "info":
		return infoCmd(storage)
	case "extract":
		return extractCmd(storage, rest[1:], localeMask, *outDir, *zerofill, *byID, *quiet)
	case "has-key":
		if len(rest) < 2 {
			return fmt.Errorf("has-key requires a hex key id")
		}
		return hasKeyCmd(storage, rest[1])
	default:
		return fmt.Errorf("unknown command %q", rest[0])
	}
}

func infoCmd(storage *casc.Storage) error {
	// A failed metadata query reports 0, like the native tool.
	build, _ := storage.BuildNumber()
	locales, _ := storage.InstalledLocales()
	fmt.Printf("build: %d\n", build)
	fmt.Printf("installed locales: %s (0x%08X)\n", casc.LocaleNames(locales), locales)
	return nil
}

func extractCmd(storage *casc.Storage, args []string, localeMask uint32, outDir string, zerofill, byID, quiet bool) error {
	if len(args) == 0 {
		return fmt.Errorf("extract requires at least one file name or id")
	}

	refs := make([]casc.FileRef, 0, len(args))
	for _, arg := range args {
		if byID {
			id, err := strconv.ParseUint(arg, 10, 32)
			if err != nil {
				return fmt.Errorf("invalid FileDataId %q: %w", arg, err)
			}
			refs = append(refs, casc.ByID(uint32(id)))
		} else {
			refs = append(refs, casc.ByName(arg))
		}
	}

	ex := &extract.Extractor{
		Storage:    storage,
		OutFS:      afero.NewBasePathFs(afero.NewOsFs(), outDir),
		LocaleMask: localeMask,
		Zerofill:   zerofill,
		Quiet:      quiet,
	}

	failed := 0
	for _, res := range ex.Extract(refs) {
		if res.Err != nil {
			failed++
		}
	}
	if failed == len(refs) {
		return fmt.Errorf("all %d extractions failed", failed)
	}
	if failed > 0 {
		logger.Warn("Some extractions failed", "failed", failed, "total", len(refs))
	}
	return nil
}

func hasKeyCmd(storage *casc.Storage, arg string) error {
	keyID, err := strconv.ParseUint(trimHexPrefix(arg), 16, 64)
	if err != nil {
		return fmt.Errorf("invalid key id %q: %w", arg, err)
	}
	fmt.Printf("%t\n", storage.HasTactKey(keyID))
	return nil
}

func trimHexPrefix(s string) string {
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}
	return s
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `cascextract — read entries out of a CASC game-client storage.

Commands:
  info                      print build number and installed locales
  extract <name-or-id>...   copy entries to the output directory
  has-key <hex-key-id>      report whether a TACT key is registered

Flags:
%s`, flagSet.FlagUsages())
}
