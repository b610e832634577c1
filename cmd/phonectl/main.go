package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mroshb/phone_manager/internal/config"
	"github.com/mroshb/phone_manager/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger.Init(cfg.LogLevel, cfg.AppEnv)
	defer logger.Sync()

	if err := run(cfg, os.Args[1:], os.Stdout); err != nil {
		logger.Error("Command failed", "error", err)
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("phonectl", flag.ContinueOnError)
	fs.SetOutput(out)
	country := fs.String("country", cfg.DefaultCountry, "numbering plan: iran or afghanistan")
	count := fs.Int("n", cfg.RandomCount, "how many numbers the random command prints")
	fs.Usage = func() {
		fmt.Fprint(out, usage+"\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *count < 1 {
		return fmt.Errorf("-n must be at least 1, got %d", *count)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("no command given")
	}

	app, err := newApp(cfg, *country, out)
	if err != nil {
		return err
	}
	app.randomCount = *count

	logger.Debug("Running command", "command", fs.Arg(0), "country", *country)
	return app.dispatch(fs.Arg(0), fs.Args()[1:])
}

const usage = `usage: phonectl [flags] <command> [args]

commands:
  normalize <number>              national number without trunk or country code
  validate <number>               prints true or false
  operator <number>               operator code and name
  prefix <number>                 operator prefix with and without trunk zero
  split <number>                  prefix, middle and last parts
  format <style> <number>         styles: international, e164, local, bare, rfc3966,
                                  dashed, spaced, dotted, parentheses, national,
                                  international-spaced, international-dashed
  random [operator]               random local number(s)
  classify <in.xlsx> <out.xlsx>   classify a column of numbers into a report sheet
  codes [country]                 calling code table, or one country's code
  operators                       operators of the selected country
`
