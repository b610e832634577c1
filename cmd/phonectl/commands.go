package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mroshb/phone_manager/internal/classifier"
	"github.com/mroshb/phone_manager/internal/config"
	"github.com/mroshb/phone_manager/internal/security"
	"github.com/mroshb/phone_manager/internal/sheet"
	"github.com/mroshb/phone_manager/pkg/afghan"
	"github.com/mroshb/phone_manager/pkg/callingcode"
	"github.com/mroshb/phone_manager/pkg/iran"
	"github.com/mroshb/phone_manager/pkg/logger"
	"github.com/mroshb/phone_manager/pkg/operators"
	"github.com/mroshb/phone_manager/pkg/phone"
)

type app struct {
	cfg         *config.Config
	manager     *phone.Manager
	operators   []operators.Code
	sanitizer   *security.InputSanitizer
	randomCount int
	out         io.Writer
}

func newApp(cfg *config.Config, country string, out io.Writer) (*app, error) {
	a := &app{
		cfg:         cfg,
		sanitizer:   security.NewInputSanitizer(cfg.MaxInputLength),
		randomCount: cfg.RandomCount,
		out:         out,
	}

	switch strings.ToLower(country) {
	case config.CountryIran:
		a.manager, a.operators = iran.Manager(), iran.Operators()
	case config.CountryAfghanistan:
		a.manager, a.operators = afghan.Manager(), afghan.Operators()
	default:
		return nil, fmt.Errorf("unknown country %q", country)
	}
	return a, nil
}

func (a *app) dispatch(command string, args []string) error {
	switch command {
	case "normalize":
		return a.withNumber(args, func(n string) error {
			digits, err := a.manager.Normalize(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, digits)
			return nil
		})
	case "validate":
		return a.withNumber(args, func(n string) error {
			fmt.Fprintln(a.out, a.manager.IsValid(n))
			return nil
		})
	case "operator":
		return a.withNumber(args, a.printOperator)
	case "prefix":
		return a.withNumber(args, func(n string) error {
			full, ok := a.manager.Prefix(n, false)
			if !ok {
				return fmt.Errorf("no operator prefix matches %q", n)
			}
			bare, _ := a.manager.Prefix(n, true)
			fmt.Fprintf(a.out, "%s %s\n", full, bare)
			return nil
		})
	case "split":
		return a.withNumber(args, func(n string) error {
			parts, err := a.manager.Split(n)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "prefix=%s middle=%s last=%s\n", parts.Prefix, parts.Middle, parts.Last)
			return nil
		})
	case "format":
		if len(args) != 2 {
			return fmt.Errorf("format expects <style> <number>")
		}
		return a.withNumber(args[1:], func(n string) error {
			formatted, err := a.manager.Format(phone.Style(args[0]), n)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, formatted)
			return nil
		})
	case "random":
		return a.random(args)
	case "classify":
		return a.classify(args)
	case "codes":
		return a.codes(args)
	case "operators":
		for _, op := range a.operators {
			info, _ := operators.Lookup(op)
			prefixes, _ := a.manager.Prefixes(op)
			fmt.Fprintf(a.out, "%s\t%s\t%s\t%s\n", op, info.Kind, info.Name, strings.Join(prefixes, ","))
		}
		return nil
	}
	return fmt.Errorf("unknown command %q", command)
}

// withNumber sanitizes the single number argument and hands it to fn.
func (a *app) withNumber(args []string, fn func(string) error) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one number argument, got %d", len(args))
	}
	cleaned, err := a.sanitizer.Clean(args[0])
	if err != nil {
		return err
	}
	return fn(cleaned)
}

func (a *app) printOperator(n string) error {
	if _, err := a.manager.Normalize(n); err != nil {
		return err
	}
	op, ok := a.manager.Operator(n)
	if !ok {
		fmt.Fprintln(a.out, "unknown")
		return nil
	}
	info, _ := operators.Lookup(op)
	fmt.Fprintf(a.out, "%s %s\n", op, info.Name)
	return nil
}

func (a *app) random(args []string) error {
	var op operators.Code
	switch len(args) {
	case 0:
	case 1:
		op = operators.Code(strings.ToUpper(args[0]))
	default:
		return fmt.Errorf("random expects at most one operator")
	}

	for i := 0; i < a.randomCount; i++ {
		number, err := a.manager.Random(op)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, number)
	}
	return nil
}

func (a *app) classify(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("classify expects <in.xlsx> <out.xlsx>")
	}

	cells, err := sheet.ReadColumn(args[0], a.cfg.SheetName, a.cfg.SheetColumn, a.cfg.SheetSkipHeader)
	if err != nil {
		return err
	}
	logger.Info("Read numbers from workbook", "path", args[0], "count", len(cells))

	rows := classifier.New(a.manager, a.sanitizer).Classify(cells)
	if err := sheet.WriteReport(args[1], "Report", rows); err != nil {
		return err
	}

	logger.Info("Wrote report", "path", args[1], "rows", len(rows))
	fmt.Fprintf(a.out, "%d numbers classified into %s\n", len(rows), args[1])
	return nil
}

func (a *app) codes(args []string) error {
	if len(args) > 0 {
		name := strings.Join(args, " ")
		code, ok := callingcode.Lookup(name)
		if !ok {
			return fmt.Errorf("no calling code for %q", name)
		}
		fmt.Fprintln(a.out, code)
		return nil
	}
	for _, e := range callingcode.All() {
		fmt.Fprintf(a.out, "%s\t%s\n", e.Name, e.Code)
	}
	return nil
}
