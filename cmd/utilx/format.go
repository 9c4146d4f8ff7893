package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-utils/arr"
	"github.com/hasbyte1/go-utils/internal/datafile"
	"github.com/hasbyte1/go-utils/tmpl"
)

func newFormatCmd(a *app) *cobra.Command {
	var dataPath, dataFormat string
	var sets []string
	cmd := &cobra.Command{
		Use:   "format TEMPLATE [VALUE...]",
		Short: "Render a template",
		Long: `Renders TEMPLATE and prints the result.

With --data the placeholders are paths into the decoded file ({user.name},
{items[-1]}). --set KEY=VALUE writes a string at a dot path, on top of the
data file if there is one. Otherwise placeholders are positions into the
VALUE arguments ({0}, {1}). When both are given the data is position 0.

The title, trim, truncate and hash formatters are available unless the
config sets format.extras = false.`,
		Example: `  utilx format 'Hello, {0:upper}!' world
  utilx format '{count} {count:plural(item,items)}' --data order.json
  utilx format '{user.name|anonymous}' --set user.name=Ada
  utilx format '{sku:code}' --data item.msgpack --format msgpack`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine()
			if err != nil {
				return err
			}
			values := arr.Map(args[1:], func(v string, _ int) any { return v })
			if dataPath != "" || len(sets) > 0 {
				data, err := buildData(dataPath, dataFormat, sets)
				if err != nil {
					return err
				}
				values = append([]any{data}, values...)
			}
			var out string
			if len(values) == 0 {
				out = e.Format(args[0], nil)
			} else {
				out = e.Format(args[0], values[0], values[1:]...)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataPath, "data", "", "data file for named placeholders")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "KEY=VALUE written into the data at a dot path (repeatable)")
	cmd.Flags().StringVar(&dataFormat, "format", "", "data file format: json, yaml, toml or msgpack (default: from extension)")
	return cmd
}

// buildData loads the data file, if any, and applies the --set entries.
func buildData(path, format string, sets []string) (any, error) {
	var data any = map[string]any{}
	if path != "" {
		var err error
		if data, err = loadData(path, format); err != nil {
			return nil, err
		}
	}
	if len(sets) == 0 {
		return data, nil
	}
	m, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("--set needs a map at the top of %s", path)
	}
	for _, entry := range sets {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("--set %q: want KEY=VALUE", entry)
		}
		if _, err := arr.ParsePath(key); err != nil {
			return nil, fmt.Errorf("--set %q: %w", entry, err)
		}
		arr.Set(m, key, value)
	}
	return m, nil
}

func loadData(path, name string) (any, error) {
	var format datafile.Format
	if name != "" {
		var err error
		if format, err = datafile.ParseFormat(name); err != nil {
			return nil, err
		}
	}
	return datafile.Load(path, format)
}

// engine builds a template engine from the config: optional extra
// formatters, a default locale for the case formatters, and aliases.
func (a *app) engine() (*tmpl.Engine, error) {
	formatters := map[string]tmpl.FormatterFunc{}
	if a.cfg.Format.Extras {
		formatters = tmpl.ExtraFormatters()
	}
	if locale := a.cfg.Format.Locale; locale != "" {
		formatters["upper"] = withLocale(tmpl.Upper, locale)
		formatters["lower"] = withLocale(tmpl.Lower, locale)
		if fn, ok := formatters["title"]; ok {
			formatters["title"] = withLocale(fn, locale)
		}
	}
	return tmpl.New(tmpl.Options{
		Formatters: formatters,
		Aliases:    a.cfg.Format.Aliases,
		Logger:     a.logger,
	})
}

// withLocale supplies locale as the first argument when none is given.
func withLocale(fn tmpl.FormatterFunc, locale string) tmpl.FormatterFunc {
	return func(value string, args []string) string {
		if len(args) == 0 || args[0] == "" {
			args = append([]string{locale}, args...)
		}
		return fn(value, args)
	}
}
