package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/quantmind-br/entrify/internal/entry"
)

func formatOptions() []huh.Option[string] {
	labels := map[entry.Format]string{
		entry.FormatCJS: "CommonJS (module.exports = require(...))",
		entry.FormatESM: "ES module (import/export default)",
	}
	opts := make([]huh.Option[string], 0, len(entry.Formats))
	for _, f := range entry.Formats {
		opts = append(opts, huh.NewOption(labels[f], string(f)))
	}
	return opts
}

func CreateEntryForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("format").
				Title("Format").
				Description("Module syntax of the generated index.js").
				Options(formatOptions()...).
				Value(&values.Format).
				Validate(ValidateFormat),

			huh.NewInput().
				Key("directory").
				Title("Default Directory").
				Description("Directory to process when none is given (leave empty to require one)").
				Value(&values.Directory).
				Placeholder("./node_modules").
				Validate(ValidateDirectory),
		),
	).WithTheme(GetTheme())
}

func CreateRunForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("progress").
				Title("Progress Bar").
				Description("Show a progress bar while packages are processed").
				Value(&values.Progress),

			huh.NewConfirm().
				Key("strict").
				Title("Strict").
				Description("Exit with an error when any package fails").
				Value(&values.Strict),
		),
	).WithTheme(GetTheme())
}

func CreateLoggingForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("level").
				Title("Log Level").
				Description("Minimum log level to display").
				Options(
					huh.NewOption("Trace", "trace"),
					huh.NewOption("Debug", "debug"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error", "error"),
				).
				Value(&values.LogLevel),

			huh.NewSelect[string]().
				Key("format").
				Title("Log Format").
				Description("Output format for logs").
				Options(
					huh.NewOption("Pretty (human-readable)", "pretty"),
					huh.NewOption("JSON (structured)", "json"),
				).
				Value(&values.LogFormat).
				Validate(ValidateLogFormat),
		),
	).WithTheme(GetTheme())
}

func GetFormForCategory(category string, values *ConfigValues) *huh.Form {
	switch category {
	case "entry":
		return CreateEntryForm(values)
	case "run":
		return CreateRunForm(values)
	case "logging":
		return CreateLoggingForm(values)
	default:
		return nil
	}
}
