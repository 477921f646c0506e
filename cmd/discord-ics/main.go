package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/TheEnbyperor/discord-events-export/config"
	"github.com/TheEnbyperor/discord-events-export/discord"
	"github.com/TheEnbyperor/discord-events-export/snowflake"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "discord-ics",
		Usage: "Render Discord guild scheduled events as an iCalendar feed.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			renderCommand(),
			snowflakeCommand(),
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Render a calendar from saved guild, event and channel JSON records.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "guild", Usage: "Guild object JSON file", Required: true},
			&cli.StringFlag{Name: "events", Usage: "Scheduled events array JSON file", Required: true},
			&cli.StringFlag{Name: "channels", Usage: "Channel objects array JSON file"},
			&cli.StringFlag{Name: "config", Usage: "YAML config file", Value: "config.yaml", EnvVars: []string{"CONFIG_FILE"}},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output file, stdout when empty"},
		},
		Action: func(c *cli.Context) error {
			logger := setupLogger(c.String("log-level"))

			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			if cfg.RootURL == "" {
				logger.Warn("No root URL configured, calendar URL will be relative.")
			}

			var guild *discord.Guild
			if err := decodeFile(c.String("guild"), func(r io.Reader) (err error) {
				guild, err = discord.DecodeGuild(r)
				return err
			}); err != nil {
				return err
			}
			var events []discord.ScheduledEvent
			if err := decodeFile(c.String("events"), func(r io.Reader) (err error) {
				events, err = discord.DecodeScheduledEvents(r)
				return err
			}); err != nil {
				return err
			}
			var channels []discord.Channel
			if path := c.String("channels"); path != "" {
				if err := decodeFile(path, func(r io.Reader) (err error) {
					channels, err = discord.DecodeChannels(r)
					return err
				}); err != nil {
					return err
				}
			}
			logger.Debug("Loaded records.", "guild", guild.ID, "events", len(events), "channels", len(channels))

			cal := cfg.Exporter().BuildCalendar(guild, events, discord.ChannelIndex(channels))

			if err := writeCalendar(c.App.Writer, c.String("out"), cal.SerializeTo); err != nil {
				return err
			}
			logger.Info("Rendered calendar.", "guild", guild.Name, "events", len(cal.Events))
			return nil
		},
	}
}

func snowflakeCommand() *cli.Command {
	return &cli.Command{
		Name:      "snowflake",
		Usage:     "Decode snowflake ids into their timestamp, shard, process and sequence.",
		ArgsUsage: "<id>...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("at least one snowflake is required")
			}
			for _, raw := range c.Args().Slice() {
				s, err := snowflake.Parse(raw)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "%s\ttimestamp=%s\tshard=%d\tprocess=%d\tsequence=%d\n",
					s, s.Timestamp().Format("2006-01-02T15:04:05.000Z07:00"), s.ShardID(), s.ProcessID(), s.Sequence())
			}
			return nil
		},
	}
}

// writeCalendar writes to path, or to stdout when path is empty. A file that
// fails to close is reported as a write failure.
func writeCalendar(stdout io.Writer, path string, serialize func(io.Writer) error) error {
	if path == "" {
		if err := serialize(stdout); err != nil {
			return fmt.Errorf("failed to write calendar: %w", err)
		}
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := serialize(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

func decodeFile(path string, decode func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	if err := decode(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func setupLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
