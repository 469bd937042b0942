// Package main is the entry point for EduLog, a record-keeping application
// for a tutoring business. It wires configuration, logging and storage
// around a read-eval-print loop over the command layer.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edulog-app/edulog/config"
	"github.com/edulog-app/edulog/internal/domain/shared"
	"github.com/edulog-app/edulog/internal/logic/command"
	"github.com/edulog-app/edulog/internal/model"
	"github.com/edulog-app/edulog/internal/storage/sqlite"
	"github.com/edulog-app/edulog/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "edulog: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := logger.ParseLevel(cfg.App.LogLevel)
	if cfg.App.Debug {
		level = logger.LevelDebug
	}
	log := logger.New(os.Stderr, level).With(logger.F("app", cfg.App.Name))

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	store, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("closing store", logger.Err(err))
		}
	}()

	ctx := context.Background()

	book, err := store.LoadBook(ctx)
	if err != nil {
		return err
	}
	log.Info("record book loaded",
		logger.F("students", book.Roster.Len()),
		logger.F("lessons", book.Schedule.Len()),
		logger.F("path", cfg.Storage.Path))

	fmt.Println("Welcome to EduLog. Type 'help' to see available commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		result, err := dispatch(book, line)
		if err != nil {
			// Input errors carry the exact message the user needs; anything
			// else is unexpected and gets logged as well.
			if !shared.IsValidation(err) {
				log.Debug("command failed", logger.Err(err))
			}
			fmt.Println(err)
			continue
		}

		fmt.Println(result.Feedback)

		if result.Mutated {
			if err := store.SaveBook(ctx, book); err != nil {
				log.Error("saving record book", logger.Err(err))
				fmt.Println("Warning: your last change could not be saved.")
			}
		}
		if result.Exit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// dispatch parses one line of input and executes the resulting command.
func dispatch(book *model.Book, line string) (command.Result, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		return command.Result{}, err
	}
	return cmd.Execute(book)
}
