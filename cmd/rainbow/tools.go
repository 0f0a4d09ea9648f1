package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/salsasteve/rainbow/internal/config"
	"github.com/salsasteve/rainbow/internal/quote"
	"github.com/salsasteve/rainbow/internal/search"
	"github.com/salsasteve/rainbow/internal/telegram"
	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	var (
		query      string
		file       string
		ignoreCase bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Print the lines of a file that contain a query",
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" || file == "" {
				return fmt.Errorf("--query and --file are required (or QUERY and FILE)")
			}
			contents, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			var lines []string
			if ignoreCase {
				lines = search.SearchCaseInsensitive(query, string(contents))
			} else {
				lines = search.Search(query, string(contents))
			}
			for _, line := range lines {
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", config.GetEnv("QUERY", ""), "Text to look for [env QUERY]")
	cmd.Flags().StringVarP(&file, "file", "f", config.GetEnv("FILE", ""), "File to search [env FILE]")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", config.GetEnvBool("IGNORE_CASE"), "Case-insensitive match [env IGNORE_CASE]")
	return cmd
}

func quoteCmd(cfg *config.Config) *cobra.Command {
	var forwardTo int64

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Fetch a random quote and optionally forward it to a Telegram chat",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			q, err := quote.NewClient(cfg.QuoteURL).Fetch(ctx)
			if err != nil {
				return err
			}
			fmt.Println(q.Quote)

			if !cmd.Flags().Changed("forward-to") {
				return nil
			}
			logger := newLogger().WithComponent("quote")
			defer logger.Sync()

			bot := telegram.NewClient(cfg.TelegramAPI, cfg.TelegramToken)
			if err := bot.SendMessage(ctx, forwardTo, q.Quote); err != nil {
				return err
			}
			logger.Infow("quote.forwarded", map[string]any{"chat_id": forwardTo})
			return nil
		},
	}

	cmd.Flags().Int64Var(&forwardTo, "forward-to", 0, "Telegram chat ID to forward the quote to")
	return cmd
}

func telegramCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "telegram",
		Short: "Telegram bot actions",
	}

	var (
		chatID int64
		text   string
	)

	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Send a text message to a chat",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			bot := telegram.NewClient(cfg.TelegramAPI, cfg.TelegramToken)
			if err := bot.SendMessage(ctx, chatID, text); err != nil {
				return err
			}
			fmt.Printf("Message sent to %d\n", chatID)
			return nil
		},
	}
	sendCmd.Flags().Int64Var(&chatID, "chat-id", 0, "Chat ID")
	sendCmd.Flags().StringVar(&text, "text", "", "Message text")
	_ = sendCmd.MarkFlagRequired("chat-id")
	_ = sendCmd.MarkFlagRequired("text")

	cmd.AddCommand(sendCmd)
	return cmd
}
