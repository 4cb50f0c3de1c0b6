package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Command is one chat command the bot answers, e.g. "/scores".
type Command struct {
	Name  string
	About string
	Run   func() string
}

// update mirrors only the slice of the getUpdates payload this bot
// consumes: the polling cursor, the message text, and the originating chat.
type update struct {
	UpdateID int `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
	} `json:"message"`
}

// StartCommandLoop long-polls for chat commands and answers them from the
// registered set. Non-command text, messages from other chats, and unknown
// commands answered with the command list. Blocks until ctx is cancelled.
func (t *TelegramNotifier) StartCommandLoop(ctx context.Context, commands []Command) {
	registry := make(map[string]Command, len(commands))
	lines := make([]string, 0, len(commands))
	for _, c := range commands {
		registry[c.Name] = c
		lines = append(lines, fmt.Sprintf("%s — %s", c.Name, c.About))
	}
	help := "Available commands:\n" + strings.Join(lines, "\n")

	offset := 0
	// client timeout sits above the 30s long-poll window
	client := &http.Client{Timeout: 35 * time.Second}

	for {
		select {
		case <-ctx.Done():
			log.Println("[INFO] command loop stopped")
			return
		default:
		}

		updates, err := t.poll(ctx, client, offset)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[WARN] command poll: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		for _, u := range updates {
			offset = u.UpdateID + 1
			name, ok := t.commandFrom(u)
			if !ok {
				continue
			}
			log.Printf("[INFO] chat command: %s", name)

			reply := help
			if cmd, known := registry[name]; known {
				reply = cmd.Run()
			}
			if reply == "" {
				continue
			}
			if err := t.Send(reply); err != nil {
				log.Printf("[ERROR] reply to %s: %v", name, err)
			}
		}
	}
}

func (t *TelegramNotifier) poll(ctx context.Context, client *http.Client, offset int) ([]update, error) {
	endpoint := fmt.Sprintf("%s?offset=%d&timeout=30", t.api("getUpdates"), offset)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read updates: %w", err)
	}
	var result struct {
		OK     bool     `json:"ok"`
		Result []update `json:"result"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	if !result.OK {
		return nil, fmt.Errorf("getUpdates not ok: %s", string(body))
	}
	return result.Result, nil
}

// commandFrom extracts the slash command from an update, if it carries one
// addressed to the configured chat. "/scores@SomeBot now" yields "/scores";
// arguments and the bot-name suffix are discarded.
func (t *TelegramNotifier) commandFrom(u update) (string, bool) {
	if u.Message == nil {
		return "", false
	}
	if t.chatID != "" && strconv.FormatInt(u.Message.Chat.ID, 10) != t.chatID {
		return "", false
	}
	text := strings.TrimSpace(u.Message.Text)
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	name := strings.Fields(text)[0]
	if i := strings.Index(name, "@"); i > 0 {
		name = name[:i]
	}
	return name, true
}
