package ingest

import (
	"fmt"
	"strings"
	"time"

	"daylog/internal/model"
)

func init() {
	model.RegisterNormalizer(chatNormalizer{})
}

// chatMessageSpan is the nominal duration assigned to a chat message so that
// bursts of chatting cluster into one session.
const chatMessageSpan = 5 * time.Minute

// chatNormalizer maps WhatsApp-style chat exports. Rows have no ID column,
// so IDs are synthesized from the row index.
type chatNormalizer struct{}

func (chatNormalizer) Source() model.SourceType { return model.SourceChat }

func (chatNormalizer) Filename() string { return "chat.csv" }

func (chatNormalizer) Normalize(row model.Row, index int) (model.Event, error) {
	ts, err := timestampField(row, "timestamp")
	if err != nil {
		return model.Event{}, err
	}

	contact := strings.TrimSpace(row["contact"])
	direction := strings.ToLower(strings.TrimSpace(row["direction"]))
	if direction == "" {
		direction = "incoming"
	}

	display := contact
	if display == "" {
		display = "contact"
	}
	title := "WhatsApp message from " + display
	if direction == "outgoing" {
		title = "WhatsApp message to " + display
	}

	var people []string
	if contact != "" {
		people = []string{contact}
	}

	return model.Event{
		ID:     fmt.Sprintf("chat-%d", index),
		Start:  ts,
		End:    ts.Add(chatMessageSpan),
		Source: model.SourceChat,
		Title:  title,
		Details: map[string]string{
			"platform":        "whatsapp",
			"direction":       direction,
			"contact":         contact,
			"message_preview": strings.TrimSpace(row["message_preview"]),
		},
		People: people,
	}, nil
}
