package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// WhatsAppMessenger shares quote summaries with leads.
//
// When WATI_URL/WATI_API_KEY are configured the message is pushed through the
// WATI session-message API; otherwise only the wa.me deep link is composed and
// returned for the agent to open. Either way the share link is the result the
// caller gets.

type WhatsAppMessenger struct {
	watiURL    string
	watiAPIKey string
	httpClient *http.Client
}

func NewWhatsAppMessenger() *WhatsAppMessenger {
	return &WhatsAppMessenger{
		watiURL:    strings.TrimRight(os.Getenv("WATI_URL"), "/"),
		watiAPIKey: os.Getenv("WATI_API_KEY"),
		httpClient: http.DefaultClient,
	}
}

type watiMessage struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (m *WhatsAppMessenger) ShareQuote(ctx context.Context, mobile, message string) (string, error) {
	link := ComposeShareLink(mobile, message)

	if m.watiURL == "" || m.watiAPIKey == "" {
		log.Printf("[quote][messenger] wati not configured; returning deep link mobile=%s", mobile)
		return link, nil
	}

	payload, err := json.Marshal(watiMessage{Phone: mobile, Message: message})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.watiURL+"/api/v1/sendSessionMessage", bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.watiAPIKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		log.Printf("[quote][messenger] wati send failed mobile=%s err=%v", mobile, err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[quote][messenger] wati send rejected mobile=%s status=%d", mobile, resp.StatusCode)
		return "", fmt.Errorf("wati send failed with status %d", resp.StatusCode)
	}

	log.Printf("[quote][messenger] wati send success mobile=%s", mobile)
	return link, nil
}

// ComposeShareLink builds the wa.me deep link for a mobile number and a
// pre-filled message.
func ComposeShareLink(mobile, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, mobile)
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}
