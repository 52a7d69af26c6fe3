package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// TelegramClient posts announcements through the Telegram Bot API.
type TelegramClient struct {
	BaseURL string
	Token   string
	ChatID  string
	HTTP    *http.Client
}

func NewTelegramClient(token, chatID string) *TelegramClient {
	return &TelegramClient{
		BaseURL: "https://api.telegram.org",
		Token:   token,
		ChatID:  chatID,
		HTTP:    newRetryingClient(),
	}
}

// SendPhoto posts the poster with the announcement as its caption.
func (c *TelegramClient) SendPhoto(ctx context.Context, photoPath, caption string) error {
	photo, err := os.Open(photoPath)
	if err != nil {
		return err
	}
	defer photo.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	_ = writer.WriteField("chat_id", c.ChatID)
	_ = writer.WriteField("caption", caption)
	_ = writer.WriteField("parse_mode", "Markdown")

	part, err := writer.CreateFormFile("photo", filepath.Base(photoPath))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, photo); err != nil {
		return err
	}
	writer.Close()

	url := fmt.Sprintf("%s/bot%s/sendPhoto", c.BaseURL, c.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
