package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultAPIBase = "https://api.telegram.org"

// Client is a minimal Telegram Bot API client covering what the platform
// needs: message delivery, contact-request keyboards, profile lookups and
// long polling for updates.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

func NewClient(token string) *Client {
	return NewClientWithBaseURL(token, defaultAPIBase)
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(token, baseURL string) *Client {
	return &Client{
		token:   token,
		baseURL: strings.TrimRight(baseURL, "/"),
		// Long polls block server-side for up to longPollTimeout, so the
		// HTTP timeout must exceed it.
		http: &http.Client{Timeout: (longPollTimeout + 10) * time.Second},
	}
}

// Enabled reports whether a bot token is configured.
func (c *Client) Enabled() bool { return c.token != "" }

// User is the Bot API's view of a Telegram account.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Chat carries the profile fields of a private chat.
type Chat struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Contact is a shared phone number.
type Contact struct {
	PhoneNumber string `json:"phone_number"`
	UserID      int64  `json:"user_id"`
}

// Message is an incoming message. Only the fields the bot reads are mapped.
type Message struct {
	MessageID int64    `json:"message_id"`
	From      *User    `json:"from"`
	Chat      Chat     `json:"chat"`
	Text      string   `json:"text"`
	Contact   *Contact `json:"contact"`
}

// Update is one long-poll result.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type photoSize struct {
	FileID string `json:"file_id"`
}

type userProfilePhotos struct {
	TotalCount int           `json:"total_count"`
	Photos     [][]photoSize `json:"photos"`
}

type file struct {
	FilePath string `json:"file_path"`
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

// ErrDisabled is returned by every API method when no bot token is set.
var ErrDisabled = errors.New("telegram: no bot token configured")

// call performs one Bot API method invocation and decodes the result envelope.
func (c *Client) call(ctx context.Context, method string, params url.Values, out any) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	endpoint := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("telegram %s: decode response: %w", method, err)
	}
	if !envelope.OK {
		return fmt.Errorf("telegram %s: %s", method, envelope.Description)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("telegram %s: decode result: %w", method, err)
		}
	}
	return nil
}

// SendMessage delivers a plain text message to a chat.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	params := url.Values{}
	params.Set("chat_id", strconv.FormatInt(chatID, 10))
	params.Set("text", text)
	return c.call(ctx, "sendMessage", params, nil)
}

// SendContactRequest delivers a message with a one-time reply keyboard asking
// the user to share their phone number.
func (c *Client) SendContactRequest(ctx context.Context, chatID int64, text, buttonLabel string) error {
	markup, err := json.Marshal(map[string]any{
		"keyboard": [][]map[string]any{{
			{"text": buttonLabel, "request_contact": true},
		}},
		"resize_keyboard":   true,
		"one_time_keyboard": true,
	})
	if err != nil {
		return fmt.Errorf("telegram sendMessage: encode markup: %w", err)
	}

	params := url.Values{}
	params.Set("chat_id", strconv.FormatInt(chatID, 10))
	params.Set("text", text)
	params.Set("reply_markup", string(markup))
	return c.call(ctx, "sendMessage", params, nil)
}

// GetChat returns the profile of a private chat (first/last name).
func (c *Client) GetChat(ctx context.Context, chatID int64) (Chat, error) {
	params := url.Values{}
	params.Set("chat_id", strconv.FormatInt(chatID, 10))

	var chat Chat
	if err := c.call(ctx, "getChat", params, &chat); err != nil {
		return Chat{}, err
	}
	return chat, nil
}

// ProfilePhotoURL returns a download URL for the user's newest profile photo
// in its largest size, or "" when the user has none.
func (c *Client) ProfilePhotoURL(ctx context.Context, userID int64) (string, error) {
	params := url.Values{}
	params.Set("user_id", strconv.FormatInt(userID, 10))
	params.Set("limit", "1")

	var photos userProfilePhotos
	if err := c.call(ctx, "getUserProfilePhotos", params, &photos); err != nil {
		return "", err
	}
	if len(photos.Photos) == 0 || len(photos.Photos[0]) == 0 {
		return "", nil
	}
	// Sizes are ordered small to large; take the largest.
	sizes := photos.Photos[0]
	fileID := sizes[len(sizes)-1].FileID

	fileParams := url.Values{}
	fileParams.Set("file_id", fileID)
	var f file
	if err := c.call(ctx, "getFile", fileParams, &f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/file/bot%s/%s", c.baseURL, c.token, f.FilePath), nil
}

// GetUpdates long-polls for updates after the given offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64) ([]Update, error) {
	params := url.Values{}
	params.Set("offset", strconv.FormatInt(offset, 10))
	params.Set("timeout", strconv.Itoa(longPollTimeout))
	params.Set("allowed_updates", `["message"]`)

	var updates []Update
	if err := c.call(ctx, "getUpdates", params, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// longPollTimeout is the server-side getUpdates hold time in seconds.
const longPollTimeout = 30
