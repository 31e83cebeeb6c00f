// Package restclient is the CSE's REST collaborator (§6.4): the three
// HTTP endpoints the engine needs beyond the WebSocket - file upload,
// public profile lookup, and server emoji listing. Everything else in
// the surrounding application's REST surface is out of scope here.
//
// Credentials are ambient (cookie-based session, §6.4): the http.Client's
// cookie jar, configured by the caller, carries them. This package never
// handles login or token refresh.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/ngutten/concord/protocol"
)

// Client is a thin wrapper over net/http scoped to the CSE's REST needs.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a Client against baseURL (e.g. "https://chat.example.com/api").
// httpClient may be nil, in which case a client with a 15s timeout is used.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// UploadFile posts a single file as multipart/form-data to /uploads and
// decodes the resulting AttachmentInfo (§6.4).
func (c *Client) UploadFile(ctx context.Context, filename string, content io.Reader) (protocol.AttachmentInfo, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return protocol.AttachmentInfo{}, fmt.Errorf("restclient: create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return protocol.AttachmentInfo{}, fmt.Errorf("restclient: copy file body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return protocol.AttachmentInfo{}, fmt.Errorf("restclient: close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/uploads", &body)
	if err != nil {
		return protocol.AttachmentInfo{}, fmt.Errorf("restclient: build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var info protocol.AttachmentInfo
	if err := c.doJSON(req, &info); err != nil {
		return protocol.AttachmentInfo{}, err
	}
	return info, nil
}

// GetUserProfile fetches the public profile for a nickname (§6.4).
func (c *Client) GetUserProfile(ctx context.Context, nickname string) (protocol.PublicUserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+nickname, nil)
	if err != nil {
		return protocol.PublicUserProfile{}, fmt.Errorf("restclient: build profile request: %w", err)
	}

	var profile protocol.PublicUserProfile
	if err := c.doJSON(req, &profile); err != nil {
		return protocol.PublicUserProfile{}, err
	}
	return profile, nil
}

// GetServerEmoji lists the custom emoji registered on a server (§6.4).
func (c *Client) GetServerEmoji(ctx context.Context, serverID string) ([]protocol.EmojiInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/servers/"+serverID+"/emoji", nil)
	if err != nil {
		return nil, fmt.Errorf("restclient: build emoji request: %w", err)
	}

	var emoji []protocol.EmojiInfo
	if err := c.doJSON(req, &emoji); err != nil {
		return nil, err
	}
	return emoji, nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("restclient: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("restclient: %s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("restclient: decode response: %w", err)
	}
	return nil
}
