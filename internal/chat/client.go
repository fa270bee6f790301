package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/artilence/agentchat/internal/errors"
	"github.com/artilence/agentchat/internal/logger"
)

// RequestIDHeader carries the per-request ID to the backend.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a non-2xx body ends up in an error message.
const maxErrorBody = 200

// Sender sends one user message and returns the agent's reply.
type Sender interface {
	Send(ctx context.Context, requestID, text string) (*Reply, error)
}

// SendRequest is the POST body accepted by the chat endpoint.
type SendRequest struct {
	UserMessage string `json:"user_message"`
}

// Reply is the POST response. Only AIResponse is required by the UI.
type Reply struct {
	ID          int    `json:"id,omitempty"`
	UserMessage string `json:"user_message,omitempty"`
	AIResponse  string `json:"ai_response,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Conversation is one stored exchange returned by GET.
type Conversation struct {
	ID          int    `json:"id"`
	UserMessage string `json:"user_message"`
	AIResponse  string `json:"ai_response"`
	CreatedAt   string `json:"created_at"`
}

type historyResponse struct {
	Conversations []Conversation `json:"conversations"`
}

// Client talks to the chat endpoint over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for endpoint. The endpoint is used verbatim,
// including any trailing slash the backend routes on.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Endpoint returns the URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// NewRequestID returns a fresh ID for correlating a request with its reply.
func NewRequestID() string {
	return uuid.NewString()
}

// Send posts text to the endpoint. Transport failures, non-2xx statuses and
// undecodable bodies are returned as errors; a decoded reply without
// ai_response yields an EmptyReply error.
func (c *Client) Send(ctx context.Context, requestID, text string) (*Reply, error) {
	log := logger.WithRequest(requestID)

	// The backend rejects blank messages with a 400
	if strings.TrimSpace(text) == "" {
		return nil, pkgerrors.EmptyMessage()
	}

	body, err := json.Marshal(SendRequest{UserMessage: text})
	if err != nil {
		return nil, pkgerrors.E(pkgerrors.Op("chat.Send"), pkgerrors.KindInvalid, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, pkgerrors.SendFailed(c.endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	log.Debug("sending message", "endpoint", c.endpoint, "chars", len(text))
	start := time.Now()

	respBody, err := c.do(req, "chat.Send")
	if err != nil {
		log.Error("send failed", "error", err, "elapsed", time.Since(start))
		return nil, err
	}

	var reply Reply
	if err := json.Unmarshal(respBody, &reply); err != nil {
		log.Error("undecodable reply", "error", err)
		return nil, pkgerrors.DecodeFailed("chat.Send", err)
	}

	log.Debug("reply received", "id", reply.ID, "chars", len(reply.AIResponse), "elapsed", time.Since(start))

	if reply.AIResponse == "" {
		return nil, pkgerrors.EmptyReply()
	}
	return &reply, nil
}

// History fetches every stored conversation, oldest first as the backend
// returns them.
func (c *Client) History(ctx context.Context) ([]Conversation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, pkgerrors.RequestFailed("chat.History", c.endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, NewRequestID())

	respBody, err := c.do(req, "chat.History")
	if err != nil {
		return nil, err
	}

	var hist historyResponse
	if err := json.Unmarshal(respBody, &hist); err != nil {
		return nil, pkgerrors.DecodeFailed("chat.History", err)
	}
	return hist.Conversations, nil
}

// do executes req and returns the body of a 2xx response.
func (c *Client) do(req *http.Request, op pkgerrors.Op) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, pkgerrors.RequestTimeout(op, c.endpoint, err)
		}
		return nil, pkgerrors.RequestFailed(op, c.endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.E(op, pkgerrors.KindIO, "failed to read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, pkgerrors.BadStatus(op, resp.StatusCode, Preview(string(respBody), maxErrorBody))
	}
	return respBody, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
