// Package rpcclient provides a JSON-RPC client for the proof-of-work ledger
// that coin origin proofs point into.
package rpcclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	klog "github.com/unicitynetwork/cli-sub013/internal/log"
	"github.com/unicitynetwork/cli-sub013/pkg/origin"
)

// codeOutOfRange is the node's error code for a height beyond the tip.
const codeOutOfRange = -8

// Client is a JSON-RPC 2.0 HTTP client.
type Client struct {
	endpoint string
	user     string
	password string
	http     *http.Client
}

// New creates a new RPC client targeting the given endpoint URL.
func New(endpoint string) *Client {
	return NewWithTimeout(endpoint, 10*time.Second)
}

// NewWithTimeout creates a new RPC client with a custom HTTP timeout.
func NewWithTimeout(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetBasicAuth sets the credentials sent with every request.
func (c *Client) SetBasicAuth(user, password string) {
	c.user = user
	c.password = password
}

// request is a JSON-RPC 2.0 request.
type request struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
	ID      int         `json:"id"`
}

// response is a JSON-RPC 2.0 response.
type response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
	ID      int             `json:"id"`
}

// rpcError is a JSON-RPC 2.0 error.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RPCError is returned when the server responds with an error.
type RPCError struct {
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Call invokes a JSON-RPC method and unmarshals the result into the provided pointer.
// If result is nil, the response result is discarded.
func (c *Client) Call(method string, params, result interface{}) error {
	req := request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.user != "" {
		httpReq.SetBasicAuth(c.user, c.password)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	klog.RPC.Debug().
		Str("method", method).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("RPC call")

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("http request: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var rpcResp response
	if err := json.Unmarshal(data, &rpcResp); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if rpcResp.Error != nil {
		return &RPCError{
			Code:    rpcResp.Error.Code,
			Message: rpcResp.Error.Message,
		}
	}

	if result != nil && rpcResp.Result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("decode result: %w", err)
		}
	}

	return nil
}

// BlockHashByHeight returns the hash of the block at height.
func (c *Client) BlockHashByHeight(height int64) (string, error) {
	var hash string
	if err := c.Call("getblockhash", []interface{}{height}, &hash); err != nil {
		return "", notFound(err)
	}
	return hash, nil
}

// BlockHeaderByHeight returns the header of the block at height. It
// satisfies origin.HeaderSource.
func (c *Client) BlockHeaderByHeight(height int64) (*origin.BlockHeader, error) {
	hash, err := c.BlockHashByHeight(height)
	if err != nil {
		return nil, err
	}
	var h origin.BlockHeader
	if err := c.Call("getblockheader", []interface{}{hash, true}, &h); err != nil {
		return nil, notFound(err)
	}
	return &h, nil
}

// notFound maps the node's out-of-range error onto origin.ErrBlockNotFound.
func notFound(err error) error {
	if e, ok := err.(*RPCError); ok && e.Code == codeOutOfRange {
		return fmt.Errorf("%w: %s", origin.ErrBlockNotFound, e.Message)
	}
	return err
}

var _ origin.HeaderSource = (*Client)(nil)
