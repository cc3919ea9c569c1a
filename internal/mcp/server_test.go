package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// fakeToolSet exposes a single "echo" tool.
type fakeToolSet struct{}

func (fakeToolSet) Tools() []Tool {
	return []Tool{
		{
			Name:        "echo",
			Description: "Echo the message back.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"message": map[string]interface{}{"type": "string"},
				},
				"required": []string{"message"},
			},
		},
	}
}

func (fakeToolSet) Call(name string, args json.RawMessage) (interface{}, error) {
	if name != "echo" {
		return nil, errors.New("unknown tool: " + name)
	}
	var a struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return map[string]string{"message": a.Message}, nil
}

func newTestServer() *Server {
	return &Server{name: "test-server", version: "0.0.1", tools: fakeToolSet{}}
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := newTestServer()

	resp := s.handleRequest(&Request{JSONRPC: "2.0", ID: 1, Method: "initialize"})

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	result := resp.Result.(map[string]interface{})
	info := result["serverInfo"].(map[string]interface{})
	if info["name"] != "test-server" {
		t.Errorf("server name: got %v", info["name"])
	}
}

func TestHandleRequest_ToolsList(t *testing.T) {
	s := newTestServer()

	resp := s.handleRequest(&Request{JSONRPC: "2.0", ID: 2, Method: "tools/list"})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	result := resp.Result.(map[string]interface{})
	tools := result["tools"].([]Tool)
	if len(tools) != 1 || tools[0].Name != "echo" {
		t.Errorf("tools: got %+v", tools)
	}
}

func TestHandleRequest_ToolsCall(t *testing.T) {
	s := newTestServer()

	params, _ := json.Marshal(map[string]interface{}{
		"name":      "echo",
		"arguments": map[string]string{"message": "hello"},
	})
	resp := s.handleRequest(&Request{JSONRPC: "2.0", ID: 3, Method: "tools/call", Params: params})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	result := resp.Result.(map[string]interface{})
	content := result["content"].([]map[string]interface{})
	if len(content) != 1 {
		t.Fatalf("content entries: got %d", len(content))
	}
	text := content[0]["text"].(string)
	if !strings.Contains(text, `"message": "hello"`) {
		t.Errorf("content text: got %q", text)
	}
}

func TestHandleRequest_ToolsCall_UnknownTool(t *testing.T) {
	s := newTestServer()

	params, _ := json.Marshal(map[string]interface{}{
		"name":      "nope",
		"arguments": map[string]string{},
	})
	resp := s.handleRequest(&Request{JSONRPC: "2.0", ID: 4, Method: "tools/call", Params: params})

	if resp.Error == nil {
		t.Fatal("expected error for unknown tool")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleRequest_UnknownMethod(t *testing.T) {
	s := newTestServer()

	resp := s.handleRequest(&Request{JSONRPC: "2.0", ID: 5, Method: "bogus/method"})

	if resp.Error == nil {
		t.Fatal("expected error for unknown method")
	}
	if resp.Error.Code != -32601 {
		t.Errorf("error code: got %d, want -32601", resp.Error.Code)
	}
}

func TestHandleRequest_Ping(t *testing.T) {
	s := newTestServer()

	resp := s.handleRequest(&Request{JSONRPC: "2.0", ID: 6, Method: "ping"})

	if resp == nil || resp.Error != nil {
		t.Fatalf("ping failed: %+v", resp)
	}
}

func TestHandleRequest_InitializedNotification(t *testing.T) {
	s := newTestServer()

	resp := s.handleRequest(&Request{JSONRPC: "2.0", Method: "notifications/initialized"})

	if resp != nil {
		t.Errorf("notification should produce no response, got %+v", resp)
	}
}

func TestRun_RequestResponseLoop(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}` + "\n" +
			`{"jsonrpc":"2.0","id":2,"method":"ping"}` + "\n" +
			"not json\n" +
			`{"jsonrpc":"2.0","id":3,"method":"tools/list"}` + "\n")

	s := &Server{name: "test-server", version: "0.0.1", tools: fakeToolSet{}, in: in, out: &out}
	if err := s.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// The malformed line is skipped; the three valid requests answer.
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("response count: got %d, want 3\noutput: %s", len(lines), out.String())
	}
	for i, line := range lines {
		var resp Response
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Errorf("response %d is not valid JSON: %v", i, err)
		}
	}
}

func TestMarshalResult_StringPassthrough(t *testing.T) {
	if got := marshalResult("plain text"); got != "plain text" {
		t.Errorf("string passthrough: got %q", got)
	}
	got := marshalResult(map[string]int{"n": 1})
	if !strings.Contains(got, `"n": 1`) {
		t.Errorf("marshaled result: got %q", got)
	}
}
