// Package mcp implements the stdio transport shared by this repository's
// MCP (Model Context Protocol) tool servers.
//
// The server speaks JSON-RPC 2.0 over stdin/stdout, one message per line:
//   - initialize: protocol handshake
//   - tools/list: enumerate the toolset's tools
//   - tools/call: execute a tool with arguments
//   - ping: health check
//
// Which tools exist is decided by the ToolSet plugged into New; the server
// core knows nothing about domains or images. Tool results are wrapped in
// MCP's content format as pretty-printed JSON text. Tool execution errors
// become JSON-RPC error responses with code -32000; malformed parameters
// get -32602 and unknown methods -32601.
//
// Logging goes to stderr. Stdout carries protocol traffic only.
package mcp
